// Package subpixel expands a picture plane to sub-pixel motion-vector
// accuracy and reduces it back.
package subpixel

import (
	"github.com/claudio382/mctf/internal/dwt"
	"github.com/claudio382/mctf/internal/plane"
)

// Expand grows p from its native h x w resolution to accuracy s (the
// sample grid becomes 2^s times finer in each axis) by repeating, for
// k = 1..s, a zero-pad of the top-left (h*2^(k-1)) x (w*2^(k-1)) quadrant
// into a (h*2^k) x (w*2^k) canvas followed by one level of DWT synthesis,
// then fills the border.
//
// Each iteration zero-pads the canvas it just produced rather than
// inserting a fresh zero high-band next to untouched content, so
// interpolation error accumulates across levels. This is intentional --
// do not "fix" it without an explicit request, it changes the numeric
// output of every caller.
func Expand(p *plane.Plane, h, w, s int) {
	for k := 1; k <= s; k++ {
		zeroQuadrants(p, h<<uint(k-1), w<<uint(k-1), h<<uint(k), w<<uint(k))
		dwt.Synthesize(p, h<<uint(k), w<<uint(k), 1)
	}
	p.FillBorder()
}

// Reduce is the inverse path: s applications of single-level DWT analysis,
// the first over the full working-resolution canvas and each later one
// over the top-left quadrant the previous one left, done as one s-level
// analyze call (dwt.Analyze walks level 1..s from finest to coarsest over
// shrinking quadrants).
func Reduce(p *plane.Plane, h, w, s int) {
	dwt.Analyze(p, h<<uint(s), w<<uint(s), s)
}

// zeroQuadrants zeros everything in the prevH x prevW..newH x newW canvas
// outside the prevH x prevW top-left quadrant.
func zeroQuadrants(p *plane.Plane, prevH, prevW, newH, newW int) {
	for y := 0; y < prevH; y++ {
		for x := prevW; x < newW; x++ {
			p.Set(y, x, 0)
		}
	}
	for y := prevH; y < newH; y++ {
		for x := 0; x < newW; x++ {
			p.Set(y, x, 0)
		}
	}
}
