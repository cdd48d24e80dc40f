// Package chroma resamples 4:2:0 chroma planes to luma resolution and
// back, piggy-backing on the same DWT operator used for OBMC blending: a
// chroma plane is treated as the LL subband of a one-level decomposition
// whose high-frequency subbands are zero.
package chroma

import (
	"github.com/claudio382/mctf/internal/dwt"
	"github.com/claudio382/mctf/internal/plane"
)

// Expand upsamples a (h/2)x(w/2) chroma plane already sitting in the
// top-left quadrant of a luma-sized canvas p (h x w) by zero-filling the
// other three quadrants and running one level of DWT synthesis.
func Expand(p *plane.Plane, h, w int) {
	zeroQuadrants(p, h, w)
	dwt.Synthesize(p, h, w, 1)
}

// Reduce is the inverse of Expand: one level of DWT analysis followed by
// keeping only the top-left (h/2)x(w/2) quadrant (the caller reads that
// quadrant; Reduce does not itself shrink the backing Plane).
func Reduce(p *plane.Plane, h, w int) {
	dwt.Analyze(p, h, w, 1)
}

func zeroQuadrants(p *plane.Plane, h, w int) {
	halfH, halfW := h/2, w/2
	for y := 0; y < halfH; y++ {
		for x := halfW; x < w; x++ {
			p.Set(y, x, 0)
		}
	}
	for y := halfH; y < h; y++ {
		for x := 0; x < w; x++ {
			p.Set(y, x, 0)
		}
	}
}
