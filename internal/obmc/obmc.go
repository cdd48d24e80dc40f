// Package obmc implements the overlapped block motion compensation
// predictor with in-block 2D wavelet blending, the core algorithm of the
// motion-compensated temporal filtering decorrelation/reconstruction
// pipeline.
package obmc

import (
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/claudio382/mctf/internal/dwt"
	"github.com/claudio382/mctf/internal/mvfield"
	"github.com/claudio382/mctf/internal/plane"
)

// Picture is a working-resolution plane per component (Y, Cb, Cr, in that
// order), all already chroma-expanded and subpixel-expanded to the same
// dimensions by the caller.
type Picture []*plane.Plane

// Params bundles the shape of the OBMC block loop. BlockOverlap and
// BlockSize are already scaled by 1<<subpixel_accuracy by the caller, as
// is PicH/PicW -- the predictor operates entirely in the working
// (subpixel-expanded) coordinate system motion vectors are expressed in.
type Params struct {
	BlockOverlap int
	BlockSize    int
	BlocksInY    int
	BlocksInX    int
	PicH, PicW   int
}

// levels returns round(log2(overlap)) for overlap > 0, 0 otherwise. A
// non-power-of-two overlap still produces a level count, just not one
// with an exact closed-form wavelet decomposition behind it.
func levels(overlap int) int {
	if overlap <= 0 {
		return 0
	}
	return int(math.Round(math.Log2(float64(overlap))))
}

// Predict fills prediction with the OBMC blend of the two reference
// pictures under the given motion field, for every component. The
// per-(component, block) work is data-parallel -- each block's wavelet
// scatter targets a disjoint region of the picture -- so it fans out
// across goroutines; each component's final inverse DWT and clip run
// only after every block has scattered into it.
func Predict(p Params, mv *mvfield.Field, ref [2]Picture, prediction Picture) error {
	lv := levels(p.BlockOverlap)
	side := p.BlockSize + 2*p.BlockOverlap
	components := len(prediction)

	var scratchPool = sync.Pool{
		New: func() any { return plane.Alloc(side, side, 0) },
	}

	var g errgroup.Group
	for c := 0; c < components; c++ {
		for by := 0; by < p.BlocksInY; by++ {
			for bx := 0; bx < p.BlocksInX; bx++ {
				c, by, bx := c, by, bx
				g.Go(func() error {
					scratch := scratchPool.Get().(*plane.Plane)
					defer scratchPool.Put(scratch)
					predictBlock(p, lv, mv, ref, prediction, scratch, c, by, bx)
					return nil
				})
			}
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var g2 errgroup.Group
	for c := 0; c < components; c++ {
		c := c
		g2.Go(func() error {
			dwt.Synthesize(prediction[c], p.PicH, p.PicW, lv)
			prediction[c].Clip(0, 255)
			return nil
		})
	}
	return g2.Wait()
}

// predictBlock runs the bidirectional averaging, forward DWT and subband
// scatter for a single (component, block) into the picture-wide DWT
// layout.
func predictBlock(p Params, lv int, mv *mvfield.Field, ref [2]Picture, prediction Picture, scratch *plane.Plane, c, by, bx int) {
	border := p.BlockOverlap
	bs := p.BlockSize

	mvPrevY := mv.Get(mvfield.Prev, mvfield.Y, by, bx) + by*bs
	mvPrevX := mv.Get(mvfield.Prev, mvfield.X, by, bx) + bx*bs
	mvNextY := mv.Get(mvfield.Next, mvfield.Y, by, bx) + by*bs
	mvNextX := mv.Get(mvfield.Next, mvfield.X, by, bx) + bx*bs

	prev := ref[0][c]
	next := ref[1][c]

	for y := -border; y < bs+border; y++ {
		for x := -border; x < bs+border; x++ {
			v := (int(prev.At(mvPrevY+y, mvPrevX+x)) + int(next.At(mvNextY+y, mvNextX+x))) / 2
			scratch.Set(y+border, x+border, int16(v))
		}
	}

	side := bs + 2*border
	dwt.Analyze(scratch, side, side, lv)

	pic := prediction[c]

	for l := 1; l <= lv; l++ {
		tbs := bs >> uint(l)
		blockHi := (bs + 3*border) >> uint(l)
		borderAtL := border >> uint(l)
		for y := 0; y < tbs; y++ {
			for x := 0; x < tbs; x++ {
				// LH
				pic.Set(by*tbs+y, (p.PicW>>uint(l))+bx*tbs+x, scratch.At(borderAtL+y, blockHi+x))
				// HL
				pic.Set((p.PicH>>uint(l))+by*tbs+y, bx*tbs+x, scratch.At(blockHi+y, borderAtL+x))
				// HH
				pic.Set((p.PicH>>uint(l))+by*tbs+y, (p.PicW>>uint(l))+bx*tbs+x, scratch.At(blockHi+y, blockHi+x))
			}
		}
	}

	bs0 := bs >> uint(lv)
	borderAtLv := border >> uint(lv)
	for y := 0; y < bs0; y++ {
		for x := 0; x < bs0; x++ {
			pic.Set(by*bs0+y, bx*bs0+x, scratch.At(borderAtLv+y, borderAtLv+x))
		}
	}
}
