package mctf

import "github.com/claudio382/mctf/internal/obmc"

// geometry derives every dimension the driver needs from Config, computed
// once per run. Native dimensions are the on-disk 4:2:0 resolution; working
// dimensions are native luma scaled by 1<<SubpixelAccuracy, the resolution
// OBMC and the reference pictures operate at.
type geometry struct {
	pairs int

	blocksInY, blocksInX int

	nativeLumaH, nativeLumaW     int
	nativeChromaH, nativeChromaW int

	workingH, workingW int

	workingBlockSize    int
	workingBlockOverlap int

	// border is the picture halo size, 4*search_range + block_overlap,
	// scaled by 1<<subpixel_accuracy -- large enough to cover the
	// motion-search window plus the OBMC overlap at working resolution.
	border int
}

func newGeometry(c Config) geometry {
	s := uint(c.SubpixelAccuracy)
	g := geometry{
		pairs:               c.Pictures / 2,
		blocksInY:           c.PixelsInY / c.BlockSize,
		blocksInX:           c.PixelsInX / c.BlockSize,
		nativeLumaH:         c.PixelsInY,
		nativeLumaW:         c.PixelsInX,
		nativeChromaH:       c.PixelsInY / 2,
		nativeChromaW:       c.PixelsInX / 2,
		workingH:            c.PixelsInY << s,
		workingW:            c.PixelsInX << s,
		workingBlockSize:    c.BlockSize << s,
		workingBlockOverlap: c.BlockOverlap << s,
		border:              (4*c.SearchRange + c.BlockOverlap) << s,
	}
	return g
}

func (g geometry) obmcParams() obmc.Params {
	return obmc.Params{
		BlockOverlap: g.workingBlockOverlap,
		BlockSize:    g.workingBlockSize,
		BlocksInY:    g.blocksInY,
		BlocksInX:    g.blocksInX,
		PicH:         g.workingH,
		PicW:         g.workingW,
	}
}

// componentNative returns the native (h, w) of component c (0=Y, 1=Cb, 2=Cr).
func (g geometry) componentNative(c int) (h, w int) {
	if c == 0 {
		return g.nativeLumaH, g.nativeLumaW
	}
	return g.nativeChromaH, g.nativeChromaW
}
