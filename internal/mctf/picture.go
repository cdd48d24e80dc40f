package mctf

import (
	"github.com/claudio382/mctf/internal/chroma"
	"github.com/claudio382/mctf/internal/obmc"
	"github.com/claudio382/mctf/internal/plane"
	"github.com/claudio382/mctf/internal/subpixel"
)

// allocWorkingPicture allocates a 3-plane (Y, Cb, Cr) picture at the
// working (subpixel-expanded) resolution with the given border.
func allocWorkingPicture(g geometry, border int) obmc.Picture {
	return obmc.Picture{
		plane.Alloc(g.workingH, g.workingW, border),
		plane.Alloc(g.workingH, g.workingW, border),
		plane.Alloc(g.workingH, g.workingW, border),
	}
}

// allocNativePicture allocates a 3-plane picture at native 4:2:0
// resolution (Y at full luma size, Cb/Cr at half) with no border.
func allocNativePicture(g geometry) obmc.Picture {
	pic := make(obmc.Picture, 3)
	for c := range pic {
		h, w := g.componentNative(c)
		pic[c] = plane.Alloc(h, w, 0)
	}
	return pic
}

// expandComponent upsamples component c of a working-resolution plane
// already holding native samples in its top-left corner: chroma (c>0)
// is brought to luma resolution first, then every component is expanded
// to subpixel accuracy s and its border filled.
func expandComponent(p *plane.Plane, c int, g geometry, s int) {
	if c != 0 {
		chroma.Expand(p, g.nativeLumaH, g.nativeLumaW)
	}
	subpixel.Expand(p, g.nativeLumaH, g.nativeLumaW, s)
}

// reduceComponent is the inverse of expandComponent: it reduces a
// working-resolution prediction plane back to native resolution in
// place, leaving the result in the plane's top-left corner -- s levels
// of reduction on every component, plus one more on Cb and Cr.
func reduceComponent(p *plane.Plane, c int, g geometry, s int) {
	subpixel.Reduce(p, g.nativeLumaH, g.nativeLumaW, s)
	if c != 0 {
		chroma.Reduce(p, g.nativeLumaH, g.nativeLumaW)
	}
}
