// Package dwt implements the 2D discrete wavelet transform the rest of
// the codec treats as a black box: a reversible 5/3 lifting wavelet (the
// same integer-reversible filter used by JPEG2000), separable across rows
// and columns, with a uniform Analyze(plane, h, w, levels) /
// Synthesize(plane, h, w, levels) contract used by the OBMC predictor,
// the chroma resampler and the subpixel interpolator alike.
package dwt

import "github.com/claudio382/mctf/internal/plane"

// Analyze performs forward decomposition of the top-left h x w region of p
// into levels of LL/LH/HL/HH subbands, vertical pass before horizontal,
// finest level first.
func Analyze(p *plane.Plane, h, w, levels int) {
	if levels < 1 {
		return
	}
	col := make([]int32, h)
	row := make([]int32, w)

	for level := 1; level <= levels; level++ {
		lh := h >> uint(level-1)
		lw := w >> uint(level-1)

		for x := 0; x < lw; x++ {
			for y := 0; y < lh; y++ {
				col[y] = int32(p.At(y, x))
			}
			analyze1D(col[:lh])
			for y := 0; y < lh; y++ {
				p.Set(y, x, int16(col[y]))
			}
		}

		for y := 0; y < lh; y++ {
			for x := 0; x < lw; x++ {
				row[x] = int32(p.At(y, x))
			}
			analyze1D(row[:lw])
			for x := 0; x < lw; x++ {
				p.Set(y, x, int16(row[x]))
			}
		}
	}
}

// Synthesize inverts Analyze: horizontal pass before vertical, coarsest
// level first.
func Synthesize(p *plane.Plane, h, w, levels int) {
	if levels < 1 {
		return
	}
	col := make([]int32, h)
	row := make([]int32, w)

	for level := levels; level >= 1; level-- {
		lh := h >> uint(level-1)
		lw := w >> uint(level-1)

		for y := 0; y < lh; y++ {
			for x := 0; x < lw; x++ {
				row[x] = int32(p.At(y, x))
			}
			synthesize1D(row[:lw])
			for x := 0; x < lw; x++ {
				p.Set(y, x, int16(row[x]))
			}
		}

		for x := 0; x < lw; x++ {
			for y := 0; y < lh; y++ {
				col[y] = int32(p.At(y, x))
			}
			synthesize1D(col[:lh])
			for y := 0; y < lh; y++ {
				p.Set(y, x, int16(col[y]))
			}
		}
	}
}

// analyze1D is the forward 5/3 reversible lifting transform, low-pass
// samples settling into the first half of data and high-pass into the
// second half. Assumes an even-length signal: with an odd length the last
// sample is not transformed and is overwritten with zero.
func analyze1D(data []int32) {
	n := len(data)
	if n <= 1 {
		return
	}

	sn := n / 2
	tmp := make([]int32, n)

	for i := 0; i < sn; i++ {
		var next int32
		if i+1 < sn {
			next = data[2*i+2]
		} else {
			next = data[2*i]
		}
		tmp[sn+i] = data[2*i+1] - ((data[2*i] + next) >> 1)
	}

	for i := 0; i < sn; i++ {
		var prev int32
		if i > 0 {
			prev = tmp[sn+i-1]
		} else {
			prev = tmp[sn]
		}
		tmp[i] = data[2*i] + ((prev + tmp[sn+i] + 2) >> 2)
	}

	copy(data, tmp)
}

// synthesize1D inverts analyze1D.
func synthesize1D(data []int32) {
	n := len(data)
	if n <= 1 {
		return
	}

	sn := n / 2
	low := make([]int32, sn)
	copy(low, data[:sn])
	high := data[sn:]

	out := make([]int32, n)
	for i := 0; i < sn; i++ {
		var prev int32
		if i > 0 {
			prev = high[i-1]
		} else {
			prev = high[0]
		}
		out[2*i] = low[i] - ((prev + high[i] + 2) >> 2)
	}

	for i := 0; i < sn; i++ {
		var next int32
		if i+1 < sn {
			next = out[2*i+2]
		} else {
			next = out[2*i]
		}
		out[2*i+1] = high[i] + ((out[2*i] + next) >> 1)
	}

	copy(data, out)
}
