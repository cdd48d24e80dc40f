// Package entropy estimates the compressed byte cost of a symbol stream
// via Shannon entropy.
package entropy

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/claudio382/mctf/internal/plane"
)

// Histogram is a 256-bin symbol-occurrence count.
type Histogram [256]int

// Add increments the bin for symbol v (0..255).
func (h *Histogram) Add(v uint8) {
	h[v]++
}

// Total returns the sum of all bins.
func (h *Histogram) Total() int {
	total := 0
	for _, c := range h {
		total += c
	}
	return total
}

// Shannon returns the entropy in bits/symbol of a 256-bin histogram,
// H = -sum(p_i * log2(p_i)), with 0*log(0) defined as 0.
func Shannon(h *Histogram) float64 {
	total := h.Total()
	if total == 0 {
		return 0
	}

	var sum float64
	inv := 1.0 / float64(total)
	for _, c := range h {
		if c == 0 {
			continue
		}
		p := float64(c) * inv
		sum -= p * math.Log2(p)
	}
	return sum
}

// Source produces a histogram; used to fan independent histogram builds
// out across goroutines in Collect.
type Source func() Histogram

// Collect runs each source concurrently and returns their histograms in
// the same order -- the predicted/residue/motion passes read disjoint
// buffers and can build independently.
func Collect(sources ...Source) ([]Histogram, error) {
	out := make([]Histogram, len(sources))
	var g errgroup.Group
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			out[i] = src()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// PlaneHistogram builds a histogram of the inner h x w region of p,
// offsetting every sample by bias before histogramming (bias=0 for raw
// 8-bit samples already in [0,255], bias=128 for signed residue or motion
// components in [-128,127]).
func PlaneHistogram(p *plane.Plane, h, w, bias int) Histogram {
	var hist Histogram
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			hist.Add(uint8(int(p.At(y, x)) + bias))
		}
	}
	return hist
}

// MVHistogram builds a histogram over every motion-vector component in f,
// offset by +128 to map the signed component range into a byte bin.
func MVHistogram(f MVIterable) Histogram {
	var hist Histogram
	f.Each(func(v int) {
		hist.Add(uint8(v + 128))
	})
	return hist
}

// MVIterable is satisfied by mvfield.Field; kept as a narrow interface so
// entropy does not need to import mvfield.
type MVIterable interface {
	Each(fn func(val int))
}
