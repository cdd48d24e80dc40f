package entropy

import (
	"math"
	"testing"

	"github.com/claudio382/mctf/internal/plane"
)

func TestShannonSingleSymbolIsZero(t *testing.T) {
	var h Histogram
	for i := 0; i < 100; i++ {
		h.Add(42)
	}
	if got := Shannon(&h); got != 0 {
		t.Fatalf("Shannon of a single symbol = %f, want 0", got)
	}
}

func TestShannonEmptyIsZero(t *testing.T) {
	var h Histogram
	if got := Shannon(&h); got != 0 {
		t.Fatalf("Shannon of an empty histogram = %f, want 0", got)
	}
}

func TestShannonUniformTwoSymbols(t *testing.T) {
	var h Histogram
	h.Add(0)
	h.Add(1)
	if got, want := Shannon(&h), 1.0; math.Abs(got-want) > 1e-9 {
		t.Fatalf("Shannon of a uniform 2-symbol histogram = %f, want %f", got, want)
	}
}

func TestPlaneHistogramBias(t *testing.T) {
	p := plane.Alloc(1, 2, 0)
	p.Set(0, 0, -128)
	p.Set(0, 1, 127)

	h := PlaneHistogram(p, 1, 2, 128)
	if h[0] != 1 {
		t.Errorf("bin 0 = %d, want 1", h[0])
	}
	if h[255] != 1 {
		t.Errorf("bin 255 = %d, want 1", h[255])
	}
}

func TestCollectRunsEverySource(t *testing.T) {
	out, err := Collect(
		func() Histogram { var h Histogram; h.Add(1); return h },
		func() Histogram { var h Histogram; h.Add(2); h.Add(2); return h },
	)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("Collect returned %d histograms, want 2", len(out))
	}
	if out[0][1] != 1 {
		t.Errorf("histogram 0 bin 1 = %d, want 1", out[0][1])
	}
	if out[1][2] != 2 {
		t.Errorf("histogram 1 bin 2 = %d, want 2", out[1][2])
	}
}

type fakeMV struct{ vals []int }

func (f fakeMV) Each(fn func(int)) {
	for _, v := range f.vals {
		fn(v)
	}
}

func TestMVHistogramOffset(t *testing.T) {
	h := MVHistogram(fakeMV{vals: []int{-128, 0, 127}})
	if h[0] != 1 || h[128] != 1 || h[255] != 1 {
		t.Fatalf("unexpected histogram: %v", h)
	}
}
