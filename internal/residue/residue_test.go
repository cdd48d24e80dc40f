package residue

import (
	"testing"

	"github.com/claudio382/mctf/internal/plane"
)

func TestComputeClips(t *testing.T) {
	predicted := plane.Alloc(1, 2, 0)
	prediction := plane.Alloc(1, 2, 0)
	residueP := plane.Alloc(1, 2, 0)

	predicted.Set(0, 0, 255)
	prediction.Set(0, 0, 0)
	predicted.Set(0, 1, 0)
	prediction.Set(0, 1, 255)

	Compute(residueP, predicted, prediction, 1, 2)

	if got := residueP.At(0, 0); got != 127 {
		t.Errorf("residue(0,0) = %d, want 127 (clipped)", got)
	}
	if got := residueP.At(0, 1); got != -128 {
		t.Errorf("residue(0,1) = %d, want -128 (clipped)", got)
	}
}

func TestReconstructINoClip(t *testing.T) {
	residueP := plane.Alloc(1, 1, 0)
	predicted := plane.Alloc(1, 1, 0)
	residueP.Set(0, 0, 127)

	ReconstructI(predicted, residueP, 1, 1)

	if got := predicted.At(0, 0); got != 255 {
		t.Errorf("ReconstructI = %d, want 255", got)
	}
}

func TestReconstructBClips(t *testing.T) {
	residueP := plane.Alloc(1, 2, 0)
	prediction := plane.Alloc(1, 2, 0)
	predicted := plane.Alloc(1, 2, 0)

	residueP.Set(0, 0, 100)
	prediction.Set(0, 0, 200)
	residueP.Set(0, 1, -100)
	prediction.Set(0, 1, 10)

	ReconstructB(predicted, residueP, prediction, 1, 2)

	if got := predicted.At(0, 0); got != 255 {
		t.Errorf("ReconstructB(0,0) = %d, want 255 (clipped high)", got)
	}
	if got := predicted.At(0, 1); got != 0 {
		t.Errorf("ReconstructB(0,1) = %d, want 0 (clipped low)", got)
	}
}

func TestBiasDebiasRoundTrip(t *testing.T) {
	residueP := plane.Alloc(1, 1, 0)
	biased := plane.Alloc(1, 1, 0)
	residueP.Set(0, 0, -50)

	BiasForWire(residueP, biased, 1, 1)
	if got := biased.At(0, 0); got != 78 {
		t.Fatalf("BiasForWire = %d, want 78", got)
	}

	DebiasFromWire(biased, 1, 1)
	if got := biased.At(0, 0); got != -50 {
		t.Fatalf("DebiasFromWire = %d, want -50", got)
	}
}

func TestCopyPredicted(t *testing.T) {
	predicted := plane.Alloc(1, 1, 0)
	residueP := plane.Alloc(1, 1, 0)
	predicted.Set(0, 0, 99)

	CopyPredicted(residueP, predicted, 1, 1)

	if got := residueP.At(0, 0); got != 99 {
		t.Fatalf("CopyPredicted = %d, want 99", got)
	}
}
