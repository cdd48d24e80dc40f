// Package residue computes the motion-compensated residual in analysis
// mode and reconstructs the predicted frame from it in synthesis mode.
package residue

import "github.com/claudio382/mctf/internal/plane"

// Compute fills residue[y][x] = clip_s8(predicted[y][x] - prediction[y][x])
// over the inner h x w region, predicted and prediction both holding
// native-resolution samples.
func Compute(residueP, predicted, prediction *plane.Plane, h, w int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := int(predicted.At(y, x)) - int(prediction.At(y, x))
			if v < -128 {
				v = -128
			} else if v > 127 {
				v = 127
			}
			residueP.Set(y, x, int16(v))
		}
	}
}

// ReconstructI sets predicted[y][x] = residue[y][x] + 128, unclipped.
// Unlike ReconstructB, the intra path never clips: the high band of an
// I frame is a verbatim copy of the predicted frame, already in [0, 255].
func ReconstructI(predicted, residueP *plane.Plane, h, w int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			predicted.Set(y, x, residueP.At(y, x)+128)
		}
	}
}

// ReconstructB sets predicted[y][x] = clip_u8(residue[y][x] + prediction[y][x]),
// residue already de-biased by -128 at read time.
func ReconstructB(predicted, residueP, prediction *plane.Plane, h, w int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := int(residueP.At(y, x)) + int(prediction.At(y, x))
			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}
			predicted.Set(y, x, int16(v))
		}
	}
}

// BiasForWire returns residue[y][x]+128 clipped to [0, 255], the B-path
// on-disk representation.
func BiasForWire(residueP, biased *plane.Plane, h, w int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := int(residueP.At(y, x)) + 128
			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}
			biased.Set(y, x, int16(v))
		}
	}
}

// DebiasFromWire subtracts 128 from every sample read off the high-band
// stream, the synthesis-side inverse of BiasForWire. Applied regardless
// of frame type -- the intra path's ReconstructI adds 128 back
// unconditionally, which cancels this exactly for I frames.
func DebiasFromWire(residueP *plane.Plane, h, w int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			residueP.Set(y, x, residueP.At(y, x)-128)
		}
	}
}

// CopyPredicted copies the predicted frame verbatim into residue: the
// effect of electing the frame I (intra-coded), where the high-band stream
// carries the frame itself rather than a motion-compensated residual.
func CopyPredicted(residueP, predicted *plane.Plane, h, w int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			residueP.Set(y, x, predicted.At(y, x))
		}
	}
}
