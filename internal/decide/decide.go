// Package decide implements the rate-driven I/B frame-type election:
// compare estimated compressed byte costs of coding the predicted frame
// directly against coding it as a motion-compensated residual, and elect
// whichever is cheaper.
package decide

// Type is the one-byte frame-type record written to the type stream.
type Type byte

const (
	TypeI Type = 'I'
	TypeB Type = 'B'
)

// Costs holds the three entropy estimates and domain sizes the election
// compares, kept separate from Elect so callers can log predicted/residue/
// motion entropy and size independently. Sizes are luma-only; chroma is not
// factored into the cost model.
type Costs struct {
	PredictedEntropy float64
	ResidueEntropy   float64
	MotionEntropy    float64
	LumaH, LumaW     int
	BlocksInY        int
	BlocksInX        int
}

// PredictedSize, ResidueSize and MotionSize are the byte-cost estimates
// size ~= entropy * domain_size that the election compares, truncated to
// whole bytes to match the integer arithmetic of the estimator the
// comparison is meant to approximate.
func (c Costs) PredictedSize() int {
	return int(c.PredictedEntropy * float64(c.LumaH) * float64(c.LumaW))
}

func (c Costs) ResidueSize() int {
	return int(c.ResidueEntropy * float64(c.LumaH) * float64(c.LumaW))
}

func (c Costs) MotionSize() int {
	return int(c.MotionEntropy * float64(c.BlocksInY) * float64(c.BlocksInX))
}

// Elect returns TypeI when the predicted frame is estimated cheaper (or
// equal) to the residue-plus-motion-field alternative, TypeB otherwise.
// alwaysB forces TypeB unconditionally and skips the cost comparison
// entirely.
func Elect(c Costs, alwaysB bool) Type {
	if alwaysB {
		return TypeB
	}
	if c.PredictedSize() <= c.ResidueSize()+c.MotionSize() {
		return TypeI
	}
	return TypeB
}
