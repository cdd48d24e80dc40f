// Package mctf implements the analysis/synthesis driver state machine:
// the per-GOP-half loop that reads/writes the six streams, rotates the
// reference window and runs the OBMC predictor each pair.
package mctf

import (
	"errors"
	"fmt"
)

// Mode selects analysis (decorrelation) or synthesis (correlation) as a
// runtime value, so one binary serves both directions.
type Mode int

const (
	ModeAnalyze Mode = iota
	ModeSynthesize
)

// ErrGeometryMismatch is returned when the picture dimensions, block size
// or picture count violate the driver's geometry invariants.
var ErrGeometryMismatch = errors.New("mctf: geometry mismatch")

// Config holds every run parameter, threaded explicitly through the
// driver rather than kept as package state.
type Config struct {
	Mode Mode

	BlockOverlap     int
	BlockSize        int
	EvenFn           string
	FrameTypesFn     string
	HighFn           string
	MotionInFn       string
	MotionOutFn      string
	OddFn            string
	Pictures         int
	PixelsInX        int
	PixelsInY        int
	SearchRange      int
	SubpixelAccuracy int
	AlwaysB          bool

	// PredictionSidecarFn, when non-empty, writes the native-resolution
	// prediction picture for every processed pair to the given file, for
	// debugging.
	PredictionSidecarFn string
	// Verbose writes a progress trace (block-grid dimensions, per-pair
	// progress) to stderr.
	Verbose bool
}

// DefaultConfig returns the documented flag defaults.
func DefaultConfig() Config {
	return Config{
		BlockOverlap:     0,
		BlockSize:        16,
		EvenFn:           "even",
		FrameTypesFn:     "frame_types",
		HighFn:           "high",
		MotionInFn:       "motion_in",
		MotionOutFn:      "motion_out",
		OddFn:            "odd",
		Pictures:         33,
		PixelsInX:        352,
		PixelsInY:        288,
		SearchRange:      4,
		SubpixelAccuracy: 0,
		AlwaysB:          false,
	}
}

// Validate checks the driver's geometry invariants.
func (c Config) Validate() error {
	if c.Pictures%2 == 0 {
		return fmt.Errorf("mctf: pictures (%d) must be odd: %w", c.Pictures, ErrGeometryMismatch)
	}
	if c.BlockSize <= 0 {
		return fmt.Errorf("mctf: block_size must be positive, got %d: %w", c.BlockSize, ErrGeometryMismatch)
	}
	if c.PixelsInY%c.BlockSize != 0 {
		return fmt.Errorf("mctf: pixels_in_y (%d) not divisible by block_size (%d): %w", c.PixelsInY, c.BlockSize, ErrGeometryMismatch)
	}
	if c.PixelsInX%c.BlockSize != 0 {
		return fmt.Errorf("mctf: pixels_in_x (%d) not divisible by block_size (%d): %w", c.PixelsInX, c.BlockSize, ErrGeometryMismatch)
	}
	if c.PixelsInY%2 != 0 || c.PixelsInX%2 != 0 {
		return fmt.Errorf("mctf: pixels_in_y/pixels_in_x must be even for 4:2:0 chroma: %w", ErrGeometryMismatch)
	}
	return nil
}
