package mctf

import (
	"fmt"
	"os"

	"github.com/claudio382/mctf/internal/streamio"
)

// streams owns every open file handle for a run. Which of odd/frameTypes/
// high are readers vs writers depends on Config.Mode: odd is read in
// analysis and written in synthesis, frameTypes and high the other way
// round; motionOut is opened, for writing, in analysis only. even and
// motion_in are always read, since this core consumes motion vectors
// rather than producing them.
type streams struct {
	even *os.File

	odd        *os.File
	frameTypes *os.File
	high       *os.File

	motionIn  *streamio.MotionReader
	motionOut *streamio.MotionWriter

	predictionSidecar *os.File

	motionInFile  *os.File
	motionOutFile *os.File
}

func openStreams(c Config) (*streams, error) {
	s := &streams{}

	var err error
	if s.even, err = os.Open(c.EvenFn); err != nil {
		return nil, fmt.Errorf("mctf: opening even stream %q: %w", c.EvenFn, err)
	}

	if s.motionInFile, err = os.Open(c.MotionInFn); err != nil {
		s.Close()
		return nil, fmt.Errorf("mctf: opening motion-in stream %q: %w", c.MotionInFn, err)
	}
	if s.motionIn, err = streamio.NewMotionReader(s.motionInFile); err != nil {
		s.Close()
		return nil, err
	}

	switch c.Mode {
	case ModeAnalyze:
		if s.odd, err = os.Open(c.OddFn); err != nil {
			s.Close()
			return nil, fmt.Errorf("mctf: opening odd stream %q: %w", c.OddFn, err)
		}
		if s.frameTypes, err = os.Create(c.FrameTypesFn); err != nil {
			s.Close()
			return nil, fmt.Errorf("mctf: creating frame-types stream %q: %w", c.FrameTypesFn, err)
		}
		if s.high, err = os.Create(c.HighFn); err != nil {
			s.Close()
			return nil, fmt.Errorf("mctf: creating high stream %q: %w", c.HighFn, err)
		}
		if s.motionOutFile, err = os.Create(c.MotionOutFn); err != nil {
			s.Close()
			return nil, fmt.Errorf("mctf: creating motion-out stream %q: %w", c.MotionOutFn, err)
		}
		if s.motionOut, err = streamio.NewMotionWriter(s.motionOutFile); err != nil {
			s.Close()
			return nil, err
		}
	case ModeSynthesize:
		if s.odd, err = os.Create(c.OddFn); err != nil {
			s.Close()
			return nil, fmt.Errorf("mctf: creating odd stream %q: %w", c.OddFn, err)
		}
		if s.frameTypes, err = os.Open(c.FrameTypesFn); err != nil {
			s.Close()
			return nil, fmt.Errorf("mctf: opening frame-types stream %q: %w", c.FrameTypesFn, err)
		}
		if s.high, err = os.Open(c.HighFn); err != nil {
			s.Close()
			return nil, fmt.Errorf("mctf: opening high stream %q: %w", c.HighFn, err)
		}
	}

	if c.PredictionSidecarFn != "" {
		if s.predictionSidecar, err = os.Create(c.PredictionSidecarFn); err != nil {
			s.Close()
			return nil, fmt.Errorf("mctf: creating prediction sidecar %q: %w", c.PredictionSidecarFn, err)
		}
	}

	return s, nil
}

// Close releases every stream it managed to open, best-effort.
func (s *streams) Close() {
	if s.motionOut != nil {
		s.motionOut.Close()
	}
	if s.motionIn != nil {
		s.motionIn.Close()
	}
	for _, f := range []*os.File{s.even, s.odd, s.frameTypes, s.high, s.motionInFile, s.motionOutFile, s.predictionSidecar} {
		if f != nil {
			f.Close()
		}
	}
}
