package mctf

import (
	"fmt"
	"os"

	"github.com/claudio382/mctf/internal/decide"
	"github.com/claudio382/mctf/internal/entropy"
	"github.com/claudio382/mctf/internal/mvfield"
	"github.com/claudio382/mctf/internal/obmc"
	"github.com/claudio382/mctf/internal/residue"
	"github.com/claudio382/mctf/internal/streamio"
)

// Driver runs the per-GOP-half state machine. It owns every plane and
// motion-vector buffer for the whole run -- all allocated once in New,
// none allocated again inside Run -- and borrows them out to the
// stateless component packages.
type Driver struct {
	cfg Config
	geo geometry

	ref        [2]obmc.Picture
	prediction obmc.Picture
	predicted  obmc.Picture
	residueP   obmc.Picture
	biased     obmc.Picture

	mv     *mvfield.Field
	params obmc.Params

	streams *streams
}

// New validates cfg, derives the run's geometry and allocates every
// buffer the loop will reuse.
func New(cfg Config) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := newGeometry(cfg)
	d := &Driver{
		cfg:        cfg,
		geo:        g,
		prediction: allocWorkingPicture(g, 0),
		predicted:  allocNativePicture(g),
		residueP:   allocNativePicture(g),
		biased:     allocNativePicture(g),
		mv:         mvfield.Alloc(g.blocksInY, g.blocksInX),
		params:     g.obmcParams(),
	}
	d.ref[0] = allocWorkingPicture(g, g.border)
	d.ref[1] = allocWorkingPicture(g, g.border)

	streams, err := openStreams(cfg)
	if err != nil {
		return nil, err
	}
	d.streams = streams

	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "mctf: blocks_in_y=%d blocks_in_x=%d working=%dx%d border=%d pairs=%d\n",
			g.blocksInY, g.blocksInX, g.workingH, g.workingW, g.border, g.pairs)
	}

	return d, nil
}

// Close releases the driver's open streams.
func (d *Driver) Close() {
	d.streams.Close()
}

// Run executes the state machine to completion.
func (d *Driver) Run() error {
	if err := d.readEven(0); err != nil {
		return err
	}

	for i := 0; i < d.geo.pairs; i++ {
		if d.cfg.Verbose {
			fmt.Fprintf(os.Stderr, "mctf: pair %d/%d\n", i+1, d.geo.pairs)
		}

		if err := d.readEven(1); err != nil {
			return err
		}
		if err := d.streams.motionIn.ReadField(d.mv); err != nil {
			return fmt.Errorf("mctf: reading motion field for pair %d: %w", i, err)
		}

		switch d.cfg.Mode {
		case ModeAnalyze:
			if err := d.readOdd(); err != nil {
				return err
			}
		case ModeSynthesize:
			if err := d.readHigh(); err != nil {
				return err
			}
		}

		if err := d.predict(); err != nil {
			return fmt.Errorf("mctf: predicting pair %d: %w", i, err)
		}

		switch d.cfg.Mode {
		case ModeAnalyze:
			if err := d.decide(); err != nil {
				return fmt.Errorf("mctf: deciding pair %d: %w", i, err)
			}
		case ModeSynthesize:
			if err := d.reconstruct(); err != nil {
				return fmt.Errorf("mctf: reconstructing pair %d: %w", i, err)
			}
		}

		d.rotate()
	}

	return nil
}

// readEven reads the next even frame into reference slot 0 or 1 and
// expands it to working resolution.
func (d *Driver) readEven(slot int) error {
	pic := d.ref[slot]
	for c := 0; c < 3; c++ {
		h, w := d.geo.componentNative(c)
		if err := streamio.ReadPlane(d.streams.even, pic[c], h, w); err != nil {
			return fmt.Errorf("mctf: reading even component %d: %w", c, err)
		}
		expandComponent(pic[c], c, d.geo, d.cfg.SubpixelAccuracy)
	}
	return nil
}

// readOdd reads the predicted frame at native resolution (analysis only).
func (d *Driver) readOdd() error {
	for c := 0; c < 3; c++ {
		h, w := d.geo.componentNative(c)
		if err := streamio.ReadPlane(d.streams.odd, d.predicted[c], h, w); err != nil {
			return fmt.Errorf("mctf: reading odd component %d: %w", c, err)
		}
	}
	return nil
}

// readHigh reads the residual frame at native resolution and de-biases
// it by -128 (synthesis only). The de-bias is applied before the type
// byte is read, whatever that byte turns out to be; on the I path
// ReconstructI adds the 128 back, which cancels it exactly.
func (d *Driver) readHigh() error {
	for c := 0; c < 3; c++ {
		h, w := d.geo.componentNative(c)
		if err := streamio.ReadPlane(d.streams.high, d.residueP[c], h, w); err != nil {
			return fmt.Errorf("mctf: reading high component %d: %w", c, err)
		}
		residue.DebiasFromWire(d.residueP[c], h, w)
	}
	return nil
}

// predict runs the OBMC predictor into working resolution, reduces the
// prediction back to native resolution in place, then optionally writes
// the native-resolution prediction sidecar for debugging. Each component
// is written at its own native size, after the subsample step.
func (d *Driver) predict() error {
	if err := obmc.Predict(d.params, d.mv, d.ref, d.prediction); err != nil {
		return err
	}

	for c := 0; c < 3; c++ {
		reduceComponent(d.prediction[c], c, d.geo, d.cfg.SubpixelAccuracy)
	}

	if d.streams.predictionSidecar != nil {
		for c := 0; c < 3; c++ {
			h, w := d.geo.componentNative(c)
			if err := streamio.WritePlane(d.streams.predictionSidecar, d.prediction[c], h, w); err != nil {
				return fmt.Errorf("mctf: writing prediction sidecar component %d: %w", c, err)
			}
		}
	}
	return nil
}

// decide computes the residue, elects I or B, and writes the type,
// high and motion_out streams.
func (d *Driver) decide() error {
	for c := 0; c < 3; c++ {
		h, w := d.geo.componentNative(c)
		residue.Compute(d.residueP[c], d.predicted[c], d.prediction[c], h, w)
	}

	var costs decide.Costs
	if !d.cfg.AlwaysB {
		lumaH, lumaW := d.geo.nativeLumaH, d.geo.nativeLumaW
		hists, err := entropy.Collect(
			func() entropy.Histogram { return entropy.PlaneHistogram(d.predicted[0], lumaH, lumaW, 0) },
			func() entropy.Histogram { return entropy.PlaneHistogram(d.residueP[0], lumaH, lumaW, 128) },
			func() entropy.Histogram { return entropy.MVHistogram(d.mv) },
		)
		if err != nil {
			return err
		}
		costs = decide.Costs{
			PredictedEntropy: entropy.Shannon(&hists[0]),
			ResidueEntropy:   entropy.Shannon(&hists[1]),
			MotionEntropy:    entropy.Shannon(&hists[2]),
			LumaH:            lumaH,
			LumaW:            lumaW,
			BlocksInY:        d.geo.blocksInY,
			BlocksInX:        d.geo.blocksInX,
		}
	}

	t := decide.Elect(costs, d.cfg.AlwaysB)
	if err := streamio.WriteType(d.streams.frameTypes, t); err != nil {
		return err
	}

	if t == decide.TypeI {
		for c := 0; c < 3; c++ {
			h, w := d.geo.componentNative(c)
			residue.CopyPredicted(d.residueP[c], d.predicted[c], h, w)
			if err := streamio.WritePlane(d.streams.high, d.residueP[c], h, w); err != nil {
				return fmt.Errorf("mctf: writing high component %d: %w", c, err)
			}
		}
		d.mv.Zero()
		return d.streams.motionOut.WriteField(d.mv)
	}

	for c := 0; c < 3; c++ {
		h, w := d.geo.componentNative(c)
		residue.BiasForWire(d.residueP[c], d.biased[c], h, w)
		if err := streamio.WritePlane(d.streams.high, d.biased[c], h, w); err != nil {
			return fmt.Errorf("mctf: writing high component %d: %w", c, err)
		}
	}
	return d.streams.motionOut.WriteField(d.mv)
}

// reconstruct reads the type byte and rebuilds the predicted frame from
// the residue and prediction, then writes it to the odd stream.
func (d *Driver) reconstruct() error {
	t, err := streamio.ReadType(d.streams.frameTypes)
	if err != nil {
		return err
	}

	for c := 0; c < 3; c++ {
		h, w := d.geo.componentNative(c)
		switch t {
		case decide.TypeI:
			residue.ReconstructI(d.predicted[c], d.residueP[c], h, w)
		case decide.TypeB:
			residue.ReconstructB(d.predicted[c], d.residueP[c], d.prediction[c], h, w)
		}
		if err := streamio.WritePlane(d.streams.odd, d.predicted[c], h, w); err != nil {
			return fmt.Errorf("mctf: writing odd component %d: %w", c, err)
		}
	}
	return nil
}

// rotate swaps the reference window in O(1), moving ownership across the
// two slots rather than deep-copying either picture.
func (d *Driver) rotate() {
	d.ref[0], d.ref[1] = d.ref[1], d.ref[0]
}
