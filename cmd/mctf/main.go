// Command mctf runs the motion-compensated temporal filtering core in
// analysis or synthesis mode over raw planar YUV 4:2:0 streams.
//
// Usage:
//
//	mctf -m analyze [options]
//	mctf -m synthesize [options]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/claudio382/mctf/internal/mctf"
)

func main() {
	def := mctf.DefaultConfig()
	var cfg mctf.Config

	mode := flag.String("m", "analyze", "mode: analyze or synthesize")
	flag.StringVar(mode, "mode", *mode, "mode: analyze or synthesize")

	intFlag := func(short, long string, def int, usage string) *int {
		v := flag.Int(short, def, usage)
		flag.IntVar(v, long, *v, usage)
		return v
	}
	strFlag := func(short, long, def, usage string) *string {
		v := flag.String(short, def, usage)
		flag.StringVar(v, long, *v, usage)
		return v
	}
	boolFlag := func(short, long string, def bool, usage string) *bool {
		v := flag.Bool(short, def, usage)
		flag.BoolVar(v, long, *v, usage)
		return v
	}

	blockOverlap := intFlag("v", "block_overlaping", def.BlockOverlap, "overlap border in pixels, 0 or power of two")
	blockSize := intFlag("b", "block_size", def.BlockSize, "block side in pixels")
	evenFn := strFlag("e", "even_fn", def.EvenFn, "even-frames file")
	frameTypesFn := strFlag("f", "frame_types_fn", def.FrameTypesFn, "type stream ('I'/'B' bytes)")
	highFn := strFlag("h", "high_fn", def.HighFn, "high-band residue stream")
	motionInFn := strFlag("i", "motion_in_fn", def.MotionInFn, "motion-vector stream")
	motionOutFn := strFlag("t", "motion_out_fn", def.MotionOutFn, "output MV stream (analysis only)")
	oddFn := strFlag("o", "odd_fn", def.OddFn, "odd-frames file")
	pictures := intFlag("p", "pictures", def.Pictures, "total frames, must be odd")
	pixelsInX := intFlag("x", "pixels_in_x", def.PixelsInX, "luma width")
	pixelsInY := intFlag("y", "pixels_in_y", def.PixelsInY, "luma height")
	searchRange := intFlag("s", "search_range", def.SearchRange, "motion search radius (informs border size)")
	subpixelAccuracy := intFlag("a", "subpixel_accuracy", def.SubpixelAccuracy, "subpixel expansion levels")
	alwaysB := boolFlag("B", "always_B", def.AlwaysB, "if set, always emit B")
	predictionSidecar := strFlag("P", "prediction_sidecar_fn", "", "optional debug prediction-picture dump")
	verbose := boolFlag("V", "verbose", false, "write progress trace to stderr")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mctf -m {analyze,synthesize} [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	switch *mode {
	case "analyze":
		cfg.Mode = mctf.ModeAnalyze
	case "synthesize":
		cfg.Mode = mctf.ModeSynthesize
	default:
		fmt.Fprintf(os.Stderr, "mctf: unrecognized mode %q\n\n", *mode)
		flag.Usage()
		os.Exit(1)
	}

	cfg.BlockOverlap = *blockOverlap
	cfg.BlockSize = *blockSize
	cfg.EvenFn = *evenFn
	cfg.FrameTypesFn = *frameTypesFn
	cfg.HighFn = *highFn
	cfg.MotionInFn = *motionInFn
	cfg.MotionOutFn = *motionOutFn
	cfg.OddFn = *oddFn
	cfg.Pictures = *pictures
	cfg.PixelsInX = *pixelsInX
	cfg.PixelsInY = *pixelsInY
	cfg.SearchRange = *searchRange
	cfg.SubpixelAccuracy = *subpixelAccuracy
	cfg.AlwaysB = *alwaysB
	cfg.PredictionSidecarFn = *predictionSidecar
	cfg.Verbose = *verbose

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "mctf:", err)
		os.Exit(1)
	}
}

func run(cfg mctf.Config) error {
	d, err := mctf.New(cfg)
	if err != nil {
		return err
	}
	defer d.Close()

	return d.Run()
}
