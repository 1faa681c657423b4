package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/cwbudde/algo-lieflow/dsp/core"
	"github.com/cwbudde/algo-lieflow/dsp/lieflow"
	"github.com/cwbudde/algo-lieflow/dsp/spectrum"
)

func runPreview(args []string, stdout io.Writer, log *slog.Logger) error {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	size := fs.Int("size", 1024, "preview length in samples (power of two, >= 64)")
	warmup := fs.Int("warmup", 0, "blocks to process before taking the preview")
	ef := addEngineFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *size < 64 {
		return fmt.Errorf("preview: size must be >= 64: %d", *size)
	}
	if *warmup < 0 {
		return fmt.Errorf("preview: warmup must be >= 0: %d", *warmup)
	}

	a, err := spectrum.NewAnalyzer(*size)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	e, err := ef.newEngine(log)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	left := make([]float32, lieflow.BlockSize)
	right := make([]float32, lieflow.BlockSize)
	for range *warmup {
		e.Process(left, right)
	}
	log.Debug("warmed up", "blocks", e.Blocks(), "renormalizations", e.Renormalizations())

	left = make([]float32, *size)
	right = make([]float32, *size)
	e.RenderPreview(left, right)

	return writePreviewReport(stdout, a, left, right)
}

// writePreviewReport prints one row per oscillator ratio with the level of
// its partial in each channel.
func writePreviewReport(w io.Writer, a *spectrum.Analyzer, left, right []float32) error {
	magL, err := a.Magnitude(left)
	if err != nil {
		return err
	}
	magR, err := a.Magnitude(right)
	if err != nil {
		return err
	}

	// A full-scale sine of length N peaks at N/2.
	ref := float64(a.Size()) / 2

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Ratio\tBin\tLeft dB\tRight dB")
	for _, r := range lieflow.Ratios {
		bin := int(lieflow.PreviewCycles * r)
		fmt.Fprintf(tw, "%.2f\t%d\t%.2f\t%.2f\n", r, bin,
			core.LinearToDB(magL[bin]/ref),
			core.LinearToDB(magR[bin]/ref),
		)
	}
	fmt.Fprintf(tw, "Dominant\t%d\t\t\n", spectrum.DominantBin(magL))
	return tw.Flush()
}
