package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/cwbudde/algo-vecmath"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-lieflow/dsp/core"
	"github.com/cwbudde/algo-lieflow/dsp/dither"
	"github.com/cwbudde/algo-lieflow/dsp/lieflow"
	"github.com/cwbudde/algo-lieflow/stats/level"
)

// renderChunkFrames is the number of frames encoded per WAV write.
const renderChunkFrames = 4096

func runRender(args []string, _ io.Writer, log *slog.Logger) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	out := fs.String("o", "lieflow.wav", "output WAV path")
	seconds := fs.Float64("seconds", 10, "duration in seconds")
	gainDB := fs.Float64("gain", 0, "gain in dB applied before quantization")
	bits := fs.Int("bits", 16, "bit depth: 16 or 24")
	ditherName := fs.String("dither", "triangular", "dither: none, rectangular or triangular")
	ef := addEngineFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *bits != 16 && *bits != 24 {
		return fmt.Errorf("render: unsupported bit depth %d", *bits)
	}
	if *seconds <= 0 || math.IsNaN(*seconds) {
		return fmt.Errorf("render: duration must be > 0: %v", *seconds)
	}

	typ, err := dither.ParseType(*ditherName)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	e, err := ef.newEngine(log)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	q, err := dither.NewQuantizer(*bits, typ, math.Float64bits(ef.resolved))
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	frames := int(*seconds * float64(ef.rate))
	res, err := renderWAV(*out, e, frames, q, core.DBToLinear(*gainDB))
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	log.Info("rendered",
		"path", *out,
		"frames", res.Frames,
		"blocks", e.Blocks(),
		"renormalizations", e.Renormalizations(),
		"peak_l_db", fmt.Sprintf("%.2f", res.Left.Peak_dB),
		"peak_r_db", fmt.Sprintf("%.2f", res.Right.Peak_dB),
		"rms_l_db", fmt.Sprintf("%.2f", res.Left.RMS_dB),
		"rms_r_db", fmt.Sprintf("%.2f", res.Right.RMS_dB),
	)
	if n := q.Clipped(); n > 0 {
		log.Warn("output clipped during quantization; lower -gain", "samples", n, "peak", res.Peak())
	}
	return nil
}

// renderWAV streams frames of e into a PCM WAV file at path, quantized by q.
// Levels are metered before gain is applied.
func renderWAV(path string, e *lieflow.Engine, frames int, q *dither.Quantizer, gain float64) (level.Levels, error) {
	f, err := os.Create(path)
	if err != nil {
		return level.Levels{}, err
	}
	defer f.Close()

	rate := e.Config().SampleRate
	bits := q.BitDepth()
	enc := wav.NewEncoder(f, rate, bits, 2, 1)

	stream := lieflow.NewStream(e)
	meter := level.NewMeter()

	chunk := make([]float32, 2*renderChunkFrames)
	wide := make([]float64, len(chunk))
	ints := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 2,
			SampleRate:  rate,
		},
		SourceBitDepth: bits,
	}

	for remaining := frames; remaining > 0; {
		n := min(remaining, renderChunkFrames)
		buf := core.EnsureLen32(chunk, 2*n)
		stream.ReadFrames(buf)
		meter.UpdateInterleaved(buf)

		w := wide[:2*n]
		core.Widen(w, buf)
		vecmath.ScaleBlock(w, w, gain)

		ints.Data = q.Block(ints.Data, w)
		if err := enc.Write(ints); err != nil {
			return level.Levels{}, fmt.Errorf("write WAV: %w", err)
		}
		remaining -= n
	}

	if err := enc.Close(); err != nil {
		return level.Levels{}, fmt.Errorf("finalize WAV: %w", err)
	}
	return meter.Result(), f.Close()
}
