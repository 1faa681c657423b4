package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/cwbudde/algo-lieflow/dsp/lieflow"
)

func runPlay(args []string, _ io.Writer, log *slog.Logger) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	seconds := fs.Float64("seconds", 0, "stop after this many seconds; 0 plays until interrupted")
	latency := fs.Duration("buffer", 100*time.Millisecond, "device buffer duration")
	ef := addEngineFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	e, err := ef.newEngine(log)
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *seconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(*seconds*float64(time.Second)))
		defer cancel()
	}

	return play(ctx, e, *latency, log)
}

// play streams e to the default output device until ctx is done.
func play(ctx context.Context, e *lieflow.Engine, latency time.Duration, log *slog.Logger) error {
	otoCtx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   e.Config().SampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   latency,
	})
	if err != nil {
		return fmt.Errorf("play: open audio device: %w", err)
	}
	<-ready

	player := otoCtx.NewPlayer(lieflow.NewStream(e))
	defer player.Close()

	player.Play()
	log.Info("playing", "rate", e.Config().SampleRate, "mode", e.Config().Mode)

	start := time.Now()
	<-ctx.Done()
	player.Pause()

	log.Info("stopped",
		"elapsed", time.Since(start).Round(time.Millisecond),
		"blocks", e.Blocks(),
		"renormalizations", e.Renormalizations(),
	)
	return nil
}
