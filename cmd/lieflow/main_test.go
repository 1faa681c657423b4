package main

import (
	"bytes"
	"errors"
	"flag"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-lieflow/dsp/dither"
	"github.com/cwbudde/algo-lieflow/dsp/lieflow"
)

func TestRunNoCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(nil, &stdout, &stderr)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("run() = %v, want flag.ErrHelp", err)
	}
	if !strings.Contains(stderr.String(), "render") {
		t.Fatalf("usage does not list commands:\n%s", stderr.String())
	}
}

func TestRunUnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"mix"}, &stdout, &stderr); err == nil {
		t.Fatal("expected error for unknown command")
	}
}

func TestRenderWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")

	var stdout, stderr bytes.Buffer
	err := run([]string{
		"render",
		"-o", path,
		"-seconds", "0.25",
		"-rate", "8000",
		"-seed", "0.3",
		"-mode", "coupled",
		"-gain", "-6",
	}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("render: %v\n%s", err, stderr.String())
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		t.Fatal("output is not a valid WAV file")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer: %v", err)
	}

	if got := buf.Format.NumChannels; got != 2 {
		t.Fatalf("channels = %d, want 2", got)
	}
	if got := buf.Format.SampleRate; got != 8000 {
		t.Fatalf("sample rate = %d, want 8000", got)
	}
	if got, want := len(buf.Data), 2*2000; got != want {
		t.Fatalf("samples = %d, want %d", got, want)
	}

	nonZero := 0
	for _, v := range buf.Data {
		if v > math.MaxInt16 || v < -math.MaxInt16 {
			t.Fatalf("sample %d outside 16-bit range", v)
		}
		if v != 0 {
			nonZero++
		}
	}
	if nonZero < len(buf.Data)/2 {
		t.Fatalf("only %d of %d samples are non-zero", nonZero, len(buf.Data))
	}
	if !strings.Contains(stderr.String(), "rendered") {
		t.Fatalf("missing summary log:\n%s", stderr.String())
	}
}

func TestRenderWAVMatchesEngine(t *testing.T) {
	newEngine := func() *lieflow.Engine {
		e, err := lieflow.New(lieflow.SourceFunc(func() float64 { return 0.42 }),
			lieflow.WithSampleRate(4000))
		if err != nil {
			t.Fatal(err)
		}
		return e
	}

	path := filepath.Join(t.TempDir(), "ref.wav")
	q, err := dither.NewQuantizer(16, dither.None, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := renderWAV(path, newEngine(), 300, q, 1); err != nil {
		t.Fatalf("renderWAV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	buf, err := wav.NewDecoder(f).FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer: %v", err)
	}

	want := lieflow.Render(newEngine(), 300)
	if len(buf.Data) != len(want) {
		t.Fatalf("samples = %d, want %d", len(buf.Data), len(want))
	}

	const fullScale = math.MaxInt16
	for i, w := range want {
		got := float64(buf.Data[i]) / fullScale
		if math.Abs(got-float64(w)) > 1.0/fullScale {
			t.Fatalf("sample %d = %v, want %v", i, got, w)
		}
	}
}

func TestRenderRejectsBadFlags(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"bits", []string{"-bits", "12"}},
		{"dither", []string{"-dither", "gaussian"}},
		{"seconds", []string{"-seconds", "0"}},
		{"mode", []string{"-mode", "mono"}},
		{"seed", []string{"-seed", "1.5"}},
		{"rate", []string{"-rate", "0"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			args := append([]string{"render", "-o", filepath.Join(dir, tc.name+".wav")}, tc.args...)
			var stdout, stderr bytes.Buffer
			if err := run(args, &stdout, &stderr); err == nil {
				t.Fatalf("expected error for %v", tc.args)
			}
		})
	}
}

func TestPreviewReport(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"preview", "-size", "256", "-seed", "0.9", "-warmup", "3", "-rate", "8000"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("preview: %v\n%s", err, stderr.String())
	}

	out := stdout.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// header + one row per ratio + dominant bin
	if want := 1 + len(lieflow.Ratios) + 1; len(lines) != want {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), want, out)
	}
	if !strings.HasPrefix(lines[0], "Ratio") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1.00") || !strings.Contains(lines[1], " 4 ") {
		t.Fatalf("unexpected first row %q", lines[1])
	}
}

func TestPreviewRejectsSmallSize(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"preview", "-size", "32"}, &stdout, &stderr); err == nil {
		t.Fatal("expected error for size below 64")
	}
	if err := run([]string{"preview", "-size", "100"}, &stdout, &stderr); err == nil {
		t.Fatal("expected error for non power of two size")
	}
}
