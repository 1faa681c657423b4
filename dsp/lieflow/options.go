package lieflow

import (
	"fmt"
	"strings"
)

// StereoMode selects how the right channel is derived.
type StereoMode int

const (
	// Independent runs two fully separate channel contexts.
	Independent StereoMode = iota
	// PhaseCoupled shares one context; the right channel is the same
	// projection rotated by a slowly accumulating phase.
	PhaseCoupled
)

// String returns the mode name used on command lines.
func (m StereoMode) String() string {
	switch m {
	case Independent:
		return "independent"
	case PhaseCoupled:
		return "coupled"
	default:
		return fmt.Sprintf("StereoMode(%d)", int(m))
	}
}

// ParseStereoMode parses the names returned by [StereoMode.String].
func ParseStereoMode(s string) (StereoMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "independent", "indep", "i":
		return Independent, nil
	case "coupled", "phase-coupled", "phasecoupled", "c":
		return PhaseCoupled, nil
	default:
		return 0, fmt.Errorf("%w: unknown stereo mode %q", ErrInvalidOption, s)
	}
}

// Config holds the engine settings.
type Config struct {
	SampleRate    int
	Mode          StereoMode
	Frequency     float64 // base oscillator frequency in Hz
	VariationRate float64 // flow speed, in flow time units per second
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the stock settings: 48 kHz, independent channels,
// 100 Hz base frequency and a variation rate of 3.
func DefaultConfig() Config {
	return Config{
		SampleRate:    48000,
		Mode:          Independent,
		Frequency:     100,
		VariationRate: 3,
	}
}

// WithSampleRate sets the output sample rate in Hz.
func WithSampleRate(sampleRate int) Option {
	return func(cfg *Config) {
		cfg.SampleRate = sampleRate
	}
}

// WithStereoMode sets the stereo strategy.
func WithStereoMode(mode StereoMode) Option {
	return func(cfg *Config) {
		cfg.Mode = mode
	}
}

// WithFrequency sets the frequency of the ratio-1 oscillator.
func WithFrequency(hz float64) Option {
	return func(cfg *Config) {
		cfg.Frequency = hz
	}
}

// WithVariationRate scales how fast the matrix flow advances.
func WithVariationRate(rate float64) Option {
	return func(cfg *Config) {
		cfg.VariationRate = rate
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports the first invalid setting in cfg.
func (cfg Config) Validate() error {
	if cfg.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, cfg.SampleRate)
	}
	if cfg.Mode != Independent && cfg.Mode != PhaseCoupled {
		return fmt.Errorf("%w: stereo mode %d", ErrInvalidOption, int(cfg.Mode))
	}
	if !validRate(cfg.Frequency) {
		return fmt.Errorf("%w: frequency %v", ErrInvalidOption, cfg.Frequency)
	}
	if !validRate(cfg.VariationRate) {
		return fmt.Errorf("%w: variation rate %v", ErrInvalidOption, cfg.VariationRate)
	}
	return nil
}

func validRate(v float64) bool {
	// NaN fails both comparisons.
	return v >= 0 && v <= 1e12
}
