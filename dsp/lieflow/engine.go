package lieflow

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"
)

// BlockSize is the number of frames produced by one Process call.
const BlockSize = 128

// seedStream is the fixed second PCG word; the injected value supplies the
// first.
const seedStream = 0x9e3779b97f4a7c15

var (
	ErrInvalidSampleRate = errors.New("lieflow: sample rate must be > 0")
	ErrInvalidOption     = errors.New("lieflow: invalid option")
	ErrNilSource         = errors.New("lieflow: nil random source")
	ErrBlockLength       = errors.New("lieflow: buffer length must equal BlockSize")
	ErrLengthMismatch    = errors.New("lieflow: channel buffer length mismatch")
)

// Source supplies uniformly distributed values in [0, 1).
//
// *math/rand/v2.Rand satisfies Source.
type Source interface {
	Float64() float64
}

// SourceFunc adapts a function to [Source].
type SourceFunc func() float64

// Float64 calls f.
func (f SourceFunc) Float64() float64 { return f() }

// channel is one context: matrix flow plus its oscillator bank.
type channel struct {
	flow flow
	bank bank
}

func (c *channel) generate(dst []float32, dt float64) {
	c.flow.evolve(dt)
	w := c.flow.unit.Col(0)
	for n := range dst {
		dst[n] = float32(real(c.bank.next(&w)) / Divider)
	}
}

// Engine is a stereo Lie-flow synthesizer.
//
// An Engine is not safe for concurrent use; callers serialize all calls.
type Engine struct {
	cfg Config
	rng *rand.Rand

	channels  [2]channel
	nchannels int

	dt        float64 // flow time per block
	threshold int     // blocks between renormalizations
	counter   int
	phase     float64 // PhaseCoupled right-channel rotation

	blocks  uint64
	renorms uint64
}

// New creates an engine. Exactly one value is read from src to seed the
// engine's internal random stream; src is not retained.
func New(src Source, opts ...Option) (*Engine, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	cfg := ApplyOptions(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := uint64(src.Float64() * (1 << 53))
	rng := rand.New(rand.NewPCG(seed, seedStream))

	e := &Engine{
		cfg:       cfg,
		rng:       rng,
		nchannels: 2,
		dt:        BlockSize * cfg.VariationRate / float64(cfg.SampleRate),
		threshold: cfg.SampleRate / BlockSize,
	}
	if cfg.Mode == PhaseCoupled {
		e.nchannels = 1
	}

	angularStep := 2 * math.Pi * cfg.Frequency / float64(cfg.SampleRate)
	for i := range e.nchannels {
		e.channels[i] = channel{
			flow: newFlow(rng),
			bank: newBank(angularStep),
		}
	}

	return e, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Threshold returns the number of blocks between renormalizations. Zero
// means every block.
func (e *Engine) Threshold() int { return e.threshold }

// Blocks returns the number of processed blocks.
func (e *Engine) Blocks() uint64 { return e.blocks }

// Renormalizations returns how many times drift correction has run.
func (e *Engine) Renormalizations() uint64 { return e.renorms }

// Process advances the engine by one block and writes it into left and
// right. Both buffers must hold exactly [BlockSize] samples; anything else
// panics with [ErrBlockLength].
func (e *Engine) Process(left, right []float32) {
	if len(left) != BlockSize || len(right) != BlockSize {
		panic(fmt.Errorf("%w: got %d and %d, want %d", ErrBlockLength, len(left), len(right), BlockSize))
	}

	if e.cfg.Mode == PhaseCoupled {
		e.processCoupled(left, right)
	} else {
		e.channels[0].generate(left, e.dt)
		e.channels[1].generate(right, e.dt)
	}

	e.blocks++
	e.counter++
	if e.counter >= e.threshold {
		e.renormalize()
	}
}

func (e *Engine) processCoupled(left, right []float32) {
	c := &e.channels[0]
	c.flow.evolve(e.dt)
	w := c.flow.unit.Col(0)
	rot := cmplx.Exp(complex(0, e.phase))
	for n := range left {
		s := c.bank.next(&w)
		left[n] = float32(real(s) / Divider)
		right[n] = float32(real(s*rot) / Divider)
	}
	e.phase += e.dt
}

// renormalize removes accumulated drift and then perturbs the bottom of
// every Hermitian stack so the flow never settles.
func (e *Engine) renormalize() {
	for i := range e.nchannels {
		c := &e.channels[i]
		c.bank.normalize()
		c.flow.normalize()
	}
	for i := range e.nchannels {
		e.channels[i].flow.mutate(e.rng)
	}
	e.phase = math.Mod(e.phase, 2*math.Pi)
	e.counter = 0
	e.renorms++
}
