package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-spectra/dsp/core"
)

// Generator creates deterministic Signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 { return g.seed }

// SetSeed changes the noise seed.
func (g *Generator) SetSeed(seed int64) { g.seed = seed }

// Sine generates amplitude*sin(2*pi*freqHz*n/sampleRate).
func (g *Generator) Sine(freqHz, amplitude float64, samples int) (*Signal, error) {
	return g.Multisine([]float64{freqHz}, amplitude, samples)
}

// Multisine sums equal-amplitude sines at each of freqsHz.
func (g *Generator) Multisine(freqsHz []float64, amplitude float64, samples int) (*Signal, error) {
	if err := validateCount("sine", samples); err != nil {
		return nil, err
	}
	if len(freqsHz) == 0 {
		return nil, fmt.Errorf("signal: multisine needs at least one frequency: %w", core.ErrNullOrMissing)
	}

	rate := float64(g.cfg.SampleRate)
	out := make([]float64, samples)
	for _, f := range freqsHz {
		if f < 0 || f > rate/2 || math.IsNaN(f) {
			return nil, fmt.Errorf("signal: frequency must be in [0, %g]: %g: %w", rate/2, f, core.ErrInvalidParameter)
		}
		step := 2 * math.Pi * f / rate
		for i := range out {
			out[i] += amplitude * math.Sin(step*float64(i))
		}
	}

	return &Signal{samples: out, sampleRate: g.cfg.SampleRate}, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) (*Signal, error) {
	if err := validateCount("noise", samples); err != nil {
		return nil, err
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0: %f: %w", amplitude, core.ErrInvalidParameter)
	}

	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return &Signal{samples: out, sampleRate: g.cfg.SampleRate}, nil
}

// Impulse generates a single sample of the given amplitude at pos.
func (g *Generator) Impulse(amplitude float64, samples, pos int) (*Signal, error) {
	if err := validateCount("impulse", samples); err != nil {
		return nil, err
	}
	if pos < 0 || pos >= samples {
		return nil, fmt.Errorf("signal: impulse position %d outside [0,%d): %w", pos, samples, core.ErrInvalidParameter)
	}

	out := make([]float64, samples)
	out[pos] = amplitude

	return &Signal{samples: out, sampleRate: g.cfg.SampleRate}, nil
}

func validateCount(kind string, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("signal: %s samples must be > 0: %d: %w", kind, samples, core.ErrInvalidParameter)
	}
	return nil
}
