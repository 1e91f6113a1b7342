package fft

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-spectra/dsp/core"
	"github.com/cwbudde/algo-spectra/dsp/signal"
	"github.com/cwbudde/algo-spectra/dsp/spectrum"
)

// Option configures a ForwardFFT.
type Option func(*config)

type config struct {
	backend Backend
}

// WithBackend selects the transform implementation. The default is
// BackendAlgoFFT.
func WithBackend(b Backend) Option {
	return func(c *config) {
		c.backend = b
	}
}

// ForwardFFT is a reusable forward transform of fixed length N.
//
// It is safe for concurrent use. Process and ProcessReal never write to the
// ForwardFFT; each call borrows its own workspace.
type ForwardFFT struct {
	n       int
	backend Backend
	pool    sync.Pool
}

// workspace holds everything a single transform call mutates.
type workspace struct {
	eng     engine
	samples []float64
	bins    []complex128
	half    []complex128
}

// New builds a ForwardFFT for sampleSize points. sampleSize must be a power
// of two (1, 2, 4, ...); anything else fails with core.ErrInvalidParameter.
func New(sampleSize int, opts ...Option) (*ForwardFFT, error) {
	if sampleSize <= 0 || !core.IsPowerOfTwo(sampleSize) {
		return nil, fmt.Errorf("fft: sample size must be a power of two > 0: %d: %w",
			sampleSize, core.ErrInvalidParameter)
	}

	cfg := config{backend: BackendAlgoFFT}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Build one workspace up front so backend errors surface here rather than
	// on first use.
	ws, err := newWorkspace(cfg.backend, sampleSize)
	if err != nil {
		return nil, err
	}

	f := &ForwardFFT{
		n:       sampleSize,
		backend: cfg.backend,
	}
	f.pool.New = func() any {
		w, err := newWorkspace(f.backend, f.n)
		if err != nil {
			return nil
		}
		return w
	}
	f.pool.Put(ws)

	return f, nil
}

func newWorkspace(b Backend, n int) (*workspace, error) {
	eng, err := newEngine(b, n)
	if err != nil {
		return nil, err
	}
	return &workspace{
		eng:     eng,
		samples: make([]float64, n),
		bins:    make([]complex128, n),
		half:    make([]complex128, n/2+1),
	}, nil
}

// Len returns the transform length N.
func (f *ForwardFFT) Len() int { return f.n }

// RealOutputLen returns N/2+1, the length ProcessReal expects for its
// output buffer.
func (f *ForwardFFT) RealOutputLen() int { return f.n/2 + 1 }

// Backend reports the transform implementation in use.
func (f *ForwardFFT) Backend() Backend { return f.backend }

// Process transforms sig into a Spectrum holding all N complex bins tagged
// with the signal's sample rate. sig must have exactly Len() samples;
// mismatched signals are neither padded nor truncated.
func (f *ForwardFFT) Process(sig *signal.Signal) (*spectrum.Spectrum, error) {
	if sig == nil {
		return nil, fmt.Errorf("fft: signal is required: %w", core.ErrNullOrMissing)
	}
	if sig.Len() != f.n {
		return nil, fmt.Errorf("fft: signal has %d samples, want %d: %w", sig.Len(), f.n, core.ErrLengthMismatch)
	}

	return f.transform(sig, nil, outputSpectrum, nil)
}

// ProcessReal transforms src into magnitudes of the non-negative frequency
// bins 0..N/2. len(src) must be Len() and len(dst) must be RealOutputLen().
// Only the N/2+1 unique bins are computed, through the backend's real-input
// transform.
//
// Unlike Process it carries no sample-rate metadata; callers map bin k to
// k*rate/N themselves. On failure dst is left untouched.
func (f *ForwardFFT) ProcessReal(dst, src []float64) error {
	if src == nil || dst == nil {
		return fmt.Errorf("fft: input and output buffers are required: %w", core.ErrNullOrMissing)
	}
	if len(src) != f.n {
		return fmt.Errorf("fft: input has %d samples, want %d: %w", len(src), f.n, core.ErrLengthMismatch)
	}
	if len(dst) != f.RealOutputLen() {
		return fmt.Errorf("fft: output has %d elements, want %d: %w", len(dst), f.RealOutputLen(), core.ErrLengthMismatch)
	}

	_, err := f.transform(nil, src, outputRawReal, dst)
	return err
}

type outputKind int

const (
	outputSpectrum outputKind = iota
	outputRawReal
)

// transform runs the shared transform path. Inputs are already validated.
// For outputSpectrum the samples come from sig; for outputRawReal they come
// from src and magnitudes land in dst.
func (f *ForwardFFT) transform(sig *signal.Signal, src []float64, kind outputKind, dst []float64) (*spectrum.Spectrum, error) {
	ws, err := f.acquire()
	if err != nil {
		return nil, err
	}
	defer f.pool.Put(ws)

	if sig != nil {
		sig.CopyTo(ws.samples)
		src = ws.samples
	}

	switch kind {
	case outputRawReal:
		if err := ws.eng.forwardHalf(ws.half, src); err != nil {
			return nil, err
		}
		spectrum.MagnitudeTo(dst, ws.half)
		return nil, nil
	default:
		if err := ws.eng.forward(ws.bins, src); err != nil {
			return nil, err
		}
		bins := append([]complex128(nil), ws.bins...)
		return spectrum.Wrap(bins, sig.SampleRate(), f.n)
	}
}

func (f *ForwardFFT) acquire() (*workspace, error) {
	ws, ok := f.pool.Get().(*workspace)
	if !ok || ws == nil {
		return newWorkspace(f.backend, f.n)
	}
	return ws, nil
}
