// Package analyzer chains a window and a ForwardFFT into a one-call spectrum
// analysis of fixed-length signal frames.
package analyzer

import (
	"cmp"
	"fmt"
	"math/cmplx"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-spectra/dsp/core"
	"github.com/cwbudde/algo-spectra/dsp/fft"
	"github.com/cwbudde/algo-spectra/dsp/signal"
	"github.com/cwbudde/algo-spectra/dsp/spectrum"
	"github.com/cwbudde/algo-spectra/dsp/window"
)

// Option configures an Analyzer.
type Option func(*config)

type config struct {
	shape   window.Shape
	backend fft.Backend
}

// WithWindow selects the taper applied before the transform. The default is
// window.ShapeHann.
func WithWindow(shape window.Shape) Option {
	return func(c *config) {
		c.shape = shape
	}
}

// WithBackend selects the FFT backend.
func WithBackend(b fft.Backend) Option {
	return func(c *config) {
		c.backend = b
	}
}

// Analyzer windows a frame of exactly Size() samples and transforms it.
// It is safe for concurrent use.
type Analyzer struct {
	win     *window.Window
	fft     *fft.ForwardFFT
	coeff   float64 // sum of window coefficients
	capture int
}

// Result is the outcome of analyzing one frame.
type Result struct {
	Spectrum *spectrum.Spectrum
	// PeakFreq is the frequency of the strongest non-negative bin in Hz.
	PeakFreq float64
	// PeakMagnitude is the raw |X[k]| of that bin.
	PeakMagnitude float64
	// PeakAmplitude estimates the amplitude of a sinusoid centred on the peak
	// bin, correcting for the window's coherent gain.
	PeakAmplitude float64

	windowSum float64
	capture   int
}

// Peak describes one spectrum bin.
type Peak struct {
	Bin       int
	Freq      float64
	Magnitude float64
	Amplitude float64 // see Result.PeakAmplitude
}

// New builds an Analyzer for frames of size samples. size must be a power of
// two.
func New(size int, opts ...Option) (*Analyzer, error) {
	cfg := config{shape: window.ShapeHann, backend: fft.BackendAlgoFFT}
	for _, opt := range opts {
		opt(&cfg)
	}

	f, err := fft.New(size, fft.WithBackend(cfg.backend))
	if err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}

	win, err := window.Make(cfg.shape, size, 0, size)
	if err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}

	return &Analyzer{
		win:     win,
		fft:     f,
		coeff:   floats.Sum(win.Coefficients()),
		capture: captureBins(cfg.shape),
	}, nil
}

// Size returns the frame length.
func (a *Analyzer) Size() int { return a.fft.Len() }

// Window returns the taper applied to every frame.
func (a *Analyzer) Window() *window.Window { return a.win }

// Backend reports the FFT backend in use.
func (a *Analyzer) Backend() fft.Backend { return a.fft.Backend() }

// Analyze windows sig and returns its spectrum and peak. sig must have
// exactly Size() samples.
func (a *Analyzer) Analyze(sig *signal.Signal) (Result, error) {
	if sig == nil {
		return Result{}, fmt.Errorf("analyzer: signal is required: %w", core.ErrNullOrMissing)
	}
	if sig.Len() != a.Size() {
		return Result{}, fmt.Errorf("analyzer: signal has %d samples, want %d: %w", sig.Len(), a.Size(), core.ErrLengthMismatch)
	}

	buf := sig.Samples()
	if err := a.win.ApplyInPlace(buf); err != nil {
		return Result{}, fmt.Errorf("analyzer: %w", err)
	}

	windowed, err := signal.New(buf, sig.SampleRate())
	if err != nil {
		return Result{}, fmt.Errorf("analyzer: %w", err)
	}

	spec, err := a.fft.Process(windowed)
	if err != nil {
		return Result{}, fmt.Errorf("analyzer: %w", err)
	}

	peak := spec.PeakBin()
	mag := cmplx.Abs(spec.Bin(peak))

	return Result{
		Spectrum:      spec,
		PeakFreq:      spec.ItemFreq(peak),
		PeakMagnitude: mag,
		PeakAmplitude: amplitude(mag, a.coeff, peak, a.Size()),
		windowSum:     a.coeff,
		capture:       a.capture,
	}, nil
}

// amplitude converts a bin magnitude to sinusoid amplitude. DC and Nyquist
// have no mirrored partner, so they are not doubled.
func amplitude(mag, windowSum float64, bin, size int) float64 {
	if windowSum <= 0 {
		return 0
	}
	if bin == 0 || 2*bin == size {
		return mag / windowSum
	}
	return 2 * mag / windowSum
}

// AnalyzeSamples is Analyze for a bare sample slice at sampleRate Hz.
func (a *Analyzer) AnalyzeSamples(samples []float64, sampleRate int) (Result, error) {
	sig, err := signal.New(samples, sampleRate)
	if err != nil {
		return Result{}, fmt.Errorf("analyzer: %w", err)
	}
	return a.Analyze(sig)
}

// TopBins returns the n strongest bins of the non-negative half of the
// spectrum, strongest first. Equal magnitudes keep ascending bin order.
func (r Result) TopBins(n int) []Peak {
	if r.Spectrum == nil || n <= 0 {
		return nil
	}

	half := min(r.Spectrum.SampleSize()/2+1, r.Spectrum.Len())
	mags := r.Spectrum.Magnitudes()[:half]

	peaks := make([]Peak, half)
	for k, m := range mags {
		peaks[k] = Peak{
			Bin:       k,
			Freq:      r.Spectrum.ItemFreq(k),
			Magnitude: m,
			Amplitude: amplitude(m, r.windowSum, k, r.Spectrum.SampleSize()),
		}
	}
	slices.SortStableFunc(peaks, func(a, b Peak) int {
		return cmp.Compare(b.Magnitude, a.Magnitude)
	})

	return peaks[:min(n, len(peaks))]
}
