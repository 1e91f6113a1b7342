package spectrum

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-spectra/dsp/core"
)

// Spectrum is an immutable set of frequency bins for a transform of length
// SampleSize over a signal sampled at SampleRate Hz.
//
// Bins hold either the full two-sided transform (SampleSize bins) or the
// non-negative half (SampleSize/2+1 bins). Either way bin i maps to
// i*SampleRate/SampleSize Hz.
type Spectrum struct {
	bins       []complex128
	sampleRate int
	sampleSize int
}

// New copies bins into a Spectrum. sampleRate and sampleSize must be > 0 and
// len(bins) must be sampleSize or sampleSize/2+1.
func New(bins []complex128, sampleRate, sampleSize int) (*Spectrum, error) {
	if bins == nil {
		return nil, fmt.Errorf("spectrum: bins are required: %w", core.ErrNullOrMissing)
	}

	s, err := wrap(append([]complex128(nil), bins...), sampleRate, sampleSize)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Wrap builds a Spectrum that takes ownership of bins without copying. The
// caller must not touch bins afterwards.
func Wrap(bins []complex128, sampleRate, sampleSize int) (*Spectrum, error) {
	if bins == nil {
		return nil, fmt.Errorf("spectrum: bins are required: %w", core.ErrNullOrMissing)
	}
	return wrap(bins, sampleRate, sampleSize)
}

func wrap(bins []complex128, sampleRate, sampleSize int) (*Spectrum, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("spectrum: sample rate must be > 0: %d: %w", sampleRate, core.ErrInvalidParameter)
	}
	if sampleSize <= 0 {
		return nil, fmt.Errorf("spectrum: sample size must be > 0: %d: %w", sampleSize, core.ErrInvalidParameter)
	}
	if len(bins) != sampleSize && len(bins) != sampleSize/2+1 {
		return nil, fmt.Errorf("spectrum: %d bins for sample size %d, want %d or %d: %w",
			len(bins), sampleSize, sampleSize, sampleSize/2+1, core.ErrLengthMismatch)
	}

	return &Spectrum{
		bins:       bins,
		sampleRate: sampleRate,
		sampleSize: sampleSize,
	}, nil
}

// Len returns the number of stored bins.
func (s *Spectrum) Len() int { return len(s.bins) }

// SampleRate returns the sample rate of the originating signal in Hz.
func (s *Spectrum) SampleRate() int { return s.sampleRate }

// SampleSize returns the transform length that produced the bins.
func (s *Spectrum) SampleSize() int { return s.sampleSize }

// BinWidth returns the spacing between adjacent bins in Hz.
func (s *Spectrum) BinWidth() float64 {
	return float64(s.sampleRate) / float64(s.sampleSize)
}

// ItemFreq returns the frequency of bin index in Hz. Indices wrap cyclically
// over Len(), so ItemFreq(Len()+k) == ItemFreq(k); negative indices count
// back from the end.
func (s *Spectrum) ItemFreq(index int) float64 {
	n := len(s.bins)
	i := index % n
	if i < 0 {
		i += n
	}
	return float64(i) * s.BinWidth()
}

// ItemFreqChecked is ItemFreq without wrap-around: index outside [0, Len())
// fails with core.ErrInvalidParameter.
func (s *Spectrum) ItemFreqChecked(index int) (float64, error) {
	if index < 0 || index >= len(s.bins) {
		return 0, fmt.Errorf("spectrum: bin index %d outside [0,%d): %w", index, len(s.bins), core.ErrInvalidParameter)
	}
	return float64(index) * s.BinWidth(), nil
}

// MaxFreq returns the Nyquist frequency SampleRate/2, the highest frequency
// the spectrum can represent. See PeakFreq for the strongest component.
func (s *Spectrum) MaxFreq() float64 {
	return float64(s.sampleRate) / 2
}

// Bin returns the complex value of bin i. It panics if i is out of range.
func (s *Spectrum) Bin(i int) complex128 { return s.bins[i] }

// Bins returns a copy of the complex bins.
func (s *Spectrum) Bins() []complex128 {
	return append([]complex128(nil), s.bins...)
}

// ToReal writes the magnitude of every bin into dst in bin order. dst must
// have exactly Len() elements; on failure it is left untouched.
func (s *Spectrum) ToReal(dst []float64) error {
	if dst == nil {
		return fmt.Errorf("spectrum: output buffer is required: %w", core.ErrNullOrMissing)
	}
	if len(dst) != len(s.bins) {
		return fmt.Errorf("spectrum: output has %d elements, want %d: %w", len(dst), len(s.bins), core.ErrLengthMismatch)
	}

	MagnitudeTo(dst, s.bins)

	return nil
}

// Magnitudes returns |X[k]| for every bin.
func (s *Spectrum) Magnitudes() []float64 { return Magnitude(s.bins) }

// Power returns |X[k]|^2 for every bin.
func (s *Spectrum) Power() []float64 { return Power(s.bins) }

// Phase returns arg(X[k]) for every bin in radians.
func (s *Spectrum) Phase() []float64 { return Phase(s.bins) }

// UnwrappedPhase returns Phase with 2*pi discontinuities removed.
func (s *Spectrum) UnwrappedPhase() []float64 { return UnwrapPhase(s.Phase()) }

// PeakBin returns the index of the largest-magnitude bin among the
// non-negative frequencies [0, SampleSize/2]. Ties resolve to the lowest
// index.
func (s *Spectrum) PeakBin() int {
	last := min(s.sampleSize/2, len(s.bins)-1)
	return floats.MaxIdx(Magnitude(s.bins[:last+1]))
}

// PeakFreq returns the frequency of PeakBin in Hz.
func (s *Spectrum) PeakFreq() float64 {
	return s.ItemFreq(s.PeakBin())
}
