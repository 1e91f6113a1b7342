package signal

import (
	"fmt"
	"math"
	"time"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectra/dsp/core"
)

// Signal is an ordered sequence of real samples taken at SampleRate Hz.
type Signal struct {
	samples    []float64
	sampleRate int
}

// New copies samples into a new Signal. samples must be non-nil (use Empty
// for a zero-length signal) and sampleRate must be > 0.
func New(samples []float64, sampleRate int) (*Signal, error) {
	if samples == nil {
		return nil, fmt.Errorf("signal: samples are required: %w", core.ErrNullOrMissing)
	}
	if err := validateRate(sampleRate); err != nil {
		return nil, err
	}

	return &Signal{
		samples:    append(make([]float64, 0, len(samples)), samples...),
		sampleRate: sampleRate,
	}, nil
}

// Empty returns a zero-length signal at sampleRate.
func Empty(sampleRate int) (*Signal, error) {
	if err := validateRate(sampleRate); err != nil {
		return nil, err
	}

	return &Signal{samples: []float64{}, sampleRate: sampleRate}, nil
}

// Rescale returns a new signal whose samples are amount times those of s.
// The sample rate is preserved; amount may be zero or negative.
func Rescale(s *Signal, amount float64) (*Signal, error) {
	if s == nil {
		return nil, fmt.Errorf("signal: rescale of nil signal: %w", core.ErrNullOrMissing)
	}

	out := make([]float64, len(s.samples))
	if len(out) > 0 {
		vecmath.ScaleBlock(out, s.samples, amount)
	}

	return &Signal{samples: out, sampleRate: s.sampleRate}, nil
}

// Normalize returns a new signal scaled so its largest absolute sample equals
// targetPeak. An all-zero signal stays all-zero.
func Normalize(s *Signal, targetPeak float64) (*Signal, error) {
	if s == nil {
		return nil, fmt.Errorf("signal: normalize of nil signal: %w", core.ErrNullOrMissing)
	}
	if targetPeak < 0 || math.IsNaN(targetPeak) {
		return nil, fmt.Errorf("signal: normalize target peak must be >= 0: %f: %w",
			targetPeak, core.ErrInvalidParameter)
	}

	peak := s.Peak()
	if peak == 0 {
		return Rescale(s, 0)
	}

	return Rescale(s, targetPeak/peak)
}

// Len returns the number of samples.
func (s *Signal) Len() int { return len(s.samples) }

// SampleRate returns the sample rate in Hz.
func (s *Signal) SampleRate() int { return s.sampleRate }

// At returns sample i. It panics if i is out of range, like a slice index.
func (s *Signal) At(i int) float64 { return s.samples[i] }

// Samples returns a copy of the samples.
func (s *Signal) Samples() []float64 {
	return append([]float64(nil), s.samples...)
}

// CopyTo copies min(len(dst), Len()) samples into dst and returns the count.
func (s *Signal) CopyTo(dst []float64) int {
	return copy(dst, s.samples)
}

// Peak returns the largest absolute sample value, 0 for an empty signal.
func (s *Signal) Peak() float64 {
	peak := 0.0
	for _, v := range s.samples {
		peak = math.Max(peak, math.Abs(v))
	}
	return peak
}

// Duration returns Len()/SampleRate() as a time.Duration.
func (s *Signal) Duration() time.Duration {
	return time.Duration(float64(len(s.samples)) / float64(s.sampleRate) * float64(time.Second))
}

func validateRate(sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("signal: sample rate must be > 0: %d: %w", sampleRate, core.ErrInvalidParameter)
	}
	return nil
}
