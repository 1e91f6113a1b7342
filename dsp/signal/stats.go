package signal

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// RMS returns the root-mean-square level, 0 for an empty signal.
func (s *Signal) RMS() float64 {
	if len(s.samples) == 0 {
		return 0
	}
	return math.Sqrt(floats.Dot(s.samples, s.samples) / float64(len(s.samples)))
}

// Mean returns the DC offset, 0 for an empty signal.
func (s *Signal) Mean() float64 {
	if len(s.samples) == 0 {
		return 0
	}
	return floats.Sum(s.samples) / float64(len(s.samples))
}

// CrestFactor returns Peak/RMS, or 0 for a silent signal.
func (s *Signal) CrestFactor() float64 {
	r := s.RMS()
	if r == 0 {
		return 0
	}
	return s.Peak() / r
}

// ZeroCrossings counts sign changes between consecutive samples. Samples that
// are exactly zero do not count as a sign.
func (s *Signal) ZeroCrossings() int {
	n := 0
	for i := 1; i < len(s.samples); i++ {
		if s.samples[i-1]*s.samples[i] < 0 {
			n++
		}
	}
	return n
}
