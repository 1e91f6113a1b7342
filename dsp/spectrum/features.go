package spectrum

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultRolloff is the energy fraction used by Features for Rolloff.
const DefaultRolloff = 0.85

// Features are shape descriptors of the non-negative half of a spectrum.
// Frequencies are in Hz.
type Features struct {
	Centroid  float64 // magnitude-weighted mean frequency
	Spread    float64 // magnitude-weighted standard deviation around Centroid
	Flatness  float64 // geometric over arithmetic mean of bins 1..N/2, in [0, 1]
	Rolloff   float64 // frequency below which DefaultRolloff of the energy lies
	Bandwidth float64 // -3 dB width around the peak, linearly interpolated
}

// Features computes shape descriptors over bins 0..SampleSize/2.
func (s *Spectrum) Features() Features {
	mags := s.halfMagnitudes()
	if len(mags) < 2 {
		return Features{}
	}

	freqs := make([]float64, len(mags))
	for i := range freqs {
		freqs[i] = float64(i) * s.BinWidth()
	}

	c := centroid(mags, freqs)
	return Features{
		Centroid:  c,
		Spread:    spread(mags, freqs, c),
		Flatness:  flatness(mags[1:]),
		Rolloff:   s.RolloffFreq(DefaultRolloff),
		Bandwidth: bandwidth3dB(mags, s.BinWidth()),
	}
}

// RolloffFreq returns the lowest bin frequency at which the cumulative energy
// of bins 0..SampleSize/2 reaches fraction of the total. A silent spectrum
// yields 0.
func (s *Spectrum) RolloffFreq(fraction float64) float64 {
	mags := s.halfMagnitudes()
	total := floats.Dot(mags, mags)
	if total == 0 {
		return 0
	}

	threshold := fraction * total
	acc := 0.0
	for i, m := range mags {
		acc += m * m
		if acc >= threshold {
			return float64(i) * s.BinWidth()
		}
	}
	return float64(len(mags)-1) * s.BinWidth()
}

func (s *Spectrum) halfMagnitudes() []float64 {
	last := min(s.sampleSize/2, len(s.bins)-1)
	return Magnitude(s.bins[:last+1])
}

func centroid(mags, freqs []float64) float64 {
	sum := floats.Sum(mags)
	if sum == 0 {
		return 0
	}
	return floats.Dot(mags, freqs) / sum
}

func spread(mags, freqs []float64, c float64) float64 {
	sum := floats.Sum(mags)
	if sum == 0 {
		return 0
	}
	acc := 0.0
	for i, m := range mags {
		d := freqs[i] - c
		acc += d * d * m
	}
	return math.Sqrt(acc / sum)
}

// flatness is 0 when any bin is zero or all bins are silent.
func flatness(mags []float64) float64 {
	mean := floats.Sum(mags) / float64(len(mags))
	if mean == 0 {
		return 0
	}

	logSum := 0.0
	for _, m := range mags {
		if m <= 0 {
			return 0
		}
		logSum += math.Log(m)
	}

	return math.Exp(logSum/float64(len(mags))) / mean
}

func bandwidth3dB(mags []float64, binWidth float64) float64 {
	peak := floats.MaxIdx(mags)
	if mags[peak] == 0 {
		return 0
	}
	threshold := mags[peak] / math.Sqrt2

	lower := 0.0
	for i := peak; i >= 1; i-- {
		if mags[i-1] <= threshold {
			lower = crossing(i-1, mags[i-1], mags[i], threshold)
			break
		}
	}

	upper := float64(len(mags) - 1)
	for i := peak; i < len(mags)-1; i++ {
		if mags[i+1] <= threshold {
			upper = crossing(i, mags[i], mags[i+1], threshold)
			break
		}
	}

	return max(upper-lower, 0) * binWidth
}

// crossing returns the fractional bin position between lo and lo+1 where the
// magnitude falls to threshold.
func crossing(lo int, a, b, threshold float64) float64 {
	if a == b {
		return float64(lo) + 0.5
	}
	return float64(lo) + (threshold-a)/(b-a)
}
