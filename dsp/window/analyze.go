package window

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the 3 dB (half-power) main lobe width in bins.
	Bandwidth3dB float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
	// FirstMinimumBins is the first null position in bins.
	FirstMinimumBins float64
	// ScallopLossdB is the worst-case amplitude error for an off-bin tone.
	ScallopLossdB float64
}

// Analyze evaluates the DTFT of coeffs numerically. An empty or zero-sum
// sequence yields the zero Analysis.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	dcRef := dtftPower(coeffs, 0)
	if dcRef == 0 {
		return Analysis{}
	}

	nf := float64(n)
	sum := floats.Sum(coeffs)
	sumSq := floats.Dot(coeffs, coeffs)

	res := Analysis{
		CoherentGain: sum / nf,
		ENBW:         nf * sumSq / (sum * sum),
	}

	if half := dtftPower(coeffs, 0.5/nf); half > 0 {
		res.ScallopLossdB = 10 * math.Log10(half/dcRef)
	}

	res.Bandwidth3dB = halfPowerWidth(coeffs, dcRef)
	res.FirstMinimumBins = firstNull(coeffs, dcRef)
	res.HighestSidelobedB = highestSidelobe(coeffs, dcRef, res.FirstMinimumBins)

	return res
}

// dtftPower evaluates |W(f)|^2 at normalised frequency f in cycles/sample.
func dtftPower(coeffs []float64, f float64) float64 {
	re, im := 0.0, 0.0
	w := 2 * math.Pi * f
	for k, c := range coeffs {
		s, co := math.Sincos(w * float64(k))
		re += c * co
		im -= c * s
	}
	return re*re + im*im
}

// halfPowerWidth bisects for the two-sided -3 dB main lobe width in bins.
func halfPowerWidth(coeffs []float64, dcRef float64) float64 {
	lo, hi := 0.0, 0.5
	for range 80 {
		mid := (lo + hi) / 2
		if dtftPower(coeffs, mid)/dcRef > 0.5 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 2 * lo * float64(len(coeffs))
}

// firstNull scans outward from DC in 1/8-bin steps for the first local
// minimum below 10% of DC, then refines it with a golden-section search.
func firstNull(coeffs []float64, dcRef float64) float64 {
	nf := float64(len(coeffs))
	step := 1.0 / (nf * 8)
	threshold := dcRef * 0.1

	coarse := step
	prev := dcRef
	for f := step; f < 0.5; f += step {
		v := dtftPower(coeffs, f)
		if prev < threshold && v > prev {
			coarse = f - step
			break
		}
		prev = v
	}

	a := math.Max(0, coarse-2*step)
	b := math.Min(0.5, coarse+2*step)

	const phi = 0.6180339887498949
	c := b - phi*(b-a)
	d := a + phi*(b-a)
	for range 80 {
		if dtftPower(coeffs, c) < dtftPower(coeffs, d) {
			b = d
		} else {
			a = c
		}
		c = b - phi*(b-a)
		d = a + phi*(b-a)
	}

	return (a + b) / 2 * nf
}

func highestSidelobe(coeffs []float64, dcRef, firstNullBins float64) float64 {
	nf := float64(len(coeffs))
	start := firstNullBins / nf
	step := 1.0 / (nf * 8)

	peak, peakAt := 0.0, start
	for f := start; f < 0.5; f += step {
		if v := dtftPower(coeffs, f); v > peak {
			peak, peakAt = v, f
		}
	}

	fine := step / 32
	for f := math.Max(0, peakAt-step); f <= peakAt+step; f += fine {
		if v := dtftPower(coeffs, f); v > peak {
			peak = v
		}
	}

	if peak <= 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(peak/dcRef)
}
