package testutil

import (
	"math"
	"math/cmplx"
	"math/rand"
)

// DeterministicSine generates amplitude*sin(2*pi*freqHz*n/sampleRate).
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise in [-amplitude, amplitude] with a
// fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at pos. Out-of-range positions yield zeros.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}

// DFT is the O(N^2) reference transform X[k] = sum x[n] e^{-2*pi*i*k*n/N}.
func DFT(x []float64) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := range out {
		var acc complex128
		for i, v := range x {
			angle := -2 * math.Pi * float64(k*i%n) / float64(n)
			acc += complex(v, 0) * cmplx.Exp(complex(0, angle))
		}
		out[k] = acc
	}
	return out
}

// PeakIndex returns the index of the largest value in data, or -1 if empty.
func PeakIndex(data []float64) int {
	best := -1
	for i, v := range data {
		if best < 0 || v > data[best] {
			best = i
		}
	}
	return best
}
