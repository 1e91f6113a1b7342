package fft_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectra/dsp/fft"
	"github.com/cwbudde/algo-spectra/dsp/signal"
)

func ExampleForwardFFT_Process() {
	const n = 8

	samples := make([]float64, n)
	for i := range samples {
		samples[i] = math.Cos(2 * math.Pi * float64(i) / n)
	}

	sig, err := signal.New(samples, n)
	if err != nil {
		panic(err)
	}

	f, err := fft.New(n)
	if err != nil {
		panic(err)
	}

	spec, err := f.Process(sig)
	if err != nil {
		panic(err)
	}

	fmt.Println(spec.Len(), spec.PeakFreq(), spec.MaxFreq())
	// Output:
	// 8 1 4
}

func ExampleForwardFFT_ProcessReal() {
	f, err := fft.New(8, fft.WithBackend(fft.BackendGonum))
	if err != nil {
		panic(err)
	}

	impulse := []float64{1, 0, 0, 0, 0, 0, 0, 0}
	mags := make([]float64, f.RealOutputLen())
	if err := f.ProcessReal(mags, impulse); err != nil {
		panic(err)
	}

	fmt.Printf("%.1f\n", mags)
	// Output:
	// [1.0 1.0 1.0 1.0 1.0]
}
