package analyzer_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/dsp/analyzer"
	"github.com/cwbudde/algo-spectra/dsp/core"
	"github.com/cwbudde/algo-spectra/dsp/signal"
	"github.com/cwbudde/algo-spectra/dsp/window"
)

func ExampleAnalyzer_Analyze() {
	sig, err := signal.NewGenerator(core.WithSampleRate(8000)).Sine(1000, 0.5, 1024)
	if err != nil {
		panic(err)
	}

	a, err := analyzer.New(1024, analyzer.WithWindow(window.ShapeRectangular))
	if err != nil {
		panic(err)
	}

	res, err := a.Analyze(sig)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.0f Hz, amplitude %.2f\n", res.PeakFreq, res.PeakAmplitude)
	// Output:
	// 1000 Hz, amplitude 0.50
}
