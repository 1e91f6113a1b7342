package core_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-spectra/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(core.WithSampleRate(44100))

	fmt.Printf("sampleRate=%d\n", cfg.SampleRate)

	// Output:
	// sampleRate=44100
}

func ExampleErrInvalidParameter() {
	err := fmt.Errorf("window: width must be > 0: %w", core.ErrInvalidParameter)
	fmt.Println(errors.Is(err, core.ErrInvalidParameter))

	// Output:
	// true
}
