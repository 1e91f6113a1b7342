// Command spectra analyzes the frequency content of signals.
//
// Usage:
//
//	spectra [--config file.yaml] [--log-level level] <command> [flags]
//
// Commands:
//
//	windows [shape ...]     print spectral properties of window shapes
//	tone --freq 440         generate a sine and report the detected peak
//	analyze <file.wav>      analyze one frame of a WAV file
//
// Settings come from the YAML config, overridden by SPECTRA_* environment
// variables, overridden by flags.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
