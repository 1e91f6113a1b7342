// Package spectrum holds the frequency-domain result of a forward transform
// and helpers over complex bins.
//
// A Spectrum keeps the complex bins together with the sample rate and
// transform length that produced them, so it can map bin indices to
// frequencies: bin i sits at i*sampleRate/sampleSize Hz. Index lookups via
// ItemFreq wrap cyclically; ItemFreqChecked reports out-of-range indices
// instead.
//
// The package does not compute transforms itself. Spectra are produced by
// package fft, or built with New from bins computed elsewhere.
package spectrum
