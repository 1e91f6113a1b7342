package core

import "errors"

// Error taxonomy shared by all dsp packages. Packages wrap these with context
// via fmt.Errorf("pkg: ...: %w", ErrX); classify failures with errors.Is.
var (
	// ErrInvalidParameter reports bad construction arguments such as zero
	// sizes, non-positive sample rates or malformed window spans.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrLengthMismatch reports a buffer whose length disagrees with the
	// fixed size of the component it is passed to.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrNullOrMissing reports an absent required input.
	ErrNullOrMissing = errors.New("null or missing input")
)
