package window

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/dsp/core"
)

func validateSpan(width, offset, length int) error {
	if width <= 0 {
		return fmt.Errorf("window: width must be > 0: %d: %w", width, core.ErrInvalidParameter)
	}
	if length <= 0 {
		return fmt.Errorf("window: length must be > 0: %d: %w", length, core.ErrInvalidParameter)
	}
	if offset < 0 {
		return fmt.Errorf("window: offset must be >= 0: %d: %w", offset, core.ErrInvalidParameter)
	}
	if offset+width > length {
		return fmt.Errorf("window: span [%d,%d) exceeds length %d: %w",
			offset, offset+width, length, core.ErrInvalidParameter)
	}
	return nil
}

func validateBuffers(input, output []float64, length int) error {
	if input == nil || output == nil {
		return fmt.Errorf("window: input and output buffers are required: %w", core.ErrNullOrMissing)
	}
	if len(input) != length || len(output) != length {
		return fmt.Errorf("window: buffers must have length %d (input=%d output=%d): %w",
			length, len(input), len(output), core.ErrLengthMismatch)
	}
	return nil
}
