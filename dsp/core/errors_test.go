package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorTaxonomyWrapping(t *testing.T) {
	tests := []struct {
		name     string
		sentinel error
	}{
		{name: "invalid", sentinel: ErrInvalidParameter},
		{name: "mismatch", sentinel: ErrLengthMismatch},
		{name: "missing", sentinel: ErrNullOrMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fmt.Errorf("pkg: context: %w", tt.sentinel)
			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("errors.Is(%v, %v) = false", err, tt.sentinel)
			}

			for _, other := range tests {
				if other.sentinel != tt.sentinel && errors.Is(err, other.sentinel) {
					t.Fatalf("%v unexpectedly matches %v", err, other.sentinel)
				}
			}
		})
	}
}
