package fft

import (
	"fmt"
	"math/cmplx"
	"strings"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-spectra/dsp/core"
)

// Backend selects the transform implementation behind a ForwardFFT.
type Backend int

const (
	// BackendAlgoFFT runs algo-fft plans: a complex128 plan for Process and a
	// real-input plan for ProcessReal.
	BackendAlgoFFT Backend = iota
	// BackendGonum runs gonum's real-input FFT and mirrors the upper half.
	BackendGonum
)

var backendNames = map[Backend]string{
	BackendAlgoFFT: "algofft",
	BackendGonum:   "gonum",
}

// String returns the backend's canonical lower-case name.
func (b Backend) String() string {
	if name, ok := backendNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

// ParseBackend resolves a backend from its name (case-insensitive).
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "algofft", "algo-fft", "":
		return BackendAlgoFFT, nil
	case "gonum":
		return BackendGonum, nil
	default:
		return 0, fmt.Errorf("fft: unknown backend %q: %w", name, core.ErrInvalidParameter)
	}
}

// engine transforms n real samples into n complex bins.
type engine interface {
	// forward writes all N bins.
	forward(dst []complex128, src []float64) error
	// forwardHalf writes only bins 0..N/2, using the real-input transform.
	forwardHalf(dst []complex128, src []float64) error
}

func newEngine(b Backend, n int) (engine, error) {
	if n == 1 {
		return identityEngine{}, nil
	}

	switch b {
	case BackendAlgoFFT:
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("fft: create plan of size %d: %w", n, err)
		}
		realPlan, err := algofft.NewPlanReal64(n)
		if err != nil {
			return nil, fmt.Errorf("fft: create real plan of size %d: %w", n, err)
		}
		return &algoEngine{plan: plan, real: realPlan, in: make([]complex128, n)}, nil
	case BackendGonum:
		return &gonumEngine{
			n:    n,
			fft:  fourier.NewFFT(n),
			half: make([]complex128, n/2+1),
		}, nil
	default:
		return nil, fmt.Errorf("fft: unknown backend %v: %w", b, core.ErrInvalidParameter)
	}
}

type algoEngine struct {
	plan *algofft.Plan[complex128]
	real *algofft.PlanRealT[float64, complex128]
	in   []complex128
}

func (e *algoEngine) forward(dst []complex128, src []float64) error {
	for i, v := range src {
		e.in[i] = complex(v, 0)
	}
	if err := e.plan.Forward(dst, e.in); err != nil {
		return fmt.Errorf("fft: forward transform: %w", err)
	}
	return nil
}

func (e *algoEngine) forwardHalf(dst []complex128, src []float64) error {
	if err := e.real.Forward(dst, src); err != nil {
		return fmt.Errorf("fft: real forward transform: %w", err)
	}
	return nil
}

type gonumEngine struct {
	n    int
	fft  *fourier.FFT
	half []complex128
}

func (e *gonumEngine) forward(dst []complex128, src []float64) error {
	e.fft.Coefficients(e.half, src)
	copy(dst, e.half)
	// X[N-k] = conj(X[k]) for real input.
	for k := len(e.half); k < e.n; k++ {
		dst[k] = cmplx.Conj(e.half[e.n-k])
	}
	return nil
}

func (e *gonumEngine) forwardHalf(dst []complex128, src []float64) error {
	e.fft.Coefficients(dst, src)
	return nil
}

// identityEngine handles N == 1, where the only bin is the sample itself.
type identityEngine struct{}

func (identityEngine) forward(dst []complex128, src []float64) error {
	dst[0] = complex(src[0], 0)
	return nil
}

func (e identityEngine) forwardHalf(dst []complex128, src []float64) error {
	return e.forward(dst, src)
}
