package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectra/dsp/core"
)

// Shape identifies a window function.
type Shape int

const (
	ShapeRectangular Shape = iota
	ShapeTriangular
	ShapeWelch
	ShapeSine
	ShapeHann
	ShapeHamming
	ShapeBlackman
)

var shapeNames = [...]string{
	ShapeRectangular: "rectangular",
	ShapeTriangular:  "triangular",
	ShapeWelch:       "welch",
	ShapeSine:        "sine",
	ShapeHann:        "hann",
	ShapeHamming:     "hamming",
	ShapeBlackman:    "blackman",
}

var (
	hannCoeffs     = []float64{0.5, -0.5}
	hammingCoeffs  = []float64{0.54, -0.46}
	blackmanCoeffs = []float64{0.42, -0.5, 0.08}
)

// Shapes returns every supported shape in declaration order.
func Shapes() []Shape {
	out := make([]Shape, len(shapeNames))
	for i := range out {
		out[i] = Shape(i)
	}
	return out
}

// String returns the lower-case shape name.
func (s Shape) String() string {
	if !s.valid() {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

func (s Shape) valid() bool {
	return s >= 0 && int(s) < len(shapeNames)
}

// ParseShape resolves a case-insensitive shape name. "rect", "triangle",
// "bartlett", "cosine" and "hanning" are accepted as aliases.
func ParseShape(name string) (Shape, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "rect":
		return ShapeRectangular, nil
	case "triangle", "bartlett":
		return ShapeTriangular, nil
	case "cosine":
		return ShapeSine, nil
	case "hanning":
		return ShapeHann, nil
	}

	for i, n := range shapeNames {
		if n == key {
			return Shape(i), nil
		}
	}

	return 0, fmt.Errorf("window: unknown shape %q: %w", name, core.ErrInvalidParameter)
}

// Window is an immutable coefficient sequence of a fixed length. Positions
// outside the active span [offset, offset+width) weigh 0.
type Window struct {
	shape  Shape
	width  int
	offset int
	coeffs []float64
}

// Make builds a window of the given shape. It fails with
// core.ErrInvalidParameter when width or length is not positive, offset is
// negative, or the active span does not fit inside length.
func Make(shape Shape, width, offset, length int) (*Window, error) {
	if !shape.valid() {
		return nil, fmt.Errorf("window: unknown shape %d: %w", int(shape), core.ErrInvalidParameter)
	}
	if err := validateSpan(width, offset, length); err != nil {
		return nil, err
	}

	coeffs := make([]float64, length)
	for i := range width {
		coeffs[offset+i] = evalShape(shape, spanPosition(i, width))
	}

	return &Window{
		shape:  shape,
		width:  width,
		offset: offset,
		coeffs: coeffs,
	}, nil
}

// Rectangular returns a window weighing 1 across the active span.
func Rectangular(width, offset, length int) (*Window, error) {
	return Make(ShapeRectangular, width, offset, length)
}

// Triangular returns a window ramping linearly from 0 up to 1 at the span
// midpoint and back down to 0.
func Triangular(width, offset, length int) (*Window, error) {
	return Make(ShapeTriangular, width, offset, length)
}

// Welch returns a parabolic window.
func Welch(width, offset, length int) (*Window, error) {
	return Make(ShapeWelch, width, offset, length)
}

// Sine returns a half-period sine window.
func Sine(width, offset, length int) (*Window, error) {
	return Make(ShapeSine, width, offset, length)
}

// Hann returns a Hann window.
func Hann(width, offset, length int) (*Window, error) {
	return Make(ShapeHann, width, offset, length)
}

// Hamming returns a Hamming window.
func Hamming(width, offset, length int) (*Window, error) {
	return Make(ShapeHamming, width, offset, length)
}

// Blackman returns a 3-term Blackman window.
func Blackman(width, offset, length int) (*Window, error) {
	return Make(ShapeBlackman, width, offset, length)
}

// Shape returns the window shape.
func (w *Window) Shape() Shape { return w.shape }

// Width returns the number of positions in the active span.
func (w *Window) Width() int { return w.width }

// Offset returns the first index of the active span.
func (w *Window) Offset() int { return w.offset }

// Len returns the total coefficient count.
func (w *Window) Len() int { return len(w.coeffs) }

// At returns the weight at index i. It panics if i is out of range, like a
// slice index.
func (w *Window) At(i int) float64 { return w.coeffs[i] }

// Coefficients returns a copy of the coefficient sequence.
func (w *Window) Coefficients() []float64 {
	return append([]float64(nil), w.coeffs...)
}

// Apply writes output[i] = input[i] * weight[i]. Both buffers must have
// exactly Len() elements; on failure output is left untouched. input and
// output may be the same slice.
func (w *Window) Apply(input, output []float64) error {
	if err := validateBuffers(input, output, len(w.coeffs)); err != nil {
		return err
	}

	vecmath.MulBlock(output, input, w.coeffs)

	return nil
}

// ApplyInPlace multiplies buf by the window coefficients.
func (w *Window) ApplyInPlace(buf []float64) error {
	if err := validateBuffers(buf, buf, len(w.coeffs)); err != nil {
		return err
	}

	vecmath.MulBlockInPlace(buf, w.coeffs)

	return nil
}

// Analyze computes spectral properties of the full coefficient sequence.
func (w *Window) Analyze() Analysis {
	return Analyze(w.coeffs)
}

func evalShape(s Shape, t float64) float64 {
	switch s {
	case ShapeRectangular:
		return 1
	case ShapeTriangular:
		return 1 - math.Abs(2*t-1)
	case ShapeWelch:
		// Same symmetric position as the cosine shapes: zero at both ends.
		d := 2*t - 1
		return 1 - d*d
	case ShapeSine:
		return math.Sin(math.Pi * t)
	case ShapeHann:
		return cosineFromCoeffs(t, hannCoeffs)
	case ShapeHamming:
		return cosineFromCoeffs(t, hammingCoeffs)
	case ShapeBlackman:
		return cosineFromCoeffs(t, blackmanCoeffs)
	default:
		return 1
	}
}

func cosineFromCoeffs(t float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * t

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

// spanPosition maps the n-th position of a span of the given width onto
// [0, 1], endpoints included. A single-position span sits at the centre.
func spanPosition(n, width int) float64 {
	if width <= 1 {
		return 0.5
	}

	return float64(n) / float64(width-1)
}
