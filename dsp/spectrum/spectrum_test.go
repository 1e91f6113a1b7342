package spectrum

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spectra/dsp/core"
	"github.com/cwbudde/algo-spectra/internal/testutil"
)

func mustSpectrum(t *testing.T, bins []complex128, rate, size int) *Spectrum {
	t.Helper()
	s, err := New(bins, rate, size)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		bins []complex128
		rate int
		size int
		want error
	}{
		{name: "nil bins", bins: nil, rate: 8000, size: 4, want: core.ErrNullOrMissing},
		{name: "zero rate", bins: make([]complex128, 4), rate: 0, size: 4, want: core.ErrInvalidParameter},
		{name: "zero size", bins: make([]complex128, 4), rate: 8000, size: 0, want: core.ErrInvalidParameter},
		{name: "bad bin count", bins: make([]complex128, 5), rate: 8000, size: 16, want: core.ErrLengthMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.bins, tt.rate, tt.size)
			testutil.RequireErrorIs(t, err, tt.want)
			if s != nil {
				t.Fatal("expected nil spectrum on failure")
			}
		})
	}

	if _, err := Wrap(nil, 8000, 4); err == nil {
		t.Fatal("Wrap(nil) should fail")
	}
}

func TestNewCopiesBins(t *testing.T) {
	bins := []complex128{1, 2, 3, 4}
	s := mustSpectrum(t, bins, 8000, 4)

	bins[0] = 99
	if s.Bin(0) != 1 {
		t.Fatalf("spectrum shares caller bins")
	}

	out := s.Bins()
	out[1] = 99
	if s.Bin(1) != 2 {
		t.Fatalf("spectrum shares Bins() copy")
	}
}

func TestItemFreq(t *testing.T) {
	s := mustSpectrum(t, make([]complex128, 8), 8000, 8)

	if s.BinWidth() != 1000 {
		t.Fatalf("BinWidth=%v, want 1000", s.BinWidth())
	}

	for i := range 8 {
		if got, want := s.ItemFreq(i), float64(i)*1000; got != want {
			t.Fatalf("ItemFreq(%d)=%v, want %v", i, got, want)
		}
	}
}

func TestItemFreqWrapsCyclically(t *testing.T) {
	s := mustSpectrum(t, make([]complex128, 16), 44100, 16)

	for k := range 40 {
		if s.ItemFreq(s.Len()+k) != s.ItemFreq(k) {
			t.Fatalf("ItemFreq(len+%d)=%v != ItemFreq(%d)=%v", k, s.ItemFreq(s.Len()+k), k, s.ItemFreq(k))
		}
	}

	if s.ItemFreq(-1) != s.ItemFreq(15) {
		t.Fatalf("ItemFreq(-1)=%v, want %v", s.ItemFreq(-1), s.ItemFreq(15))
	}
}

func TestItemFreqChecked(t *testing.T) {
	s := mustSpectrum(t, make([]complex128, 4), 1000, 4)

	f, err := s.ItemFreqChecked(3)
	if err != nil || f != 750 {
		t.Fatalf("ItemFreqChecked(3)=%v,%v want 750,nil", f, err)
	}

	for _, idx := range []int{-1, 4, 100} {
		_, err := s.ItemFreqChecked(idx)
		testutil.RequireErrorIs(t, err, core.ErrInvalidParameter)
	}
}

func TestHalfSpectrumFrequencies(t *testing.T) {
	s := mustSpectrum(t, make([]complex128, 5), 8000, 8)

	if s.Len() != 5 || s.SampleSize() != 8 || s.SampleRate() != 8000 {
		t.Fatalf("Len=%d SampleSize=%d SampleRate=%d", s.Len(), s.SampleSize(), s.SampleRate())
	}
	if s.ItemFreq(4) != 4000 {
		t.Fatalf("ItemFreq(4)=%v, want Nyquist 4000", s.ItemFreq(4))
	}
	if s.ItemFreq(5) != 0 {
		t.Fatalf("ItemFreq(5)=%v, want wrap to 0", s.ItemFreq(5))
	}
}

func TestMaxFreqIsNyquist(t *testing.T) {
	s := mustSpectrum(t, make([]complex128, 1024), 44100, 1024)
	if s.MaxFreq() != 22050 {
		t.Fatalf("MaxFreq=%v, want 22050", s.MaxFreq())
	}
}

func TestToReal(t *testing.T) {
	s := mustSpectrum(t, []complex128{3 + 4i, -1, 2i, 0}, 100, 4)

	dst := make([]float64, 4)
	if err := s.ToReal(dst); err != nil {
		t.Fatalf("ToReal: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, dst, []float64{5, 1, 2, 0}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, s.Magnitudes(), dst, 0)
}

func TestToRealFailureLeavesBuffer(t *testing.T) {
	s := mustSpectrum(t, []complex128{1, 1, 1, 1}, 100, 4)

	dst := testutil.DC(-3, 3)
	testutil.RequireErrorIs(t, s.ToReal(dst), core.ErrLengthMismatch)
	for i, v := range dst {
		if v != -3 {
			t.Fatalf("dst[%d]=%v modified on failure", i, v)
		}
	}

	testutil.RequireErrorIs(t, s.ToReal(nil), core.ErrNullOrMissing)
}

func TestPeakBinIgnoresMirrorHalf(t *testing.T) {
	bins := []complex128{0, 1, 5, 2, 0, 2, 9, 1}
	s := mustSpectrum(t, bins, 8000, 8)

	if s.PeakBin() != 2 {
		t.Fatalf("PeakBin=%d, want 2", s.PeakBin())
	}
	if s.PeakFreq() != 2000 {
		t.Fatalf("PeakFreq=%v, want 2000", s.PeakFreq())
	}
}

func TestPowerAndPhase(t *testing.T) {
	s := mustSpectrum(t, []complex128{3 + 4i, -1 - 1i}, 10, 2)

	pow := s.Power()
	if math.Abs(pow[0]-25) > 1e-12 || math.Abs(pow[1]-2) > 1e-12 {
		t.Fatalf("Power=%v", pow)
	}

	phase := s.Phase()
	if math.Abs(phase[0]-math.Atan2(4, 3)) > 1e-12 {
		t.Fatalf("Phase[0]=%v", phase[0])
	}
	if len(s.UnwrappedPhase()) != 2 {
		t.Fatalf("UnwrappedPhase length mismatch")
	}
}
