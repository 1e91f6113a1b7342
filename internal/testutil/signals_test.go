package testutil

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	if math.Abs(s[12]-1) > 1e-12 {
		t.Fatalf("s[12] = %v, want 1 (quarter period)", s[12])
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	c := DeterministicNoise(43, 1.0, 64)

	same := true
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] != c[i] {
			same = false
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestImpulse(t *testing.T) {
	imp := Impulse(8, 3)
	for i, v := range imp {
		want := 0.0
		if i == 3 {
			want = 1
		}
		if v != want {
			t.Fatalf("imp[%d] = %v, want %v", i, v, want)
		}
	}

	for i, v := range Impulse(4, 10) {
		if v != 0 {
			t.Fatalf("imp[%d] = %v, want all zeros for out-of-bounds pos", i, v)
		}
	}
}

func TestDFTOfImpulseIsFlat(t *testing.T) {
	X := DFT(Impulse(8, 0))
	for k, v := range X {
		if cmplx.Abs(v-1) > 1e-12 {
			t.Fatalf("X[%d] = %v, want 1", k, v)
		}
	}
}

func TestDFTOfDC(t *testing.T) {
	X := DFT(Ones(4))
	if cmplx.Abs(X[0]-4) > 1e-12 {
		t.Fatalf("X[0] = %v, want 4", X[0])
	}
	for k := 1; k < 4; k++ {
		if cmplx.Abs(X[k]) > 1e-12 {
			t.Fatalf("X[%d] = %v, want 0", k, X[k])
		}
	}
}

func TestPeakIndex(t *testing.T) {
	if got := PeakIndex(nil); got != -1 {
		t.Fatalf("PeakIndex(nil) = %d, want -1", got)
	}
	if got := PeakIndex([]float64{1, 5, 3, 5}); got != 1 {
		t.Fatalf("PeakIndex = %d, want 1", got)
	}
}
