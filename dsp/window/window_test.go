package window

import (
	"math"
	"testing"
)

const tolerance = 1e-12

func TestGenerateRectangular(t *testing.T) {
	coeffs := Generate(TypeRectangular, 5)
	for i, c := range coeffs {
		if c != 1 {
			t.Fatalf("index %d: expected 1, got %f", i, c)
		}
	}
}

func TestGenerateHannEndpointsAndPeak(t *testing.T) {
	coeffs := Generate(TypeHann, 9)

	if math.Abs(coeffs[0]) > tolerance || math.Abs(coeffs[8]) > tolerance {
		t.Fatalf("expected zero endpoints, got %f and %f", coeffs[0], coeffs[8])
	}

	if math.Abs(coeffs[4]-1) > tolerance {
		t.Fatalf("expected unit midpoint, got %f", coeffs[4])
	}
}

func TestGenerateSymmetry(t *testing.T) {
	for _, typ := range []Type{TypeHann, TypeHamming, TypeBlackman} {
		coeffs := Generate(typ, 64)
		for i := range coeffs {
			j := len(coeffs) - 1 - i
			if math.Abs(coeffs[i]-coeffs[j]) > tolerance {
				t.Fatalf("%v: asymmetry at %d: %f != %f", typ, i, coeffs[i], coeffs[j])
			}
		}
	}
}

func TestGenerateDegenerateLengths(t *testing.T) {
	if Generate(TypeHann, 0) != nil {
		t.Fatalf("expected nil for zero length")
	}

	coeffs := Generate(TypeHann, 1)
	if len(coeffs) != 1 || coeffs[0] != 1 {
		t.Fatalf("expected single unit coefficient, got %v", coeffs)
	}
}

func TestApply(t *testing.T) {
	samples := []float64{1, 2, 3, 4}
	coeffs := []float64{0.5, 0.5, 0.5, 0.5}

	Apply(samples, coeffs)

	want := []float64{0.5, 1, 1.5, 2}
	for i := range want {
		if math.Abs(samples[i]-want[i]) > tolerance {
			t.Fatalf("index %d: expected %f, got %f", i, want[i], samples[i])
		}
	}
}

func TestApplyMismatchedLengthsNoOp(t *testing.T) {
	samples := []float64{1, 2, 3}
	Apply(samples, []float64{0.5, 0.5})

	for i, v := range samples {
		if v != float64(i+1) {
			t.Fatalf("index %d: expected untouched sample, got %f", i, v)
		}
	}
}

func TestCoherentGain(t *testing.T) {
	if g := CoherentGain(Generate(TypeRectangular, 128)); math.Abs(g-1) > tolerance {
		t.Fatalf("rectangular: expected gain 1, got %f", g)
	}

	// Hann's coherent gain converges to 0.5 for long windows.
	if g := CoherentGain(Generate(TypeHann, 4096)); math.Abs(g-0.5) > 1e-3 {
		t.Fatalf("hann: expected gain near 0.5, got %f", g)
	}

	if g := CoherentGain(nil); g != 0 {
		t.Fatalf("expected zero gain for empty coefficients, got %f", g)
	}
}

func TestTypeValidAndString(t *testing.T) {
	for _, typ := range []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman} {
		if !typ.Valid() {
			t.Fatalf("%v: expected valid", typ)
		}

		if typ.String() == "unknown" {
			t.Fatalf("%d: expected a name", typ)
		}
	}

	if Type(99).Valid() {
		t.Fatalf("expected out-of-range type to be invalid")
	}
}
