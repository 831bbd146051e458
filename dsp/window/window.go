// Package window provides the analysis window functions applied to the
// activity signal before the spectral transform.
//
// Only the cosine-sum windows useful for event-rate spectra are included.
// Amplitudes read from a windowed spectrum must be compensated by the
// window's coherent gain; see [CoherentGain].
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

func (t Type) String() string {
	switch t {
	case TypeRectangular:
		return "rectangular"
	case TypeHann:
		return "hann"
	case TypeHamming:
		return "hamming"
	case TypeBlackman:
		return "blackman"
	default:
		return "unknown"
	}
}

// Valid reports whether t names a supported window function.
func (t Type) Valid() bool {
	return t >= TypeRectangular && t <= TypeBlackman
}

// Generate returns symmetric window coefficients of the given length.
// Unknown types fall back to rectangular.
func Generate(t Type, length int) []float64 {
	if length <= 0 {
		return nil
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = 1

		return out
	}

	for i := range out {
		x := float64(i) / float64(length-1)
		out[i] = eval(t, x)
	}

	return out
}

// Apply multiplies samples in-place by precomputed coefficients.
// Lengths must match; mismatched inputs are left untouched.
func Apply(samples, coeffs []float64) {
	if len(samples) != len(coeffs) || len(samples) == 0 {
		return
	}

	vecmath.MulBlockInPlace(samples, coeffs)
}

// CoherentGain returns the mean of the coefficients, the factor by which a
// window attenuates a coherent sinusoid (1.0 for rectangular, 0.5 for Hann).
func CoherentGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	return sum / float64(len(coeffs))
}

func eval(t Type, x float64) float64 {
	switch t {
	case TypeHann:
		return 0.5 - 0.5*math.Cos(2*math.Pi*x)
	case TypeHamming:
		return 0.54 - 0.46*math.Cos(2*math.Pi*x)
	case TypeBlackman:
		return 0.42 - 0.5*math.Cos(2*math.Pi*x) + 0.08*math.Cos(4*math.Pi*x)
	default:
		return 1
	}
}
