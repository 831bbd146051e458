package autocorr

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// minOverlap is the smallest overlap length for which a correlation is
// meaningful; shorter overlaps score zero.
const minOverlap = 2

// Curve writes the normalized autocorrelation of signal into dst, one value
// per lag starting at lag 0. Lags whose overlap with the signal is too short,
// and degenerate (constant or empty) overlaps, score zero; lag 0 of a
// non-constant signal scores one.
func Curve(dst, signal []float64) {
	for lag := range dst {
		dst[lag] = AtLag(signal, lag)
	}
}

// AtLag returns the Pearson correlation between signal[:n-lag] and
// signal[lag:], clamped to [-1, 1].
func AtLag(signal []float64, lag int) float64 {
	if lag < 0 || len(signal)-lag < minOverlap {
		return 0
	}

	n := len(signal) - lag

	r := stat.Correlation(signal[:n], signal[lag:], nil)
	if math.IsNaN(r) {
		// Zero variance on either side: no periodicity evidence.
		return 0
	}

	return clamp(r)
}

// LagForFrequency returns the whole-sample lag matching one period of freq,
// or 0 when the frequency is out of range.
func LagForFrequency(freq, sampleRate float64) int {
	if freq <= 0 || sampleRate <= 0 {
		return 0
	}

	return int(math.Round(sampleRate / freq))
}

// BestNearLag returns the highest curve value among lag and its immediate
// neighbors. Rounding a period to whole samples can land one lag off the true
// autocorrelation maximum; scoring the adjacent lags absorbs that.
func BestNearLag(curve []float64, lag int) float64 {
	if lag < 1 || lag >= len(curve) {
		return 0
	}

	best := curve[lag]
	if lag > 1 && curve[lag-1] > best {
		best = curve[lag-1]
	}

	if lag+1 < len(curve) && curve[lag+1] > best {
		best = curve[lag+1]
	}

	return best
}

func clamp(r float64) float64 {
	if r > 1 {
		return 1
	}

	if r < -1 {
		return -1
	}

	return r
}
