package spectrum

import (
	"math"
	"sort"
)

// Peak is one candidate extracted from an amplitude spectrum.
type Peak struct {
	// Bin is the spectrum bin index of the raw local maximum.
	Bin int

	// Frequency is the parabola-refined peak frequency in Hz.
	Frequency float64

	// Amplitude is the parabola-refined peak amplitude.
	Amplitude float64
}

// PeakConfig bounds candidate extraction.
type PeakConfig struct {
	// SampleRate of the signal that produced the spectrum, in Hz.
	SampleRate float64

	// FFTSize is the transform length (the spectrum holds FFTSize/2+1 bins).
	FFTSize int

	// MinFrequency rejects bins below the physically plausible rotation
	// floor. The DC bin is always rejected.
	MinFrequency float64

	// Threshold is the minimum amplitude for a bin to become a candidate.
	Threshold float64
}

// FindPeaks extracts local maxima above the threshold from a one-sided
// amplitude spectrum and returns them ordered by descending amplitude, with
// equal amplitudes ordered lower frequency first to favor the fundamental.
//
// Peak frequency and amplitude are refined by parabolic interpolation over
// the maximum and its two neighbors; candidacy itself is decided on the raw
// bin amplitude so that raising the threshold can only shrink the result.
func FindPeaks(amplitude []float64, cfg PeakConfig) []Peak {
	if len(amplitude) < 3 || cfg.SampleRate <= 0 || cfg.FFTSize <= 0 {
		return nil
	}

	binHz := cfg.SampleRate / float64(cfg.FFTSize)

	minBin := int(math.Ceil(cfg.MinFrequency / binHz))
	minBin = max(minBin, 1) // never the DC bin

	var peaks []Peak

	for i := minBin; i < len(amplitude)-1; i++ {
		v := amplitude[i]
		if v <= cfg.Threshold {
			continue
		}

		if v <= amplitude[i-1] || v <= amplitude[i+1] {
			continue
		}

		freq, amp := refine(amplitude, i, binHz)
		peaks = append(peaks, Peak{Bin: i, Frequency: freq, Amplitude: amp})
	}

	sort.Slice(peaks, func(i, j int) bool {
		if peaks[i].Amplitude != peaks[j].Amplitude {
			return peaks[i].Amplitude > peaks[j].Amplitude
		}

		return peaks[i].Frequency < peaks[j].Frequency
	})

	return peaks
}

// refine fits a parabola through bin-1, bin, bin+1 and returns the
// interpolated peak frequency and amplitude.
func refine(amplitude []float64, bin int, binHz float64) (freq, amp float64) {
	y1 := amplitude[bin-1]
	y2 := amplitude[bin]
	y3 := amplitude[bin+1]

	denom := 2 * (2*y2 - y1 - y3)
	if math.Abs(denom) < 1e-12 {
		return float64(bin) * binHz, y2
	}

	offset := (y3 - y1) / denom
	if offset > 0.5 {
		offset = 0.5
	} else if offset < -0.5 {
		offset = -0.5
	}

	a := 0.5 * (y1 - 2*y2 + y3)
	b := 0.5 * (y3 - y1)

	return (float64(bin) + offset) * binHz, y2 + a*offset*offset + b*offset
}
