package rpm

// Estimate is one validated rotation estimate.
type Estimate struct {
	// RPM is the rotation rate in revolutions per minute, after dividing
	// the observed event-train frequency by the frequency multiplier.
	RPM float64

	// Frequency is the observed event-train frequency in Hz (before the
	// multiplier), refined by parabolic interpolation.
	Frequency float64

	// Amplitude is the spectral amplitude of the peak.
	Amplitude float64

	// Autocorr is the normalized autocorrelation score at the candidate's
	// period lag.
	Autocorr float64

	// Bin is the spectrum bin index of the peak, usable to index the
	// spectrum and detections buffers.
	Bin int
}

// Result is the outcome of one processing call.
//
// Detected distinguishes "ran, found nothing" from a successful detection:
// it is false both when no spectral candidate was generated and when
// candidates were generated but none passed the autocorrelation test.
type Result struct {
	Detected  bool
	Estimates []Estimate // descending spectral amplitude; nil when !Detected
}

// RPMs returns the bare RPM values in result order, nil when !Detected.
func (r Result) RPMs() []float64 {
	if !r.Detected {
		return nil
	}

	out := make([]float64, len(r.Estimates))
	for i := range r.Estimates {
		out[i] = r.Estimates[i].RPM
	}

	return out
}
