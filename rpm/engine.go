package rpm

import (
	"fmt"
	"sync/atomic"

	algofft "github.com/cwbudde/algo-fft"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-rpm/dsp/activity"
	"github.com/cwbudde/algo-rpm/dsp/autocorr"
	"github.com/cwbudde/algo-rpm/dsp/spectrum"
	"github.com/cwbudde/algo-rpm/dsp/window"
	"github.com/cwbudde/algo-rpm/event"
)

// minStdDev is the activity-signal deviation below which the window is
// treated as idle: an idle sensor legitimately carries no periodic signal.
const minStdDev = 1e-10

// Params are the caller-supplied tuning inputs for one Process call.
type Params struct {
	// AmplitudeThreshold is the minimum spectral amplitude for a bin to
	// become a candidate.
	AmplitudeThreshold float64

	// AutocorrThreshold is the minimum normalized autocorrelation at the
	// candidate's period lag for the candidate to validate.
	AutocorrThreshold float64

	// FrequencyMultiplier is the number of periodic sensor-visible features
	// per revolution (blade count, gear ratio). Must be positive.
	FrequencyMultiplier float64
}

// Buffers are the caller-owned output buffers, fully overwritten on every
// successful call for inspection regardless of whether an RPM is reported.
// Spectrum and Detections are indexed by frequency bin (see [Engine.BinCount]),
// Autocorr by lag in samples (see [Engine.LagCount]).
type Buffers struct {
	Spectrum   []float64
	Autocorr   []float64
	Detections []float64
}

// Engine converts event batches into RPM estimates. It owns all cross-call
// state (the sliding activity window and preallocated transform scratch);
// construction fixes its dimensions permanently.
type Engine struct {
	cfg Config

	acc  *activity.Accumulator
	plan *algofft.Plan[complex128]

	coeffs []float64 // analysis window coefficients
	scale  float64   // amplitude scale: 2 / (N * coherent gain)

	frame  []float64 // linearized, normalized activity signal
	wframe []float64 // windowed copy of frame
	fftIn  []complex128
	fftOut []complex128
	re     []float64
	im     []float64

	busy atomic.Int32
}

// New creates an engine with the given options.
func New(opts ...Option) (*Engine, error) {
	cfg := ApplyOptions(opts...)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(cfg.WindowLength)
	if err != nil {
		return nil, fmt.Errorf("rpm: fft plan: %w", err)
	}

	coeffs := window.Generate(cfg.WindowType, cfg.WindowLength)
	gain := window.CoherentGain(coeffs)

	n := cfg.WindowLength
	bins := n/2 + 1

	return &Engine{
		cfg:    cfg,
		acc:    activity.New(n, cfg.SampleRate),
		plan:   plan,
		coeffs: coeffs,
		scale:  2 / (float64(n) * gain),
		frame:  make([]float64, n),
		wframe: make([]float64, n),
		fftIn:  make([]complex128, n),
		fftOut: make([]complex128, n),
		re:     make([]float64, bins),
		im:     make([]float64, bins),
	}, nil
}

// WindowLength returns the activity window length in bins.
func (e *Engine) WindowLength() int {
	return e.cfg.WindowLength
}

// SampleRate returns the activity bin rate in Hz.
func (e *Engine) SampleRate() float64 {
	return e.cfg.SampleRate
}

// Resolution returns the spectrum's frequency resolution in Hz per bin.
func (e *Engine) Resolution() float64 {
	return e.cfg.SampleRate / float64(e.cfg.WindowLength)
}

// BinCount returns the required length of the spectrum and detections
// buffers (one-sided spectrum, DC through Nyquist).
func (e *Engine) BinCount() int {
	return e.cfg.WindowLength/2 + 1
}

// LagCount returns the required length of the autocorrelation buffer
// (lags 0 through WindowLength/2).
func (e *Engine) LagCount() int {
	return e.cfg.WindowLength/2 + 1
}

// NewBuffers allocates output buffers of the engine's fixed dimensions.
func (e *Engine) NewBuffers() Buffers {
	return Buffers{
		Spectrum:   make([]float64, e.BinCount()),
		Autocorr:   make([]float64, e.LagCount()),
		Detections: make([]float64, e.BinCount()),
	}
}

// Reset clears the sliding activity window, the caller's recovery path after
// a stale-batch rejection or a sensor-feed restart.
func (e *Engine) Reset() {
	e.acc.Reset()
}

// Process feeds one batch of events and reports current rotation estimates.
//
// The batch must be ordered by non-decreasing timestamp and must not start
// before the earliest retained window time; violations abort the call with
// the window untouched. On success the three output buffers are overwritten
// in full. An empty batch recomputes the outputs from the unchanged window.
//
// Process must not be called concurrently on the same engine; a reentrant
// call fails fast with [ErrReentrantCall] instead of racing.
func (e *Engine) Process(batch []event.Event, out Buffers, params Params) (Result, error) {
	if !e.busy.CompareAndSwap(0, 1) {
		return Result{}, ErrReentrantCall
	}
	defer e.busy.Store(0)

	bins := e.BinCount()
	if len(out.Spectrum) != bins {
		return Result{}, fmt.Errorf("%w: want %d, got %d", ErrSpectrumSize, bins, len(out.Spectrum))
	}

	if len(out.Autocorr) != e.LagCount() {
		return Result{}, fmt.Errorf("%w: want %d, got %d", ErrAutocorrSize, e.LagCount(), len(out.Autocorr))
	}

	if len(out.Detections) != bins {
		return Result{}, fmt.Errorf("%w: want %d, got %d", ErrDetectionsSize, bins, len(out.Detections))
	}

	if !(params.FrequencyMultiplier > 0) {
		return Result{}, fmt.Errorf("%w: got %f", ErrMultiplier, params.FrequencyMultiplier)
	}

	if err := e.acc.Accumulate(batch); err != nil {
		return Result{}, fmt.Errorf("rpm: %w", err)
	}

	// Normalize the window to zero mean and unit variance. This makes every
	// downstream value invariant to event-rate scale: amplitude thresholds
	// keep their meaning whether the sensor fires a hundred or a million
	// events per second.
	e.acc.CopyWindow(e.frame)

	mean, std := stat.MeanStdDev(e.frame, nil)
	if !(std > minStdDev) {
		zero(out.Spectrum)
		zero(out.Autocorr)
		zero(out.Detections)

		return Result{}, nil
	}

	for i := range e.frame {
		e.frame[i] = (e.frame[i] - mean) / std
	}

	copy(e.wframe, e.frame)
	window.Apply(e.wframe, e.coeffs)

	for i := range e.wframe {
		e.fftIn[i] = complex(e.wframe[i], 0)
	}

	if err := e.plan.Forward(e.fftOut, e.fftIn); err != nil {
		return Result{}, fmt.Errorf("rpm: fft: %w", err)
	}

	for i := range bins {
		e.re[i] = real(e.fftOut[i])
		e.im[i] = imag(e.fftOut[i])
	}

	spectrum.MagnitudeFromParts(out.Spectrum, e.re, e.im)

	for i := range out.Spectrum {
		out.Spectrum[i] *= e.scale
	}

	// The autocorrelation runs on the unwindowed frame; tapering would
	// suppress the very self-similarity the validator looks for.
	autocorr.Curve(out.Autocorr, e.frame)
	zero(out.Detections)

	peaks := spectrum.FindPeaks(out.Spectrum, spectrum.PeakConfig{
		SampleRate:   e.cfg.SampleRate,
		FFTSize:      e.cfg.WindowLength,
		MinFrequency: e.cfg.MinFrequency,
		Threshold:    params.AmplitudeThreshold,
	})

	var estimates []Estimate

	for _, p := range peaks {
		lag := autocorr.LagForFrequency(p.Frequency, e.cfg.SampleRate)
		score := autocorr.BestNearLag(out.Autocorr, lag)
		out.Detections[p.Bin] = score

		if score > params.AutocorrThreshold {
			estimates = append(estimates, Estimate{
				RPM:       p.Frequency * 60 / params.FrequencyMultiplier,
				Frequency: p.Frequency,
				Amplitude: p.Amplitude,
				Autocorr:  score,
				Bin:       p.Bin,
			})
		}
	}

	if len(estimates) == 0 {
		return Result{}, nil
	}

	return Result{Detected: true, Estimates: estimates}, nil
}

func zero(s []float64) {
	for i := range s {
		s[i] = 0
	}
}
