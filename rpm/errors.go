package rpm

import "errors"

// Construction errors.
var (
	ErrSampleRate   = errors.New("rpm: sample rate must be positive")
	ErrWindowLength = errors.New("rpm: window length must be a power of two and at least 64")
	ErrMinFrequency = errors.New("rpm: minimum frequency must lie in (0, Nyquist)")
	ErrWindowType   = errors.New("rpm: unknown window type")
)

// Processing errors. Batch-ordering and staleness conditions are reported as
// the activity package's ErrUnordered and ErrStaleBatch, wrapped; match them
// with errors.Is.
var (
	ErrSpectrumSize   = errors.New("rpm: spectrum buffer size mismatch")
	ErrAutocorrSize   = errors.New("rpm: autocorrelation buffer size mismatch")
	ErrDetectionsSize = errors.New("rpm: detections buffer size mismatch")
	ErrMultiplier     = errors.New("rpm: frequency multiplier must be positive")
	ErrReentrantCall  = errors.New("rpm: concurrent Process call on the same engine")
)
