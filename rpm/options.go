package rpm

import "github.com/cwbudde/algo-rpm/dsp/window"

// Config defines construction-time engine constants. The activity window
// length and bin rate fix the spectrum's frequency resolution permanently;
// they cannot change over an engine's lifetime.
type Config struct {
	// SampleRate is the activity-signal bin rate in Hz.
	SampleRate float64

	// WindowLength is the activity-signal length in bins. Must be a power
	// of two (FFT plan) of at least 64.
	WindowLength int

	// MinFrequency is the lowest physically plausible rotation frequency in
	// Hz; spectral bins below it never become candidates.
	MinFrequency float64

	// WindowType selects the analysis window applied before the transform.
	WindowType window.Type
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults: a one-second window of 1024 bins
// at 1 kHz, a 1 Hz candidate floor, and a Hann window.
func DefaultConfig() Config {
	return Config{
		SampleRate:   1000,
		WindowLength: 1024,
		MinFrequency: 1,
		WindowType:   window.TypeHann,
	}
}

// WithSampleRate sets the activity bin rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		cfg.SampleRate = sampleRate
	}
}

// WithWindowLength sets the activity window length in bins.
func WithWindowLength(length int) Option {
	return func(cfg *Config) {
		cfg.WindowLength = length
	}
}

// WithMinFrequency sets the candidate frequency floor in Hz.
func WithMinFrequency(freq float64) Option {
	return func(cfg *Config) {
		cfg.MinFrequency = freq
	}
}

// WithWindowType selects the analysis window.
func WithWindowType(t window.Type) Option {
	return func(cfg *Config) {
		cfg.WindowType = t
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

func (cfg Config) validate() error {
	if cfg.SampleRate <= 0 {
		return ErrSampleRate
	}

	if cfg.WindowLength < 64 || cfg.WindowLength&(cfg.WindowLength-1) != 0 {
		return ErrWindowLength
	}

	if cfg.MinFrequency <= 0 || cfg.MinFrequency >= cfg.SampleRate/2 {
		return ErrMinFrequency
	}

	if !cfg.WindowType.Valid() {
		return ErrWindowType
	}

	return nil
}
