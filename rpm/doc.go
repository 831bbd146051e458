// Package rpm estimates the rotational speed of spinning objects observed by
// an asynchronous event sensor.
//
// An [Engine] consumes batches of timestamped brightness-change events and
// maintains a sliding-window activity signal. Each [Engine.Process] call
// computes the signal's amplitude spectrum, extracts peak candidates above a
// caller-supplied amplitude threshold, and confirms each candidate against
// the signal's normalized autocorrelation at the matching lag before
// converting it to revolutions per minute. Spectral peaks alone are
// confounded by harmonics and noise bursts; requiring self-similarity at the
// matching time lag rejects peaks whose energy is not actually periodic at
// that rate.
//
// Engines are stateful and not safe for concurrent use; a fail-fast guard
// rejects reentrant Process calls. Independent engines, one per sensor feed,
// run safely in parallel.
package rpm
