// Package autocorr computes normalized autocorrelation curves used to
// confirm that a spectral peak corresponds to genuine periodicity.
//
// Values are Pearson correlations between the signal and its lag-shifted
// self over the overlap region, so a well-behaved signal yields values in
// [-1, 1] regardless of event-rate scale.
package autocorr
