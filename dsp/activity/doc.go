// Package activity accumulates sensor events into a fixed-length, uniformly
// binned activity signal suitable for frequency analysis.
//
// The accumulator owns the only cross-call state of the estimation engine: a
// sliding window of recent event density. Advancing the window evicts the
// oldest bins one by one rather than resetting, so the spectrum evolves
// smoothly as events arrive.
package activity
