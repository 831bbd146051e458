package activity

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-rpm/event"
)

// Accumulation errors.
var (
	ErrUnordered  = errors.New("activity: batch timestamps decrease")
	ErrStaleBatch = errors.New("activity: batch starts before the retained window")
)

// Accumulator maintains a sliding window of event density over uniform time
// bins. Each event adds unit weight to the bin covering its timestamp;
// polarity does not affect the weight, only the event rate matters.
//
// The window is a ring: advancing to cover newer events zeroes exactly the
// evicted bins. An Accumulator is not safe for concurrent use.
type Accumulator struct {
	bins       []float64
	sampleRate float64
	binMicros  float64

	head    int   // ring index of the oldest bin
	lastBin int64 // absolute bin index of the newest bin
	primed  bool  // at least one event has been accumulated
}

// New returns an Accumulator with the given bin count and bin rate in Hz.
func New(length int, sampleRate float64) *Accumulator {
	if length <= 0 {
		length = 1
	}

	if sampleRate <= 0 {
		sampleRate = 1
	}

	return &Accumulator{
		bins:       make([]float64, length),
		sampleRate: sampleRate,
		binMicros:  1e6 / sampleRate,
	}
}

// Len returns the window length in bins.
func (a *Accumulator) Len() int {
	return len(a.bins)
}

// SampleRate returns the bin rate in Hz.
func (a *Accumulator) SampleRate() float64 {
	return a.sampleRate
}

// Reset clears the window and forgets the time reference.
func (a *Accumulator) Reset() {
	for i := range a.bins {
		a.bins[i] = 0
	}

	a.head = 0
	a.lastBin = 0
	a.primed = false
}

// Accumulate advances the window to cover the batch and bins every event.
//
// The whole batch is validated first: timestamps must be non-decreasing
// ([ErrUnordered]) and the first event must not precede the earliest retained
// bin ([ErrStaleBatch]). On error the window is left untouched. An empty
// batch is a no-op; event time is the accumulator's only clock, so the window
// does not slide without events.
func (a *Accumulator) Accumulate(batch []event.Event) error {
	if len(batch) == 0 {
		return nil
	}

	if !event.Ordered(batch) {
		return ErrUnordered
	}

	first := a.binOf(batch[0].T)
	if a.primed && first < a.startBin() {
		return fmt.Errorf("%w: batch bin %d, window starts at bin %d", ErrStaleBatch, first, a.startBin())
	}

	if !a.primed {
		// bins are already zero; anchor the window at the first event.
		a.lastBin = first
		a.primed = true
	}

	for i := range batch {
		b := a.binOf(batch[i].T)
		a.advance(b)
		a.bins[a.index(b)]++
	}

	return nil
}

// CopyWindow writes the activity signal into dst, oldest bin first.
// dst must have length Len().
func (a *Accumulator) CopyWindow(dst []float64) {
	if len(dst) != len(a.bins) {
		return
	}

	n := copy(dst, a.bins[a.head:])
	copy(dst[n:], a.bins[:a.head])
}

// binOf returns the absolute bin index covering timestamp t (µs).
func (a *Accumulator) binOf(t uint64) int64 {
	return int64(float64(t) / a.binMicros)
}

// startBin returns the absolute index of the oldest retained bin.
func (a *Accumulator) startBin() int64 {
	return a.lastBin - int64(len(a.bins)) + 1
}

// advance slides the window forward so the newest bin is `to`, zeroing the
// evicted bins. No-op when `to` does not extend the window.
func (a *Accumulator) advance(to int64) {
	d := to - a.lastBin
	if d <= 0 {
		return
	}

	n := int64(len(a.bins))
	if d >= n {
		for i := range a.bins {
			a.bins[i] = 0
		}

		a.head = 0
	} else {
		for i := int64(0); i < d; i++ {
			a.bins[(a.head+int(i))%len(a.bins)] = 0
		}

		a.head = (a.head + int(d)) % len(a.bins)
	}

	a.lastBin = to
}

// index returns the ring position of absolute bin b, which must lie inside
// the current window.
func (a *Accumulator) index(b int64) int {
	return (a.head + int(b-a.startBin())) % len(a.bins)
}
