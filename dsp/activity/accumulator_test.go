package activity

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-rpm/event"
)

func window(t *testing.T, a *Accumulator) []float64 {
	t.Helper()

	out := make([]float64, a.Len())
	a.CopyWindow(out)

	return out
}

func TestAccumulateEmptyBatch(t *testing.T) {
	a := New(8, 1000)

	if err := a.Accumulate(nil); err != nil {
		t.Fatalf("unexpected error for empty batch: %v", err)
	}

	for i, v := range window(t, a) {
		if v != 0 {
			t.Fatalf("bin %d: expected 0, got %f", i, v)
		}
	}
}

func TestAccumulateBinsEvents(t *testing.T) {
	a := New(4, 1000) // 1 ms bins

	batch := []event.Event{
		{T: 500},  // bin 0
		{T: 1500}, // bin 1
		{T: 1500}, // bin 1
		{T: 3500}, // bin 3
	}
	if err := a.Accumulate(batch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := window(t, a)

	want := []float64{1, 2, 0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bin %d: expected %f, got %f (window %v)", i, want[i], got[i], got)
		}
	}
}

func TestAccumulateSlidingEviction(t *testing.T) {
	a := New(4, 1000)

	if err := a.Accumulate([]event.Event{{T: 500}, {T: 1500}, {T: 2500}, {T: 3500}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Advance by two bins: bins 0 and 1 are evicted, bins 2..5 remain.
	if err := a.Accumulate([]event.Event{{T: 5500}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := window(t, a)

	want := []float64{1, 1, 0, 1} // bins 2, 3, 4, 5
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bin %d: expected %f, got %f (window %v)", i, want[i], got[i], got)
		}
	}
}

func TestAccumulateLargeJumpClearsWindow(t *testing.T) {
	a := New(4, 1000)

	if err := a.Accumulate([]event.Event{{T: 500}, {T: 1500}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Jump far beyond the window span.
	if err := a.Accumulate([]event.Event{{T: 100500}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := window(t, a)
	for i, v := range got[:3] {
		if v != 0 {
			t.Fatalf("bin %d: expected eviction to zero, got %f", i, v)
		}
	}

	if got[3] != 1 {
		t.Fatalf("expected newest bin to hold the jump event, got %f", got[3])
	}
}

func TestAccumulateRejectsUnordered(t *testing.T) {
	a := New(8, 1000)

	err := a.Accumulate([]event.Event{{T: 2000}, {T: 1000}})
	if !errors.Is(err, ErrUnordered) {
		t.Fatalf("expected ErrUnordered, got %v", err)
	}
}

func TestAccumulateRejectsStaleBatchWithoutMutation(t *testing.T) {
	a := New(4, 1000)

	if err := a.Accumulate([]event.Event{{T: 10500}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before := window(t, a)

	// Window retains bins 7..10; bin 5 is gone.
	err := a.Accumulate([]event.Event{{T: 5000}, {T: 5200}})
	if !errors.Is(err, ErrStaleBatch) {
		t.Fatalf("expected ErrStaleBatch, got %v", err)
	}

	after := window(t, a)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("bin %d changed by a rejected batch: %f != %f", i, before[i], after[i])
		}
	}
}

func TestReset(t *testing.T) {
	a := New(4, 1000)

	if err := a.Accumulate([]event.Event{{T: 10500}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a.Reset()

	for i, v := range window(t, a) {
		if v != 0 {
			t.Fatalf("bin %d: expected 0 after Reset, got %f", i, v)
		}
	}

	// A previously stale batch is accepted after Reset.
	if err := a.Accumulate([]event.Event{{T: 5000}}); err != nil {
		t.Fatalf("unexpected error after Reset: %v", err)
	}
}

func TestNewClampsArguments(t *testing.T) {
	a := New(-3, -1)
	if a.Len() != 1 {
		t.Fatalf("expected clamped length 1, got %d", a.Len())
	}

	if a.SampleRate() != 1 {
		t.Fatalf("expected clamped sample rate 1, got %f", a.SampleRate())
	}
}
