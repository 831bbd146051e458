// Package testutil provides deterministic event generators and assertion
// helpers shared by the package tests.
package testutil

import (
	"math/rand"
	"sort"

	"github.com/cwbudde/algo-rpm/event"
)

// PeriodicBatch generates an ordered event batch for a rotating feature
// passing the sensor at freqHz. Each pass produces perBurst events spread
// evenly over spreadMicros, mimicking the finite transit time of an edge
// across the pixel array. Timestamps start at startMicros and cover
// durMicros.
func PeriodicBatch(freqHz float64, perBurst int, spreadMicros, startMicros, durMicros uint64) []event.Event {
	period := 1e6 / freqHz
	out := make([]event.Event, 0, perBurst*int(float64(durMicros)/period+1))

	for k := 0; ; k++ {
		base := float64(k) * period
		if base >= float64(durMicros) {
			break
		}
		for j := 0; j < perBurst; j++ {
			off := uint64(0)
			if perBurst > 1 {
				off = spreadMicros * uint64(j) / uint64(perBurst-1)
			}
			out = append(out, event.Event{
				T:        startMicros + uint64(base) + off,
				X:        uint16(k % 640),
				Y:        uint16(j % 480),
				Polarity: event.Polarity(j % 2),
			})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].T < out[j].T })
	return out
}

// NoiseBatch generates an ordered batch of background-activity events with
// uniformly random timestamps, reproducible from the seed.
func NoiseBatch(seed int64, count int, startMicros, durMicros uint64) []event.Event {
	rng := rand.New(rand.NewSource(seed))
	out := make([]event.Event, count)

	for i := range out {
		out[i] = event.Event{
			T:        startMicros + uint64(rng.Int63n(int64(durMicros))),
			X:        uint16(rng.Intn(640)),
			Y:        uint16(rng.Intn(480)),
			Polarity: event.Polarity(rng.Intn(2)),
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].T < out[j].T })
	return out
}
