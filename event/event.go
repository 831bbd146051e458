package event

// Polarity is the sign of the brightness change that produced an event.
type Polarity uint8

const (
	// PolarityOff marks a decrease in brightness.
	PolarityOff Polarity = iota

	// PolarityOn marks an increase in brightness.
	PolarityOn
)

func (p Polarity) String() string {
	switch p {
	case PolarityOff:
		return "off"
	case PolarityOn:
		return "on"
	default:
		return "unknown"
	}
}

// Event is a single brightness-change report from an asynchronous sensor.
//
// T is the acquisition time in microseconds on the sensor's monotonic clock.
// X and Y are pixel coordinates.
type Event struct {
	T        uint64
	X        uint16
	Y        uint16
	Polarity Polarity
}

// Ordered reports whether batch timestamps are non-decreasing.
//
// An empty or single-event batch is ordered.
func Ordered(batch []Event) bool {
	for i := 1; i < len(batch); i++ {
		if batch[i].T < batch[i-1].T {
			return false
		}
	}

	return true
}

// Span returns the first and last timestamp of an ordered batch.
// Both are zero for an empty batch.
func Span(batch []Event) (first, last uint64) {
	if len(batch) == 0 {
		return 0, 0
	}

	return batch[0].T, batch[len(batch)-1].T
}
