package schedule

// Interval is an occupied half-open minute range [Start, Start+Duration).
type Interval struct {
	Start    int
	Duration int
}

// Slot annotates one candidate start time with its availability. Callers
// render unavailable slots as disabled; nothing is dropped silently.
type Slot struct {
	Start     int
	Available bool
}

// IsAvailable is the sole authority for "can this interval be booked".
// It rejects a candidate that would run past closing or that overlaps any
// busy interval on the same date.
func IsAvailable(start, duration int, busy []Interval, closing int) bool {
	if start+duration > closing {
		return false
	}
	for _, b := range busy {
		if Overlaps(start, duration, b.Start, b.Duration) {
			return false
		}
	}
	return true
}

// AnnotateSlots marks each candidate with its availability for the
// requested duration.
func AnnotateSlots(slots []int, duration int, busy []Interval, closing int) []Slot {
	annotated := make([]Slot, len(slots))
	for i, start := range slots {
		annotated[i] = Slot{
			Start:     start,
			Available: IsAvailable(start, duration, busy, closing),
		}
	}
	return annotated
}
