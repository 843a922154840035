package reservation

import (
	"iter"
	"time"
)

type Slot struct {
	Interval
	Status SlotStatus
}

// Slots yields consecutive slots of length inside window, labeled against booked.
// The sequence is recomputed on every range and holds no state between calls.
func Slots(window Interval, length time.Duration, booked []Interval) iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		if length <= 0 {
			return
		}
		for start := window.Start; !start.Add(length).After(window.End); start = start.Add(length) {
			slot := Slot{Interval: NewInterval(start, length), Status: SlotAvailable}
			for _, b := range booked {
				if slot.Overlaps(b) {
					slot.Status = SlotBooked
					break
				}
			}
			if !yield(slot) {
				return
			}
		}
	}
}
