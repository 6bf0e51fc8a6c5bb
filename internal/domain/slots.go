package domain

import "time"

// Slot is a fixed-duration candidate interval inside staff availability and
// clear of every booked interval.
type Slot struct {
	Start time.Time
	End   time.Time
}

// FreeSlots walks each window applying on date in fixed duration steps from
// the window start and emits every candidate [t, t+duration) that fits inside
// the window and overlaps none of the booked intervals.
//
// Slots are emitted in window order, chronological within each window. Slots
// from overlapping windows may themselves overlap; no dedup pass is applied.
func FreeSlots(windows []AvailabilityWindow, booked []Interval, date time.Time, duration time.Duration) []Slot {
	if duration <= 0 {
		return nil
	}

	var slots []Slot
	for _, w := range WindowsOn(windows, date) {
		windowEnd := w.EndTime.At(date)
		for t := w.StartTime.At(date); !t.Add(duration).After(windowEnd); t = t.Add(duration) {
			if !OverlapsAny(t, t.Add(duration), booked) {
				slots = append(slots, Slot{Start: t, End: t.Add(duration)})
			}
		}
	}
	return slots
}
