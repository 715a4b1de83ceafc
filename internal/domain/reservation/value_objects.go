package reservation

import (
	"time"
)

// MaxSlotDuration caps a single reservation window.
const MaxSlotDuration = 48 * time.Hour

type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if start.Unix() <= 0 || end.Unix() <= 0 {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	if !end.After(start) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	if end.Sub(start) > MaxSlotDuration {
		return TimeSlot{}, ErrInvalidTimeSlot
	}

	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Minutes is the elapsed duration in whole minutes, truncated.
func (ts TimeSlot) Minutes() int64 {
	return (ts.end.Unix() - ts.start.Unix()) / 60
}

// Overlaps uses the half-open interval test: two slots overlap unless one
// ends at or before the other starts.
func (ts TimeSlot) Overlaps(otherStart, otherEnd time.Time) bool {
	return !(!otherEnd.After(ts.start) || !otherStart.Before(ts.end))
}

// Contains reports whether t falls inside the slot, boundaries included.
func (ts TimeSlot) Contains(t time.Time) bool {
	return !t.Before(ts.start) && !t.After(ts.end)
}
