package parking

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidSchedule = errors.New("invalid schedule")

// DayHours is the open/close pair for one weekday, as "HH:MM" local time.
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Schedule maps lowercase weekday names to opening hours. A weekday without
// an entry, or an empty schedule, means the lot is open around the clock
// that day.
type Schedule map[string]DayHours

func (s Schedule) Validate() error {
	for day, hours := range s {
		if _, ok := weekdayNames[day]; !ok {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidSchedule, day)
		}
		open, err := parseClock(hours.Open)
		if err != nil {
			return fmt.Errorf("%w: %s open: %v", ErrInvalidSchedule, day, err)
		}
		closeMin, err := parseClock(hours.Close)
		if err != nil {
			return fmt.Errorf("%w: %s close: %v", ErrInvalidSchedule, day, err)
		}
		if closeMin <= open {
			return fmt.Errorf("%w: %s closes before it opens", ErrInvalidSchedule, day)
		}
	}
	return nil
}

// OpenAt reports whether the lot is open at the given instant. The timezone
// is explicit: the instant is converted to loc before the weekday and
// time-of-day are derived. Boundary policy is open <= t < close.
func (s Schedule) OpenAt(t time.Time, loc *time.Location) bool {
	if len(s) == 0 {
		return true
	}

	local := t.In(loc)
	hours, ok := s[WeekdayKey(local.Weekday())]
	if !ok {
		return true
	}

	open, err := parseClock(hours.Open)
	if err != nil {
		return false
	}
	closeMin, err := parseClock(hours.Close)
	if err != nil {
		return false
	}

	tod := local.Hour()*60 + local.Minute()
	return tod >= open && tod < closeMin
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func WeekdayKey(d time.Weekday) string {
	return strings.ToLower(d.String())
}

func parseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("malformed clock value %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return h*60 + m, nil
}
