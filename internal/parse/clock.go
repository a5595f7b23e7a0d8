package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var clockRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// Clock is a time of day expressed as minutes since midnight.
type Clock int

// ParseClock parses a wall-clock string in "HH:MM" form.
func ParseClock(raw string) (Clock, error) {
	m := clockRe.FindStringSubmatch(raw)
	if m == nil {
		return 0, fmt.Errorf("unable to parse clock time: %q", raw)
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour > 23 {
		return 0, fmt.Errorf("invalid hour in clock time: %q", raw)
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil || minute > 59 {
		return 0, fmt.Errorf("invalid minute in clock time: %q", raw)
	}

	return Clock(hour*60 + minute), nil
}

// ClockOf extracts the wall-clock component of a timestamp.
func ClockOf(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}

// String renders the clock back to "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}
