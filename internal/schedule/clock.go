// Package schedule holds the availability engine: clock-time arithmetic,
// the candidate slot lattice and the occupancy check. Everything here is
// pure; persistence and HTTP live elsewhere.
package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrFormat marks a malformed clock-time string. Callers treat it as a
// programming-contract violation, not a user-recoverable condition.
var ErrFormat = errors.New("malformed time")

// ToMinutes parses "HH:MM" (optionally "HH:MM:SS", seconds ignored) into
// minutes since midnight.
func ToMinutes(t string) (int, error) {
	parts := strings.Split(t, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrFormat, t)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrFormat, t)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrFormat, t)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q out of range", ErrFormat, t)
	}

	return hour*60 + minute, nil
}

// FormatMinutes renders minutes since midnight as "HH:MM".
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Format12Hour renders minutes since midnight as a 12-hour display string,
// e.g. 540 -> "9:00 AM", 750 -> "12:30 PM".
func Format12Hour(m int) string {
	hour := m / 60
	minute := m % 60

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	display := hour % 12
	if display == 0 {
		display = 12
	}

	return fmt.Sprintf("%d:%02d %s", display, minute, period)
}

// Overlaps reports whether the half-open minute intervals [startA, startA+durA)
// and [startB, startB+durB) share at least one minute. Touching intervals
// (endA == startB) do not overlap. This is the single overlap predicate used
// everywhere in the engine.
func Overlaps(startA, durA, startB, durB int) bool {
	return startA < startB+durB && startB < startA+durA
}
