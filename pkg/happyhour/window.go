// Package happyhour evaluates recurring daily discount windows.
package happyhour

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	domain "github.com/donaldgifford/happy-arz/pkg/types"
)

const minutesPerDay = 24 * 60

// ParseClock converts an "HH:MM" string to minutes since midnight.
// A missing or malformed hour or minute counts as 0, so the result is never
// an error: "" -> 0, "17" -> 1020, "17:xx" -> 1020, "ab:30" -> 30.
func ParseClock(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	hourPart, minutePart, _ := strings.Cut(s, ":")

	hours, err := strconv.Atoi(strings.TrimSpace(hourPart))
	if err != nil {
		hours = 0
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(minutePart))
	if err != nil {
		minutes = 0
	}

	return hours*60 + minutes
}

// MinuteOfDay returns the wall-clock minutes since midnight of t in t's own
// location.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// Window is a daily time range expressed in minutes since midnight.
type Window struct {
	Start int
	End   int
}

// NewWindow parses validFrom/validTo into a Window.
func NewWindow(validFrom, validTo string) Window {
	return Window{Start: ParseClock(validFrom), End: ParseClock(validTo)}
}

// WrapsMidnight reports whether the window crosses midnight (end before start).
func (w Window) WrapsMidnight() bool {
	return w.End < w.Start
}

// Contains reports whether minute falls inside the window. Both bounds are
// inclusive. start == end is a single-minute window.
func (w Window) Contains(minute int) bool {
	if w.WrapsMidnight() {
		return minute >= w.Start || minute <= w.End
	}
	return minute >= w.Start && minute <= w.End
}

// IsCurrentlyActive reports whether d is configured active and now falls
// inside its daily window. A nil discount is never active.
func IsCurrentlyActive(d *domain.Discount, now time.Time) bool {
	if d == nil || !d.IsActive {
		return false
	}
	return NewWindow(d.ValidFrom, d.ValidTo).Contains(MinuteOfDay(now))
}

// FormatClock renders minutes since midnight as "HH:MM". Values outside a
// single day are folded into it.
func FormatClock(minutes int) string {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
