package happyhour

import (
	"regexp"
	"strconv"
	"strings"
)

// clockPattern accepts "17:00", "17.00", "5:00 PM", "5pm", "5 p.m.", "1700".
var clockPattern = regexp.MustCompile(
	`^(\d{1,2})(?:[:.h]?(\d{2}))?\s*([ap])?\.?\s*(?:m\.?)?$`,
)

// NormalizeClock converts the free-form times found in spreadsheet exports
// into canonical 24-hour "HH:MM". It reports false when raw is not a
// recognizable time of day; callers keep the raw value in that case and the
// evaluator treats it leniently.
func NormalizeClock(raw string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", false
	}

	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return "", false
	}

	minutes := 0
	if m[2] != "" {
		minutes, err = strconv.Atoi(m[2])
		if err != nil {
			return "", false
		}
	}

	switch m[3] {
	case "a":
		if hours < 1 || hours > 12 {
			return "", false
		}
		if hours == 12 {
			hours = 0
		}
	case "p":
		if hours < 1 || hours > 12 {
			return "", false
		}
		if hours != 12 {
			hours += 12
		}
	default:
		// A bare "24:00" closes the day.
		if hours == 24 && minutes == 0 {
			hours = 0
		}
	}

	if hours > 23 || minutes > 59 {
		return "", false
	}

	return FormatClock(hours*60 + minutes), true
}
