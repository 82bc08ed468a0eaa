package reconstruct

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// millisThreshold separates second-epoch from millisecond-epoch numeric
// timestamps. Anything above it is taken as milliseconds; 1e10 seconds is
// year 2286, far beyond any plausible clock event.
const millisThreshold = 10_000_000_000

// ParseClockTime parses one of the timestamp shapes the ERP emits:
// "YYYY-MM-DD HH:mm:ss" (seconds optional), the same with a 'T' separator,
// or a numeric epoch in seconds or milliseconds.
//
// Calendar strings are interpreted as local wall time: the hour and minute
// digits in the input are the hour and minute of the result, with no
// time-zone shifting applied.
func ParseClockTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n > millisThreshold {
			return time.UnixMilli(n), nil
		}
		return time.Unix(n, 0), nil
	}

	normalized := strings.Replace(s, "T", " ", 1)
	for _, layout := range []string{
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
	} {
		if t, err := time.ParseInLocation(layout, normalized, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}

// ClockTimeOrNow is the lenient variant used on the reconstruction path: a
// malformed timestamp falls back to the current time so one corrupt event
// cannot block a whole user's history. Callers that want to surface
// data-quality problems should use ParseClockTime instead.
func ClockTimeOrNow(s string) time.Time {
	return clockTimeOr(s, time.Now)
}

func clockTimeOr(s string, now func() time.Time) time.Time {
	t, err := ParseClockTime(s)
	if err != nil {
		return now()
	}
	return t
}

// FormatClockTime renders a time in the canonical ERP shape.
func FormatClockTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
