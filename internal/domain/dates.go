package domain

import "time"

// DateLayout is the persisted format of every date field
const DateLayout = "2006-01-02"

// FormatDate renders t as a local calendar date
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate reads a persisted date as local midnight. Full RFC 3339 timestamps are accepted
// and truncated to their local calendar day.
func ParseDate(s string) (time.Time, bool) {
	if d, err := time.ParseInLocation(DateLayout, s, time.Local); err == nil {
		return d, true
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return StartOfDay(ts.In(time.Local)), true
	}
	return time.Time{}, false
}

// StartOfDay returns local midnight of t's calendar day
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// FormatDeadlineShort abbreviates a deadline relative to now: the day alone within the current
// month, "01-02" within the current year, "02 '06" otherwise. Unparseable input is returned as is.
func FormatDeadlineShort(s string, now time.Time) string {
	if s == "" {
		return ""
	}
	d, ok := ParseDate(s)
	if !ok {
		return s
	}
	switch {
	case d.Year() == now.Year() && d.Month() == now.Month():
		return d.Format("2")
	case d.Year() == now.Year():
		return d.Format("01-02")
	default:
		return d.Format("02 '06")
	}
}
