package core

import (
	"fmt"
	"time"
)

// DateLayout is the layout of every persisted date-string.
const DateLayout = "2006-01-02"

var weekdayNames = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// DayInfo describes one day of a history window.
type DayInfo struct {
	Date    string // YYYY-MM-DD
	Weekday string // Sun..Sat
	Display string // M/D
}

// Calendar answers date questions relative to a single reference moment,
// captured once when the session starts.
type Calendar struct {
	ref time.Time
}

// NewCalendar returns a Calendar anchored at ref. Dates are computed in
// ref's location.
func NewCalendar(ref time.Time) Calendar {
	return Calendar{ref: ref}
}

// Now returns the reference moment.
func (c Calendar) Now() time.Time {
	return c.ref
}

// FormatDate formats t as a zero-padded YYYY-MM-DD using its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the reference date.
func (c Calendar) Today() string {
	return FormatDate(c.ref)
}

// Yesterday returns the calendar day before the reference date.
func (c Calendar) Yesterday() string {
	return FormatDate(c.ref.AddDate(0, 0, -1))
}

// LastNDays returns n days ending at today, oldest first.
func (c Calendar) LastNDays(n int) []DayInfo {
	if n <= 0 {
		return []DayInfo{}
	}
	days := make([]DayInfo, 0, n)
	for i := n - 1; i >= 0; i-- {
		d := c.ref.AddDate(0, 0, -i)
		days = append(days, DayInfo{
			Date:    FormatDate(d),
			Weekday: weekdayNames[d.Weekday()],
			Display: fmt.Sprintf("%d/%d", int(d.Month()), d.Day()),
		})
	}
	return days
}

// ParseDate parses a YYYY-MM-DD string in the calendar's location.
func (c Calendar) ParseDate(s string) (time.Time, error) {
	loc := c.ref.Location()
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}
