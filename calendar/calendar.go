// Package calendar provides date construction, validation, and arithmetic used by the date grammar.
//
// Dates are time.Time values at the first instant of a day in the location of the moment they
// were derived from. That is midnight unless the zone skips midnight on that day.
// Month and year subtraction clamp the day of month to the length of the target month,
// so one month before March 31 is the last day of February.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

// Clock is the source of the current moment.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// System is the system clock.
var System Clock = ClockFunc(time.Now)

// Fixed returns a clock that always reports t.
func Fixed(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// Unit is an interval unit.
type Unit int

const (
	Day Unit = iota
	Week
	Month
	Year
)

var unitNames = [...]string{"day", "week", "month", "year"}

func (u Unit) String() string {
	if u < Day || u > Year {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u]
}

// Units lists all units in ascending order of length.
func Units() []Unit {
	return []Unit{Day, Week, Month, Year}
}

// StartOfDay returns the first instant of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return dayStart(y, m, d, t.Location())
}

// dayStart returns the first instant of the day. It is midnight unless a zone
// transition skips midnight, then it is the transition instant.
// Overflowing month and day values are normalized as by time.Date.
func dayStart(year int, month time.Month, day int, loc *time.Location) time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, loc)
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	if ty, tm, td := t.Date(); ty == y && tm == m && td == d {
		return t
	}

	// skipped midnight was normalized into the previous day
	if _, end := t.ZoneBounds(); !end.IsZero() {
		return end
	}
	return t
}

// MakeDate returns the first instant of the given day in loc.
// Returns false if year, month, and day do not denote a Gregorian calendar day.
// A nil loc means time.UTC.
func MakeDate(year int, month time.Month, day int, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	if month < time.January || month > time.December {
		return time.Time{}, false
	}
	if day < 1 || day > int(datetime.DaysInMonth(year, datetime.Month(month))) {
		return time.Time{}, false
	}
	return dayStart(year, month, day, loc), true
}

// maxSpanDays bounds the distance Subtract moves a date, keeping the result
// well inside the range of time.Time.
const maxSpanDays = 1 << 46

var unitDays = [...]int64{Day: 1, Week: 7, Month: 31, Year: 366}

// Subtract returns the first instant of the day n units before date's day,
// in date's location. Calendar arithmetic is done on year, month, and day,
// so zone transitions never shift the result to another day.
// Month and year subtraction clamp the day to the last day of the target month.
// Negative n moves into the future with the same rules.
// Returns false if the distance is too large to represent.
func Subtract(date time.Time, n int, unit Unit) (time.Time, bool) {
	if unit < Day || unit > Year {
		return time.Time{}, false
	}
	if limit := maxSpanDays / unitDays[unit]; int64(n) > limit || int64(n) < -limit {
		return time.Time{}, false
	}

	y, m, d := date.Date()
	switch unit {
	case Week:
		d -= 7 * n
	case Month:
		y, m, d = addMonths(y, m, d, -n)
	case Year:
		y, m, d = addMonths(y, m, d, -12*n)
	default:
		d -= n
	}
	return dayStart(y, m, d, date.Location()), true
}

func addMonths(year int, month time.Month, day, n int) (int, time.Month, int) {
	total := year*12 + int(month) - 1 + n
	y := floorDiv(total, 12)
	m := time.Month(total - y*12 + 1)
	if days := int(datetime.DaysInMonth(y, datetime.Month(m))); day > days {
		day = days
	}
	return y, m, day
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// MonthFromText resolves English month names: three-letter abbreviations ("Aug"),
// full names ("August"), and "Sept". Case is ignored.
func MonthFromText(text string) (time.Month, bool) {
	lc := strings.ToLower(text)
	if len(lc) < 3 {
		return 0, false
	}

	m, err := datetime.ParseMonth(lc)
	if err != nil {
		return 0, false
	}

	month := time.Month(m)
	full := strings.ToLower(month.String())
	if len(lc) == 3 || lc == full || (month == time.September && lc == "sept") {
		return month, true
	}
	return 0, false
}
