package calendar

import (
	"testing"
	"time"

	"github.com/ava12/pastdate/internal/test"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	moment := time.Date(2013, time.August, 20, 23, 59, 59, 999, loc)
	test.ExpectDate(t, time.Date(2013, time.August, 20, 0, 0, 0, 0, loc), StartOfDay(moment))
	test.ExpectDate(t, date(2013, time.August, 20), StartOfDay(date(2013, time.August, 20)))
}

func TestMakeDate(t *testing.T) {
	samples := []struct {
		year  int
		month time.Month
		day   int
		valid bool
	}{
		{2013, time.August, 20, true},
		{2013, time.April, 30, true},
		{2013, time.April, 31, false},
		{2013, time.February, 29, false},
		{2012, time.February, 29, true},
		{2000, time.February, 29, true},
		{1900, time.February, 29, false},
		{2013, time.December, 31, true},
		{2013, time.January, 0, false},
		{2013, time.January, 32, false},
		{2013, 13, 1, false},
		{2013, 0, 1, false},
	}

	for _, s := range samples {
		got, valid := MakeDate(s.year, s.month, s.day, nil)
		if valid != s.valid {
			t.Errorf("%d-%d-%d: expecting valid=%v", s.year, s.month, s.day, s.valid)
			continue
		}
		if valid {
			test.ExpectDate(t, date(s.year, s.month, s.day), got)
		}
	}
}

func TestSubtract(t *testing.T) {
	samples := []struct {
		from     time.Time
		n        int
		unit     Unit
		expected time.Time
	}{
		{date(2013, time.August, 30), 2, Day, date(2013, time.August, 28)},
		{date(2013, time.March, 1), 1, Day, date(2013, time.February, 28)},
		{date(2013, time.March, 1), 1, Week, date(2013, time.February, 22)},
		{date(2013, time.August, 28), 1, Month, date(2013, time.July, 28)},
		{date(2013, time.January, 15), 1, Month, date(2012, time.December, 15)},
		{date(2013, time.March, 31), 1, Month, date(2013, time.February, 28)},
		{date(2012, time.March, 31), 1, Month, date(2012, time.February, 29)},
		{date(2013, time.May, 31), 1, Month, date(2013, time.April, 30)},
		{date(2013, time.May, 31), 14, Month, date(2012, time.March, 31)},
		{date(2012, time.February, 29), 1, Year, date(2011, time.February, 28)},
		{date(2016, time.February, 29), 4, Year, date(2012, time.February, 29)},
		{date(2013, time.August, 20), 0, Year, date(2013, time.August, 20)},
		{date(2013, time.January, 31), -1, Month, date(2013, time.February, 28)},
	}

	for _, s := range samples {
		got, ok := Subtract(s.from, s.n, s.unit)
		if !ok || !got.Equal(s.expected) {
			t.Errorf("%s - %d %s: expecting %s, got %s", s.from.Format(time.DateOnly), s.n, s.unit,
				s.expected.Format(time.DateOnly), got.Format(time.DateOnly))
		}
	}
}

func TestSubtractRange(t *testing.T) {
	from := date(2013, time.September, 15)
	got, ok := Subtract(from, 1000000, Day)
	test.Assert(t, ok, "expecting 1000000 days to be in range")
	test.ExpectDate(t, time.Date(2013, time.September, 15-1000000, 0, 0, 0, 0, time.UTC), got)

	got, ok = Subtract(from, 1234567, Year)
	test.Assert(t, ok, "expecting 1234567 years to be in range")
	test.ExpectDate(t, date(2013-1234567, time.September, 15), got)

	for _, s := range []struct {
		n    int
		unit Unit
	}{
		{maxSpanDays + 1, Day},
		{-maxSpanDays - 1, Day},
		{maxSpanDays/7 + 1, Week},
		{maxSpanDays / 10, Month},
		{maxSpanDays / 100, Year},
		{1, Unit(7)},
	} {
		_, ok := Subtract(from, s.n, s.unit)
		test.Assert(t, !ok, "%d %s: expecting out of range", s.n, s.unit)
	}
}

// Havana starts DST at midnight, so 2025-03-09 00:00 does not exist there.
func TestSkippedMidnight(t *testing.T) {
	havana, e := time.LoadLocation("America/Havana")
	if e != nil {
		t.Skipf("no zone data: %v", e)
	}

	first := time.Date(2025, time.March, 9, 1, 0, 0, 0, havana)
	test.Assert(t, first.Hour() == 1, "unexpected zone data for America/Havana")
	noon := time.Date(2025, time.March, 9, 12, 0, 0, 0, havana)
	next := time.Date(2025, time.March, 10, 12, 0, 0, 0, havana)

	d, ok := MakeDate(2025, time.March, 9, havana)
	test.Assert(t, ok, "expecting valid date")
	test.ExpectDate(t, first, d)
	test.ExpectDate(t, first, StartOfDay(noon))

	samples := []struct {
		from     time.Time
		n        int
		unit     Unit
		expected time.Time
	}{
		{StartOfDay(next), 1, Day, first},
		{StartOfDay(next), 2, Day, time.Date(2025, time.March, 8, 0, 0, 0, 0, havana)},
		{time.Date(2025, time.March, 16, 0, 0, 0, 0, havana), 1, Week, first},
		{time.Date(2025, time.April, 9, 0, 0, 0, 0, havana), 1, Month, first},
		{time.Date(2026, time.March, 9, 0, 0, 0, 0, havana), 1, Year, first},
		{time.Date(2025, time.March, 8, 0, 0, 0, 0, havana), -1, Day, first},
	}
	for _, s := range samples {
		got, ok := Subtract(s.from, s.n, s.unit)
		test.Assert(t, ok, "%s - %d %s: expecting success", s.from, s.n, s.unit)
		test.ExpectDate(t, s.expected, got)
	}
}

func TestMonthFromText(t *testing.T) {
	samples := map[string]time.Month{
		"Aug":       time.August,
		"aug":       time.August,
		"AUGUST":    time.August,
		"May":       time.May,
		"jun":       time.June,
		"July":      time.July,
		"Sept":      time.September,
		"September": time.September,
		"dec":       time.December,
	}
	for text, expected := range samples {
		got, found := MonthFromText(text)
		if !found || got != expected {
			t.Errorf("%q: expecting %s, got %s (found: %v)", text, expected, got, found)
		}
	}

	for _, text := range []string{"", "a", "ju", "augu", "Augusta", "Octo", "xyz", "20"} {
		if m, found := MonthFromText(text); found {
			t.Errorf("%q: expecting no month, got %s", text, m)
		}
	}
}

func TestUnits(t *testing.T) {
	names := []string{}
	for _, u := range Units() {
		names = append(names, u.String())
	}
	test.ExpectDiff(t, []string{"day", "week", "month", "year"}, names)
	test.Expect(t, Unit(7).String() == "Unit(7)", "Unit(7)", Unit(7).String())
}

func TestClocks(t *testing.T) {
	moment := time.Date(2013, time.August, 20, 12, 0, 0, 0, time.UTC)
	test.ExpectDate(t, moment, Fixed(moment).Now())
	test.Assert(t, !System.Now().IsZero(), "expecting non-zero system time")
}
