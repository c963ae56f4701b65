package grammar

import (
	"time"

	"github.com/ava12/pastdate/calendar"
	p "github.com/ava12/pastdate/parser"
)

func monthName() p.Parser[time.Month] {
	return p.Label("month name", p.MapOK(p.Word(""), "", calendar.MonthFromText))
}

func dayOfMonth() p.Parser[int] {
	return p.Label("day of month", p.MapOK(p.Int("", 1, 2), "", func(n int) (int, bool) {
		return n, n >= 1 && n <= 31
	}))
}

func year4() p.Parser[int] {
	return p.Int("4-digit year", 4, 4)
}

func intervalCount() p.Parser[int] {
	number := p.MapOK(p.Int("", 1, 0), "", func(n int) (int, bool) {
		return n, n > 0
	})
	return p.Label("interval count", p.Alt(number, p.Value(p.Literal("the"), 1)))
}

func intervalUnit() p.Parser[calendar.Unit] {
	units := make([]p.Parser[calendar.Unit], 0, len(calendar.Units()))
	for _, u := range calendar.Units() {
		units = append(units, p.Value(p.Literal(u.String()), u))
	}
	return p.Label("interval unit", p.Skip(p.Alt(units...), p.Optional(p.Literal("s"), "")))
}
