package grammar

import (
	"time"

	"github.com/ava12/pastdate/calendar"
	p "github.com/ava12/pastdate/parser"
)

type date = p.Parser[time.Time]

// dates holds phrase parsers bound to the moment of a single Parse call.
type dates struct {
	now   time.Time
	today time.Time
	expr  date
}

func newDates(now time.Time) *dates {
	d := &dates{now: now, today: calendar.StartOfDay(now)}
	d.expr = p.Lazy(d.dateExpr)
	return d
}

func (d *dates) entry() date {
	return p.Then(p.OptionalWhitespace(), p.Skip(p.Skip(d.expr, p.OptionalWhitespace()), p.EOF()))
}

func (d *dates) dateExpr() date {
	return p.Alt(d.localeDate(), d.relativeDate(), d.nowOrToday(), d.yesterday())
}

func (d *dates) makeDate(year int, month time.Month, day int) (time.Time, bool) {
	return calendar.MakeDate(year, month, day, d.now.Location())
}

func (d *dates) nowOrToday() date {
	return p.Label("today", p.Value(p.Literals("today", "now"), d.today))
}

func (d *dates) yesterday() date {
	yesterday, _ := calendar.Subtract(d.today, 1, calendar.Day)
	return p.Label("yesterday", p.Value(p.Literal("yesterday"), yesterday))
}

func (d *dates) referenceDate() date {
	ago := p.Value(p.Literal("ago"), d.today)
	clause := p.Then(p.Literals("from", "before", "until"), p.Then(p.Whitespace(), d.expr))
	return p.Label("reference date", p.Alt(ago, clause))
}

func (d *dates) relativeDate() date {
	return p.Label("relative date", p.Bind(p.Optional(intervalCount(), 1), func(n int) date {
		return p.Then(p.OptionalWhitespace(), p.Bind(intervalUnit(), func(u calendar.Unit) date {
			return p.Then(p.Whitespace(), p.MapOK(d.referenceDate(), "date in range", func(ref time.Time) (time.Time, bool) {
				return calendar.Subtract(ref, n, u)
			}))
		}))
	}))
}

func (d *dates) monthAndYear() date {
	return p.Label("month and year", p.Bind(monthName(), func(m time.Month) date {
		return p.Then(p.Whitespace(), p.MapOK(year4(), "valid date", func(y int) (time.Time, bool) {
			return d.makeDate(y, m, 1)
		}))
	}))
}

func (d *dates) monthAndDay() date {
	return p.Label("month and day", p.Bind(monthName(), func(m time.Month) date {
		return p.Then(p.Whitespace(), p.MapOK(dayOfMonth(), "valid date", func(day int) (time.Time, bool) {
			return d.makeDate(d.now.Year(), m, day)
		}))
	}))
}

func (d *dates) fullDate() date {
	return p.Label("full date", p.Bind(monthName(), func(m time.Month) date {
		return p.Then(p.Whitespace(), p.Bind(dayOfMonth(), func(day int) date {
			separator := p.Then(p.Optional(p.Literal(","), ""), p.OptionalWhitespace())
			return p.Then(separator, p.MapOK(year4(), "valid date", func(y int) (time.Time, bool) {
				return d.makeDate(y, m, day)
			}))
		}))
	}))
}

func (d *dates) localeDate() date {
	return p.Alt(d.fullDate(), d.monthAndDay(), d.monthAndYear())
}
