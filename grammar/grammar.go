// Package grammar defines the date grammar and its entry point.
//
// Grammar, in priority order of alternatives:
//
//	entry         = [space], date, [space], end of input;
//	date          = locale-date | relative-date | now-or-today | yesterday;
//	locale-date   = full-date | month-and-day | month-and-year;
//	full-date     = month, space, day, [","], [space], year;
//	month-and-day = month, space, day;
//	month-and-year = month, space, year;
//	relative-date = [count], [space], unit, space, reference;
//	reference     = "ago" | ("from" | "before" | "until"), space, date;
//	count         = integer | "the";
//	unit          = ("day" | "week" | "month" | "year"), ["s"];
//	now-or-today  = "today" | "now";
//	yesterday     = "yesterday";
//
// Every alternative is tried at the same offset, the first one that succeeds wins.
// A month, day, and year that do not form a calendar day make the phrase fail,
// so the next alternative is tried.
package grammar

import (
	"context"
	"time"

	"github.com/ava12/pastdate/calendar"
	"github.com/ava12/pastdate/parser"
)

// Grammar resolves date expressions relative to the moment reported by its clock.
// Grammar is safe for concurrent use if its clock is.
type Grammar struct {
	clock calendar.Clock
	opts  []parser.Option
}

// New creates Grammar. opts are forwarded to the parsing engine on every call.
// Keywords are matched exactly unless parser.WithFoldCase(true) is passed;
// month names are matched regardless of case.
func New(clock calendar.Clock, opts ...parser.Option) *Grammar {
	if clock == nil {
		clock = calendar.System
	}
	return &Grammar{clock: clock, opts: opts}
}

// Parse resolves text. The clock is read once per call.
// Returns *pastdate.Error with pastdate.NoMatchError code if text is not a date expression.
func (g *Grammar) Parse(ctx context.Context, text string, opts ...parser.Option) (time.Time, error) {
	d := newDates(g.clock.Now())
	all := make([]parser.Option, 0, len(g.opts)+len(opts))
	all = append(append(all, g.opts...), opts...)
	return parser.Run(ctx, d.entry(), text, all...)
}

// Parse resolves text relative to now.
func Parse(ctx context.Context, text string, now time.Time, opts ...parser.Option) (time.Time, error) {
	return New(calendar.Fixed(now)).Parse(ctx, text, opts...)
}

// ParseNow resolves text relative to the current system time.
func ParseNow(ctx context.Context, text string, opts ...parser.Option) (time.Time, error) {
	return New(calendar.System).Parse(ctx, text, opts...)
}
