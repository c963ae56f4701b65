package parser

import (
	"sort"
	"strings"

	"github.com/ava12/pastdate"
	"github.com/ava12/pastdate/source"
)

// Error codes used by parser:
const (
	// NoMatchError indicates that the parser cannot consume the whole input.
	NoMatchError = pastdate.NoMatchError

	// RecursionError indicates that the farthest failure was caused by recursion depth limit.
	RecursionError = pastdate.RecursionError
)

const recursionLabel = "-recursion-limit-"

func noMatchError(pos source.Pos, expected []string) *pastdate.Error {
	if len(expected) == 0 {
		return pastdate.FormatErrorPos(pos, NoMatchError, "could not parse %q", pos.Source().Content())
	}

	return pastdate.FormatErrorPos(pos, NoMatchError, "could not parse %q, expecting %s",
		pos.Source().Content(), joinExpected(expected))
}

func recursionError(pos source.Pos, limit int) *pastdate.Error {
	return pastdate.FormatErrorPos(pos, RecursionError, "recursion depth limit %d exceeded", limit)
}

func joinExpected(expected []string) string {
	names := append([]string(nil), expected...)
	sort.Strings(names)
	if len(names) == 1 {
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}
