package parser

import (
	"strconv"
	"unicode"
)

const eofLabel = "end of input"

// Literal matches text exactly, or case-insensitively if Options.FoldCase is set.
// Returns matched source text.
func Literal(text string) Parser[string] {
	expected := strconv.Quote(text)
	return func(st *State, pos int) Result[string] {
		size := st.src.HasPrefixAt(pos, text, st.opts.FoldCase)
		if size < 0 {
			return Fail[string](st, pos, expected)
		}
		return Success(st.src.Content()[pos:pos+size], pos+size)
	}
}

// Literals matches the first of texts that matches at the offset.
func Literals(texts ...string) Parser[string] {
	ps := make([]Parser[string], len(texts))
	for i, t := range texts {
		ps[i] = Literal(t)
	}
	return Alt(ps...)
}

// Charset matches a single rune satisfying pred. name is used for diagnostics.
func Charset(name string, pred func(rune) bool) Parser[rune] {
	return func(st *State, pos int) Result[rune] {
		r, size := st.src.RuneAt(pos)
		if size == 0 || !pred(r) {
			return Fail[rune](st, pos, name)
		}
		return Success(r, pos+size)
	}
}

// Span matches the longest run of runes satisfying pred, at least min and at most max runes long.
// The run is not split: if it is longer than max the parser fails. max <= 0 means no upper limit.
// Panics if min is negative.
func Span(name string, min, max int, pred func(rune) bool) Parser[string] {
	if min < 0 {
		panic("parser: negative minimal span length")
	}

	return func(st *State, pos int) Result[string] {
		next := pos
		count := 0
		for {
			r, size := st.src.RuneAt(next)
			if size == 0 || !pred(r) {
				break
			}
			next += size
			count++
		}

		if count < min || (max > 0 && count > max) {
			return Fail[string](st, pos, name)
		}
		return Success(st.src.Content()[pos:next], next)
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Digits matches a run of min to max ASCII decimal digits.
func Digits(name string, min, max int) Parser[string] {
	if min < 1 {
		min = 1
	}
	return Span(name, min, max, isDigit)
}

// Int matches a run of min to max ASCII decimal digits and returns its value.
func Int(name string, min, max int) Parser[int] {
	return MapOK(Digits(name, min, max), name, func(s string) (int, bool) {
		n, e := strconv.Atoi(s)
		return n, e == nil
	})
}

// Word matches a non-empty run of non-space runes.
func Word(name string) Parser[string] {
	return Span(name, 1, 0, func(r rune) bool { return !unicode.IsSpace(r) })
}

// Whitespace matches a non-empty run of Unicode spaces.
func Whitespace() Parser[string] {
	return Span("whitespace", 1, 0, unicode.IsSpace)
}

// OptionalWhitespace matches a possibly empty run of Unicode spaces; it never fails.
func OptionalWhitespace() Parser[string] {
	return Span("", 0, 0, unicode.IsSpace)
}

// EOF succeeds only at the end of input.
func EOF() Parser[struct{}] {
	return func(st *State, pos int) Result[struct{}] {
		if pos != st.src.Len() {
			return Fail[struct{}](st, pos, eofLabel)
		}
		return Success(struct{}{}, pos)
	}
}
