package pastdate

import (
	"errors"
	"testing"
)

type pos struct {
	name      string
	line, col int
}

func (p pos) SourceName() string { return p.name }
func (p pos) Line() int          { return p.line }
func (p pos) Col() int           { return p.col }

func TestErrorClasses(t *testing.T) {
	for _, code := range []int{NoMatchError, RecursionError} {
		if code < SyntaxErrors || code >= SyntaxErrors+100 {
			t.Errorf("code %d is outside of syntax error class", code)
		}
	}
	if ConfigErrors < SyntaxErrors+100 {
		t.Errorf("error classes overlap")
	}
}

func TestErrorMessages(t *testing.T) {
	samples := []struct {
		e        *Error
		expected string
	}{
		{FormatError(ConfigErrors, "wrong %s", "value"), "wrong value"},
		{FormatErrorPos(pos{"", 1, 7}, NoMatchError, "could not parse"), "could not parse at line 1 col 7"},
		{FormatErrorPos(pos{"arg", 2, 3}, NoMatchError, "could not parse"), "could not parse in arg at line 2 col 3"},
		{NewError(NoMatchError, "could not parse", "arg", 0, 0), "could not parse"},
	}
	for _, s := range samples {
		if s.e.Error() != s.expected {
			t.Errorf("expecting %q, got %q", s.expected, s.e.Error())
		}
	}
}

func TestErrNoMatch(t *testing.T) {
	if !errors.Is(FormatError(NoMatchError, "x"), ErrNoMatch) || !errors.Is(FormatError(RecursionError, "x"), ErrNoMatch) {
		t.Error("expecting syntax errors to match ErrNoMatch")
	}
	if errors.Is(FormatError(ConfigErrors, "x"), ErrNoMatch) {
		t.Error("unexpected match of config error")
	}
}
