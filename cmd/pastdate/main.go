/*
pastdate is a console utility printing calendar dates for English date expressions.
Usage is

	pastdate parse [flags] <text>...
	pastdate examples [flags]

parse prints one line per argument, either "<text> => <date>" or "<text> => error: <message>",
and exits with non-zero status if any argument is not a date expression;

examples prints conversions of the example list from configuration file or of the built-in list.

Flags shared by both commands:

--config <file> defines YAML configuration file, flags override its values;

--now <moment> defines reference moment, RFC 3339 or YYYY-MM-DD, default is current time;

--format <layout> defines Go time layout of printed dates, default is 2006-01-02;

--case-sensitive disables case-insensitive keyword matching;

--max-depth <n> limits nesting of relative date references;

--trace logs every grammar rule attempt to stderr;

--log-level <level> and --log-format <text|json> define stderr logging.
*/
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ava12/pastdate"
)

func main() {
	e := newRootCmd(os.Stdout, os.Stderr).Execute()
	if e == nil {
		return
	}

	if !errors.Is(e, pastdate.ErrNoMatch) {
		fmt.Fprintln(os.Stderr, "pastdate:", e)
	}
	os.Exit(1)
}
