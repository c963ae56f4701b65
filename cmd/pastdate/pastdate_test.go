package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ava12/pastdate"
	"github.com/ava12/pastdate/internal/config"
	"github.com/ava12/pastdate/internal/test"
)

func run(args ...string) (stdout, stderr string, e error) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := newRootCmd(out, errOut)
	cmd.SetArgs(args)
	e = cmd.Execute()
	return out.String(), errOut.String(), e
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestParseCommand(t *testing.T) {
	out, _, e := run("parse", "--now", "2013-09-15", "Aug 20, 2013", "3 days ago", "1 month before Mar 31")
	test.Assert(t, e == nil, "unexpected error: %v", e)
	test.ExpectDiff(t, []string{
		"Aug 20, 2013 => 2013-08-20",
		"3 days ago => 2013-09-12",
		"1 month before Mar 31 => 2013-02-28",
	}, lines(out))
}

func TestParseCommandFailures(t *testing.T) {
	out, _, e := run("parse", "--now", "2013-09-15", "today please", "yesterday", "Feb 30")
	test.Assert(t, errors.Is(e, pastdate.ErrNoMatch), "expecting no match error, got %v", e)
	test.ExpectErrorCode(t, pastdate.NoMatchError, e)

	got := lines(out)
	test.ExpectInt(t, 3, len(got))
	test.Assert(t, strings.HasPrefix(got[0], "today please => error: could not parse"), "unexpected line %q", got[0])
	test.Assert(t, strings.Contains(got[0], "in argument 1 at line 1 col 7"), "unexpected line %q", got[0])
	test.Expect(t, got[1] == "yesterday => 2013-09-14", "yesterday => 2013-09-14", got[1])
	test.Assert(t, strings.HasPrefix(got[2], "Feb 30 => error:"), "unexpected line %q", got[2])
}

func TestParseCommandFlags(t *testing.T) {
	out, _, e := run("parse", "--now", "2013-09-15T13:45:00Z", "--format", "Jan 2, 2006", "the day before yesterday")
	test.Assert(t, e == nil, "unexpected error: %v", e)
	test.ExpectDiff(t, []string{"the day before yesterday => Sep 13, 2013"}, lines(out))

	out, _, e = run("parse", "--now", "2013-09-15", "TODAY")
	test.Assert(t, e == nil, "unexpected error: %v", e)
	test.ExpectDiff(t, []string{"TODAY => 2013-09-15"}, lines(out))

	_, _, e = run("parse", "--now", "2013-09-15", "--case-sensitive", "TODAY")
	test.ExpectErrorCode(t, pastdate.NoMatchError, e)

	_, _, e = run("parse", "--now", "2013-09-15", "--max-depth", "2", "1 day before 1 day before 1 day before today")
	test.ExpectErrorCode(t, pastdate.RecursionError, e)

	_, _, e = run("parse", "--log-level", "loud", "today")
	test.ExpectErrorCode(t, config.WrongValueError, e)

	_, _, e = run("parse")
	test.Assert(t, e != nil, "expecting error for missing arguments")
}

func TestTrace(t *testing.T) {
	_, errOut, e := run("parse", "--now", "2013-09-15", "--trace", "--log-format", "json", "now")
	test.Assert(t, e == nil, "unexpected error: %v", e)
	for _, s := range []string{`"msg":"parse"`, `"command":"parse"`, `"label":"today"`} {
		test.Assert(t, strings.Contains(errOut, s), "expecting %s in %s", s, errOut)
	}

	_, errOut, e = run("parse", "--now", "2013-09-15", "now")
	test.Assert(t, e == nil, "unexpected error: %v", e)
	test.Expect(t, errOut == "", "no log output", errOut)
}

func TestExamplesCommand(t *testing.T) {
	out, _, e := run("examples", "--now", "2013-09-15")
	test.Assert(t, e == nil, "unexpected error: %v", e)
	test.ExpectInt(t, len(config.DefaultExamples), len(lines(out)))

	dir := t.TempDir()
	name := filepath.Join(dir, "pastdate.yaml")
	data := "now: 2013-09-15\nformat: \"02.01.2006\"\nexamples:\n  - Aug 19\n  - 2 weeks ago\n  - never\n"
	test.Assert(t, os.WriteFile(name, []byte(data), 0o644) == nil, "cannot write %s", name)

	out, _, e = run("examples", "--config", name)
	test.Assert(t, e == nil, "unexpected error: %v", e)
	got := lines(out)
	test.ExpectInt(t, 3, len(got))
	test.ExpectDiff(t, []string{"Aug 19 => 19.08.2013", "2 weeks ago => 01.09.2013"}, got[:2])
	test.Assert(t, strings.HasPrefix(got[2], "never => error:"), "unexpected line %q", got[2])

	out, _, e = run("examples", "--config", name, "--format", "2006/01/02")
	test.Assert(t, e == nil, "unexpected error: %v", e)
	test.Assert(t, strings.HasPrefix(out, "Aug 19 => 2013/08/19\n"), "unexpected output %q", out)

	_, _, e = run("examples", "--config", filepath.Join(dir, "missing.yaml"))
	test.ExpectErrorCode(t, config.ReadError, e)
}
