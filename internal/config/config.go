// Package config defines the configuration of the pastdate command.
package config

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ava12/pastdate"
	"github.com/ava12/pastdate/calendar"
	"github.com/ava12/pastdate/parser"
)

// Error codes used by config:
const (
	ReadError = pastdate.ConfigErrors + iota
	DecodeError
	WrongValueError
)

// DefaultExamples are printed by "pastdate examples" when configuration has none.
var DefaultExamples = []string{
	"today",
	"now",
	"yesterday",
	"Aug 20, 2013",
	"Aug 20 2013",
	"August 2011",
	"Aug 19",
	"3 days ago",
	"2 weeks ago",
	"1 month ago",
	"the day before yesterday",
	"1 month from 2 days before Aug 30",
	"1 month before Mar 31",
	"Feb 30",
	"today please",
}

// Config contains command settings. Zero values mean defaults.
type Config struct {
	// Now is the reference moment, RFC 3339 or YYYY-MM-DD; empty means system time.
	Now string `yaml:"now"`

	// Format is the Go time layout used to print dates.
	Format string `yaml:"format"`

	// Trace enables debug logging of grammar rule attempts.
	Trace bool `yaml:"trace"`

	// CaseSensitive disables case-insensitive keyword matching.
	CaseSensitive bool `yaml:"case_sensitive"`

	// MaxDepth limits nesting of relative date references.
	MaxDepth int `yaml:"max_depth"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFormat is either text or json.
	LogFormat string `yaml:"log_format"`

	// Examples are the expressions printed by "pastdate examples".
	Examples []string `yaml:"examples"`
}

// Default returns default configuration.
func Default() Config {
	return Config{
		Format:    time.DateOnly,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Parse decodes YAML configuration over defaults. Unknown fields are errors.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if e := dec.Decode(&cfg); e != nil && !errors.Is(e, io.EOF) {
		return Config{}, pastdate.FormatError(DecodeError, "wrong configuration: %s", e)
	}
	return cfg, cfg.Validate()
}

// Load reads and decodes YAML configuration file.
func Load(filename string) (Config, error) {
	data, e := os.ReadFile(filename)
	if e != nil {
		return Config{}, pastdate.FormatError(ReadError, "cannot read configuration: %s", e)
	}

	cfg, e := Parse(data)
	if e != nil {
		var ee *pastdate.Error
		if errors.As(e, &ee) {
			return Config{}, pastdate.NewError(ee.Code, filename+": "+ee.Message, filename, 0, 0)
		}
		return Config{}, e
	}
	return cfg, nil
}

// Validate checks values that are not checked by YAML decoder.
func (c Config) Validate() error {
	if _, e := c.Clock(); e != nil {
		return e
	}
	if _, e := c.Level(); e != nil {
		return e
	}
	if c.LogFormat != "" && c.LogFormat != "text" && c.LogFormat != "json" {
		return pastdate.FormatError(WrongValueError, "wrong log format %q, expecting text or json", c.LogFormat)
	}
	if c.MaxDepth < 0 {
		return pastdate.FormatError(WrongValueError, "wrong max depth %d", c.MaxDepth)
	}
	return nil
}

// Clock returns the clock reporting Now or the system clock if Now is empty.
func (c Config) Clock() (calendar.Clock, error) {
	if c.Now == "" {
		return calendar.System, nil
	}

	for _, layout := range []string{time.RFC3339, time.DateTime, time.DateOnly} {
		if t, e := time.ParseInLocation(layout, c.Now, time.Local); e == nil {
			return calendar.Fixed(t), nil
		}
	}
	return nil, pastdate.FormatError(WrongValueError, "wrong reference moment %q, expecting RFC 3339 or YYYY-MM-DD", c.Now)
}

// Level converts LogLevel to slog.Level. Trace forces slog.LevelDebug.
func (c Config) Level() (slog.Level, error) {
	level := slog.LevelWarn
	if c.LogLevel != "" {
		if e := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); e != nil {
			return level, pastdate.FormatError(WrongValueError, "wrong log level %q", c.LogLevel)
		}
	}
	if c.Trace {
		level = slog.LevelDebug
	}
	return level, nil
}

// ParserOptions returns options forwarded to the parsing engine.
func (c Config) ParserOptions() []parser.Option {
	opts := []parser.Option{parser.WithFoldCase(!c.CaseSensitive)}
	if c.MaxDepth > 0 {
		opts = append(opts, parser.WithMaxDepth(c.MaxDepth))
	}
	return opts
}

// DateFormat returns Format or time.DateOnly if Format is empty.
func (c Config) DateFormat() string {
	if c.Format == "" {
		return time.DateOnly
	}
	return c.Format
}

// ExampleList returns Examples or DefaultExamples if there are none.
func (c Config) ExampleList() []string {
	if len(c.Examples) == 0 {
		return DefaultExamples
	}
	return c.Examples
}
