package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"

	"github.com/ava12/pastdate"
	"github.com/ava12/pastdate/grammar"
	"github.com/ava12/pastdate/internal/config"
	"github.com/ava12/pastdate/parser"
)

type app struct {
	out, errOut io.Writer
	configFile  string
	cfg         config.Config
	flags       config.Config
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}
	root := &cobra.Command{
		Use:               "pastdate",
		Short:             "Convert English date expressions to calendar dates",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "YAML configuration file")
	pf.StringVar(&a.flags.Now, "now", "", "reference moment, RFC 3339 or YYYY-MM-DD, default is current time")
	pf.StringVar(&a.flags.Format, "format", "", "Go time layout of printed dates (default 2006-01-02)")
	pf.BoolVar(&a.flags.CaseSensitive, "case-sensitive", false, "disable case-insensitive keyword matching")
	pf.IntVar(&a.flags.MaxDepth, "max-depth", 0, "nesting limit of relative date references")
	pf.BoolVar(&a.flags.Trace, "trace", false, "log grammar rule attempts")
	pf.StringVar(&a.flags.LogLevel, "log-level", "", "log level: debug, info, warn, error (default warn)")
	pf.StringVar(&a.flags.LogFormat, "log-format", "", "log format: text or json (default text)")

	root.AddCommand(a.parseCmd(), a.examplesCmd())
	return root
}

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "parse <text>...",
		Short:   "Print dates for date expressions",
		Example: `  pastdate parse --now 2013-09-15 "Aug 20, 2013" "3 days ago"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(cmd.Context(), "argument", args)
		},
	}
}

func (a *app) examplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Print dates for example expressions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := a.convert(cmd.Context(), "example", a.cfg.ExampleList())
			if errors.Is(e, pastdate.ErrNoMatch) {
				return nil
			}
			return e
		},
	}
}

// setup builds effective configuration and installs logger into command context.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if a.configFile != "" {
		var e error
		cfg, e = config.Load(a.configFile)
		if e != nil {
			return e
		}
	}

	flags := cmd.Flags()
	if flags.Changed("now") {
		cfg.Now = a.flags.Now
	}
	if flags.Changed("format") {
		cfg.Format = a.flags.Format
	}
	if flags.Changed("case-sensitive") {
		cfg.CaseSensitive = a.flags.CaseSensitive
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = a.flags.MaxDepth
	}
	if flags.Changed("trace") {
		cfg.Trace = a.flags.Trace
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flags.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.flags.LogFormat
	}
	if e := cfg.Validate(); e != nil {
		return e
	}
	a.cfg = cfg

	level, _ := cfg.Level()
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(a.errOut, opts)
	} else {
		handler = slog.NewTextHandler(a.errOut, opts)
	}
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), slog.New(handler).With("command", cmd.Name())))
	return nil
}

// convert prints a line per text and returns collected parse errors.
func (a *app) convert(ctx context.Context, kind string, texts []string) error {
	clock, e := a.cfg.Clock()
	if e != nil {
		return e
	}

	g := grammar.New(clock, a.cfg.ParserOptions()...)
	format := a.cfg.DateFormat()
	logger := ctxlog.Logger(ctx)
	errs := &errors.M{}
	for i, text := range texts {
		name := fmt.Sprintf("%s %d", kind, i+1)
		date, e := g.Parse(ctx, text, parser.WithSourceName(name))
		if e != nil {
			logger.Info("conversion failed", "source", name, "error", e)
			fmt.Fprintf(a.out, "%s => error: %s\n", text, e)
			errs.Append(e)
			continue
		}

		logger.Debug("converted", "source", name, "date", date)
		fmt.Fprintf(a.out, "%s => %s\n", text, date.Format(format))
	}
	return errs.Err()
}
