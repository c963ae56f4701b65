// Package parser defines generic backtracking parser combinators.
//
// A Parser is a pure function of parse state and byte offset. It either succeeds producing
// a value and the offset of the rest of input, or fails. Failure is an ordinary value:
// it never consumes input, so alternatives and sequences always restart at the offset
// their caller holds. Parse state only collects diagnostics (the farthest failure and
// expected labels) and is private to a single Run call.
package parser

import (
	"context"
	"log/slog"

	"cloudeng.io/logging/ctxlog"

	"github.com/ava12/pastdate/source"
)

// DefaultMaxDepth is the default limit of Lazy recursion nesting.
const DefaultMaxDepth = 64

// Options are parsing engine options, see Option functions.
type Options struct {
	// SourceName is used in error messages.
	SourceName string

	// FoldCase makes literal matching case-insensitive.
	FoldCase bool

	// MaxDepth limits Lazy recursion nesting, values <= 0 mean DefaultMaxDepth.
	MaxDepth int
}

// Option modifies Options.
type Option func(*Options)

// WithSourceName sets source name used in error messages.
func WithSourceName(name string) Option {
	return func(o *Options) {
		o.SourceName = name
	}
}

// WithFoldCase enables or disables case-insensitive literal matching.
func WithFoldCase(fold bool) Option {
	return func(o *Options) {
		o.FoldCase = fold
	}
}

// WithMaxDepth sets Lazy recursion nesting limit.
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		o.MaxDepth = depth
	}
}

// NewOptions applies opts to default options.
func NewOptions(opts ...Option) Options {
	res := Options{MaxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&res)
	}
	if res.MaxDepth <= 0 {
		res.MaxDepth = DefaultMaxDepth
	}
	return res
}

// Result is the outcome of a parse attempt.
// On success Pos is the offset right after consumed input.
// On failure Pos is the offset the failed parser was invoked at, i.e. nothing is consumed.
type Result[T any] struct {
	Value T
	Pos   int
	OK    bool
}

// Parser parses input starting at offset pos.
type Parser[T any] func(st *State, pos int) Result[T]

// State is the per-call parse state.
type State struct {
	ctx      context.Context
	src      *source.Source
	opts     Options
	logger   *slog.Logger
	trace    bool
	depth    int
	farthest int
	expected []string
}

// NewState creates parse state for src. It is used by Run and by tests of custom parsers.
func NewState(ctx context.Context, src *source.Source, opts Options) *State {
	logger := ctxlog.Logger(ctx)
	return &State{
		ctx:      ctx,
		src:      src,
		opts:     opts,
		logger:   logger,
		trace:    logger.Enabled(ctx, slog.LevelDebug),
		farthest: -1,
	}
}

// Context returns the context passed to Run.
func (st *State) Context() context.Context {
	return st.ctx
}

// Source returns parsed source.
func (st *State) Source() *source.Source {
	return st.src
}

// Options returns effective options.
func (st *State) Options() Options {
	return st.opts
}

// Farthest returns the farthest offset a failure was recorded at and the labels expected there.
// Returns -1 if no failure was recorded.
func (st *State) Farthest() (pos int, expected []string) {
	return st.farthest, st.expected
}

func (st *State) expect(pos int, name string) {
	if name == "" {
		return
	}

	if pos > st.farthest {
		st.farthest = pos
		st.expected = st.expected[:0]
	} else if pos < st.farthest {
		return
	}

	for _, e := range st.expected {
		if e == name {
			return
		}
	}
	st.expected = append(st.expected, name)
}

// Success returns a successful result.
func Success[T any](value T, pos int) Result[T] {
	return Result[T]{Value: value, Pos: pos, OK: true}
}

// Fail returns a failed result for parser invoked at pos.
// expected is recorded for diagnostics unless it is empty.
func Fail[T any](st *State, pos int, expected string) Result[T] {
	st.expect(pos, expected)
	return Result[T]{Pos: pos}
}

// Run parses the whole text with p.
// The parser must consume all input, use EOF at the end of p's grammar to ensure that.
// Returns *pastdate.Error with NoMatchError or RecursionError code on failure.
func Run[T any](ctx context.Context, p Parser[T], text string, opts ...Option) (T, error) {
	options := NewOptions(opts...)
	src := source.New(options.SourceName, text)
	st := NewState(ctx, src, options)
	res := p(st, 0)
	if res.OK && res.Pos == src.Len() {
		return res.Value, nil
	}

	var zero T
	pos, expected := st.Farthest()
	if !res.OK && pos < 0 {
		pos = 0
	} else if res.OK && pos < res.Pos {
		pos = res.Pos
		expected = []string{eofLabel}
	}
	for _, name := range expected {
		if name == recursionLabel {
			return zero, recursionError(source.NewPos(src, pos), options.MaxDepth)
		}
	}
	return zero, noMatchError(source.NewPos(src, pos), expected)
}
