package parser

import (
	"log/slog"
	"sync"
)

// Alt tries alternatives in order, each one at the same offset, and returns the first success.
// Fails at the original offset if all alternatives fail.
func Alt[T any](alts ...Parser[T]) Parser[T] {
	return func(st *State, pos int) Result[T] {
		for _, p := range alts {
			res := p(st, pos)
			if res.OK {
				return res
			}
		}
		return Fail[T](st, pos, "")
	}
}

// Bind runs p, then passes its value to f and runs the returned parser on the rest of input.
// If either step fails the whole sequence fails at the original offset.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(st *State, pos int) Result[B] {
		a := p(st, pos)
		if !a.OK {
			return Fail[B](st, pos, "")
		}

		b := f(a.Value)(st, a.Pos)
		if !b.OK {
			return Fail[B](st, pos, "")
		}
		return b
	}
}

// Then runs p and q in sequence and returns the value of q.
func Then[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return Bind(p, func(A) Parser[B] { return q })
}

// Skip runs p and q in sequence and returns the value of p.
func Skip[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return Bind(p, func(a A) Parser[A] {
		return Map(q, func(B) A { return a })
	})
}

// Seq runs parsers of the same type in sequence and returns all their values.
func Seq[T any](ps ...Parser[T]) Parser[[]T] {
	return func(st *State, pos int) Result[[]T] {
		values := make([]T, 0, len(ps))
		next := pos
		for _, p := range ps {
			res := p(st, next)
			if !res.OK {
				return Fail[[]T](st, pos, "")
			}
			values = append(values, res.Value)
			next = res.Pos
		}
		return Success(values, next)
	}
}

// Map converts the value of p with f.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(st *State, pos int) Result[B] {
		res := p(st, pos)
		if !res.OK {
			return Fail[B](st, pos, "")
		}
		return Success(f(res.Value), res.Pos)
	}
}

// MapOK converts the value of p with f and fails if f rejects the value.
// This turns semantic rejection into ordinary failure, so enclosing alternatives backtrack.
// expected is recorded for diagnostics at the original offset.
func MapOK[A, B any](p Parser[A], expected string, f func(A) (B, bool)) Parser[B] {
	return func(st *State, pos int) Result[B] {
		res := p(st, pos)
		if !res.OK {
			return Fail[B](st, pos, "")
		}

		value, valid := f(res.Value)
		if !valid {
			return Fail[B](st, pos, expected)
		}
		return Success(value, res.Pos)
	}
}

// Value returns a parser that runs p and returns value instead of p's value.
func Value[A, B any](p Parser[A], value B) Parser[B] {
	return Map(p, func(A) B { return value })
}

// Optional returns the value of p or absent if p fails; it never fails.
func Optional[T any](p Parser[T], absent T) Parser[T] {
	return func(st *State, pos int) Result[T] {
		res := p(st, pos)
		if res.OK {
			return res
		}
		return Success(absent, pos)
	}
}

// Label names p for diagnostics; behavior of p does not change.
// Failures of p are reported as "expecting name" at the offset p was invoked at.
// Attempts are traced at debug level by the logger stored in Run's context.
func Label[T any](name string, p Parser[T]) Parser[T] {
	return func(st *State, pos int) Result[T] {
		res := p(st, pos)
		if st.trace {
			st.logger.LogAttrs(st.ctx, slog.LevelDebug, "parse",
				slog.String("label", name), slog.Int("pos", pos), slog.Bool("ok", res.OK), slog.Int("next", res.Pos))
		}
		if !res.OK {
			st.expect(pos, name)
		}
		return res
	}
}

// Lazy defers construction of a parser until its first use, enabling recursive grammars.
// Nesting of Lazy parsers is limited by Options.MaxDepth, exceeding the limit is an ordinary failure.
// Panics if f returns nil.
func Lazy[T any](f func() Parser[T]) Parser[T] {
	get := sync.OnceValue(func() Parser[T] {
		p := f()
		if p == nil {
			panic("parser: Lazy constructor returned nil parser")
		}
		return p
	})

	return func(st *State, pos int) Result[T] {
		if st.depth >= st.opts.MaxDepth {
			return Fail[T](st, pos, recursionLabel)
		}

		st.depth++
		defer func() { st.depth-- }()
		return get()(st, pos)
	}
}
