package combinator

import (
	"sync"

	"go.uber.org/zap"
)

// Id returns x unchanged.
func Id[T any](x T) T { return x }

// ─────────────────────────────────────────────────────────────────────────────
// Composition
// ─────────────────────────────────────────────────────────────────────────────

// Compose chains fns right to left: Compose(f, g, h)(x) == f(g(h(x))).
// Nil entries are skipped and Compose() is Id.
func Compose[T any](fns ...func(T) T) func(T) T {
	chain := make([]func(T) T, 0, len(fns))
	for i := len(fns) - 1; i >= 0; i-- {
		if fns[i] != nil {
			chain = append(chain, fns[i])
		}
	}
	return run(chain)
}

// Pipe chains fns left to right: Pipe(f, g, h)(x) == h(g(f(x))).
// Nil entries are skipped and Pipe() is Id.
func Pipe[T any](fns ...func(T) T) func(T) T {
	chain := make([]func(T) T, 0, len(fns))
	for _, f := range fns {
		if f != nil {
			chain = append(chain, f)
		}
	}
	return run(chain)
}

func run[T any](chain []func(T) T) func(T) T {
	return func(x T) T {
		for _, f := range chain {
			x = f(x)
		}
		return x
	}
}

// Compose2 returns f ∘ g.
func Compose2[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C { return f(g(a)) }
}

// Compose3 returns f ∘ g ∘ h.
func Compose3[A, B, C, D any](f func(C) D, g func(B) C, h func(A) B) func(A) D {
	return Compose2(f, Compose2(g, h))
}

// Compose4 returns f ∘ g ∘ h ∘ i.
func Compose4[A, B, C, D, E any](
	f func(D) E, g func(C) D, h func(B) C, i func(A) B,
) func(A) E {
	return Compose2(f, Compose3(g, h, i))
}

// Compose5 returns f ∘ g ∘ h ∘ i ∘ j.
func Compose5[A, B, C, D, E, F any](
	f func(E) F, g func(D) E, h func(C) D, i func(B) C, j func(A) B,
) func(A) F {
	return Compose2(f, Compose4(g, h, i, j))
}

// ─────────────────────────────────────────────────────────────────────────────
// Application
// ─────────────────────────────────────────────────────────────────────────────

// Apply spreads args into the variadic fn.
//
//	Apply(max, []int{1, 2, 3}) // → 3
func Apply[T, U any](fn func(...T) U, args []T) U {
	return fn(args...)
}

// Curry turns a two-argument function into a chain of single-argument ones.
func Curry[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C { return f(a, b) }
	}
}

// Uncurry is the inverse of Curry.
func Uncurry[A, B, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C { return f(a)(b) }
}

// Const returns a function that ignores its argument and returns a.
func Const[B, A any](a A) func(B) A {
	return func(B) A { return a }
}

// ─────────────────────────────────────────────────────────────────────────────
// Side effects
// ─────────────────────────────────────────────────────────────────────────────

// Tee returns a function that calls fn with its argument and then returns
// the argument unchanged.
func Tee[T any](fn func(T)) func(T) T {
	return func(v T) T {
		fn(v)
		return v
	}
}

// Trace returns a Tee that logs each value at debug level under msg. A nil
// logger disables logging.
func Trace[T any](logger *zap.Logger, msg string) func(T) T {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Tee(func(v T) {
		logger.Debug(msg, zap.Any("value", v))
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Once
// ─────────────────────────────────────────────────────────────────────────────

// Once wraps fn so that it runs only on the first call. That call's result
// is returned by every later call, whatever argument is passed. If fn
// panics, the call still counts and later calls return the zero U.
func Once[T, U any](fn func(T) U) func(T) U {
	var (
		once   sync.Once
		result U
	)
	return func(v T) U {
		once.Do(func() { result = fn(v) })
		return result
	}
}

// OnceN is the variadic form of Once, with the same panic behaviour.
func OnceN[T, U any](fn func(...T) U) func(...T) U {
	var (
		once   sync.Once
		result U
	)
	return func(vs ...T) U {
		once.Do(func() { result = fn(vs...) })
		return result
	}
}
