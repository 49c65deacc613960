package pred

import (
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// Pred is a predicate over values of type T.
type Pred[T any] func(T) bool

// Boolish is the set of types that have a natural truthiness: booleans and
// integers, where the zero value is false.
type Boolish interface {
	~bool | constraints.Integer
}

// Not reports whether v is falsy, i.e. equal to its zero value.
//
//	Not(false) // → true
//	Not(1)     // → false
func Not[T Boolish](v T) bool {
	var zero T
	return v == zero
}

// IsEmpty reports whether xs has no elements. A nil slice is empty.
func IsEmpty[T any](xs []T) bool {
	return len(xs) == 0
}

// Includes reports whether el is present in xs, compared with ==.
func Includes[T comparable](el T, xs []T) bool {
	return lo.Contains(xs, el)
}

// ─────────────────────────────────────────────────────────────────────────────
// Combinators
// ─────────────────────────────────────────────────────────────────────────────

// Negate inverts p.
func Negate[T any](p Pred[T]) Pred[T] {
	return func(v T) bool { return !p(v) }
}

// And is true when every predicate holds. Evaluation stops at the first
// false result. And() with no predicates always holds.
func And[T any](ps ...Pred[T]) Pred[T] {
	return func(v T) bool {
		for _, p := range ps {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Or is true when at least one predicate holds. Or() with no predicates
// never holds.
func Or[T any](ps ...Pred[T]) Pred[T] {
	return func(v T) bool {
		for _, p := range ps {
			if p(v) {
				return true
			}
		}
		return false
	}
}

// Eq returns a predicate that matches values equal to x.
func Eq[T comparable](x T) Pred[T] {
	return func(y T) bool { return x == y }
}

// Neq returns a predicate that matches values different from x.
func Neq[T comparable](x T) Pred[T] {
	return func(y T) bool { return x != y }
}
