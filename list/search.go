package list

import "github.com/lightningnetwork/lnd/fn"

// Find returns the first element satisfying p, or fn.None.
func Find[T any](p func(T) bool, xs []T) fn.Option[T] {
	if i := FindIndex(p, xs); i >= 0 {
		return fn.Some(xs[i])
	}
	return fn.None[T]()
}

// FindIndex returns the index of the first element satisfying p, or -1.
func FindIndex[T any](p func(T) bool, xs []T) int {
	for i, x := range xs {
		if p(x) {
			return i
		}
	}
	return -1
}

// Some reports whether at least one element satisfies p. It is false for
// an empty slice.
func Some[T any](p func(T) bool, xs []T) bool {
	return FindIndex(p, xs) >= 0
}

// Every reports whether all elements satisfy p. It is true for an empty
// slice.
func Every[T any](p func(T) bool, xs []T) bool {
	for _, x := range xs {
		if !p(x) {
			return false
		}
	}
	return true
}

// Head returns the first element, or fn.None when xs is empty.
func Head[T any](xs []T) fn.Option[T] {
	if len(xs) == 0 {
		return fn.None[T]()
	}
	return fn.Some(xs[0])
}

// Last returns the final element, or fn.None when xs is empty.
func Last[T any](xs []T) fn.Option[T] {
	if len(xs) == 0 {
		return fn.None[T]()
	}
	return fn.Some(xs[len(xs)-1])
}
