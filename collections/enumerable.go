package collections

import "github.com/lightningnetwork/lnd/fn"

// Enumerable is the read-only surface of [Collection][T].
//
// Accept Enumerable in your own functions so that callers can substitute
// alternative implementations without depending on *Collection.
type Enumerable[T any] interface {
	// All returns a copy of every item as a plain Go slice.
	All() []T

	// Count returns the number of items.
	Count() int

	// Each calls fn(item, index) for every item.
	Each(fn func(T, int))

	// Find returns the first item satisfying p, or fn.None.
	Find(p func(T) bool) fn.Option[T]

	// IsEmpty reports whether the collection contains no items.
	IsEmpty() bool
}

var _ Enumerable[int] = (*Collection[int])(nil)
