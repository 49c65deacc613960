package collections

import (
	"encoding/json"
	"fmt"

	"github.com/lightningnetwork/lnd/fn"

	"github.com/hasbyte1/go-fp-utils/combinator"
	"github.com/hasbyte1/go-fp-utils/list"
	"github.com/hasbyte1/go-fp-utils/pred"
)

// Collection is a generic, immutable wrapper around a slice of T.
//
//	c := collections.New(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.Empty[int]()
type Collection[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	return &Collection[T]{items: list.Take(len(items), items)}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

func wrap[T any](items []T) *Collection[T] {
	return &Collection[T]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T { return list.Take(len(c.items), c.items) }

// ToSlice is an alias for [Collection.All].
func (c *Collection[T]) ToSlice() []T { return c.All() }

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return list.Len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return pred.IsEmpty(c.items) }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection[T]) IsNotEmpty() bool { return !c.IsEmpty() }

// Get returns the item at index together with a presence flag.
func (c *Collection[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(c.items) {
		return zero, false
	}
	return c.items[index], true
}

// At returns the item at index or [ErrIndexOutOfRange].
func (c *Collection[T]) At(index int) (T, error) {
	v, ok := c.Get(index)
	if !ok {
		return v, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return v, nil
}

// First returns the first item, or fn.None when the collection is empty.
func (c *Collection[T]) First() fn.Option[T] { return list.Head(c.items) }

// Last returns the last item, or fn.None when the collection is empty.
func (c *Collection[T]) Last() fn.Option[T] { return list.Last(c.items) }

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every item.
func (c *Collection[T]) Each(fn func(T, int)) {
	for i, item := range c.items {
		fn(item, i)
	}
}

// Tap calls fn(c) for side effects and returns c unchanged.
func (c *Collection[T]) Tap(fn func(*Collection[T])) *Collection[T] {
	return combinator.Tee(fn)(c)
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the first item satisfying p, or fn.None.
func (c *Collection[T]) Find(p func(T) bool) fn.Option[T] {
	return list.Find(p, c.items)
}

// FindOrFail returns the first item satisfying p, or [ErrNoMatchingItems].
func (c *Collection[T]) FindOrFail(p func(T) bool) (T, error) {
	i := list.FindIndex(p, c.items)
	if i < 0 {
		var zero T
		return zero, ErrNoMatchingItems
	}
	return c.items[i], nil
}

// FindIndex returns the index of the first item satisfying p, or -1.
func (c *Collection[T]) FindIndex(p func(T) bool) int {
	return list.FindIndex(p, c.items)
}

// Some reports whether any item satisfies p.
func (c *Collection[T]) Some(p func(T) bool) bool { return list.Some(p, c.items) }

// Every reports whether all items satisfy p.
func (c *Collection[T]) Every(p func(T) bool) bool { return list.Every(p, c.items) }

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter keeps the items for which fn(item, index) is true.
func (c *Collection[T]) Filter(fn func(T, int) bool) *Collection[T] {
	return wrap(list.Filter(fn, c.items))
}

// Reject removes the items for which fn(item, index) is true.
func (c *Collection[T]) Reject(fn func(T, int) bool) *Collection[T] {
	return c.Filter(func(item T, i int) bool { return !fn(item, i) })
}

// Reverse returns the items in reverse order.
func (c *Collection[T]) Reverse() *Collection[T] { return wrap(list.Reverse(c.items)) }

// Take keeps the first n items.
func (c *Collection[T]) Take(n int) *Collection[T] { return wrap(list.Take(n, c.items)) }

// Drop skips the first n items.
func (c *Collection[T]) Drop(n int) *Collection[T] { return wrap(list.Drop(n, c.items)) }

// DropLast removes the last n items.
func (c *Collection[T]) DropLast(n int) *Collection[T] { return wrap(list.DropLast(n, c.items)) }

// DropWhile skips the leading items satisfying p.
func (c *Collection[T]) DropWhile(p func(T) bool) *Collection[T] {
	return wrap(list.DropWhile(p, c.items))
}

// TakeWhile keeps the leading items satisfying p.
func (c *Collection[T]) TakeWhile(p func(T) bool) *Collection[T] {
	return wrap(list.TakeWhile(p, c.items))
}

// Append returns a collection with items added at the end.
func (c *Collection[T]) Append(items ...T) *Collection[T] {
	return wrap(list.Concat(c.items, items))
}

// Concat returns a collection holding c's items followed by other's. A nil
// other is treated as empty.
func (c *Collection[T]) Concat(other *Collection[T]) *Collection[T] {
	if other == nil {
		return c.Append()
	}
	return wrap(list.Concat(c.items, other.items))
}

// Partition splits the collection into items satisfying p and the rest.
func (c *Collection[T]) Partition(p func(T) bool) (*Collection[T], *Collection[T]) {
	pass, fail := list.Partition(p, c.items)
	return wrap(pass), wrap(fail)
}

// Chunk splits the items into groups of size. Returns
// [ErrInvalidChunkSize] when size <= 0.
func (c *Collection[T]) Chunk(size int) ([][]T, error) {
	if size <= 0 {
		return nil, ErrInvalidChunkSize
	}
	return list.Chunk(size, c.items), nil
}

// Join renders the items with fmt.Sprint, separated by delimiter.
func (c *Collection[T]) Join(delimiter string) string {
	return list.Join(c.items, delimiter)
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional
// ─────────────────────────────────────────────────────────────────────────────

// When applies fn to c when condition is true, otherwise returns c.
func (c *Collection[T]) When(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	if condition {
		return fn(c)
	}
	return c
}

// WhenNotEmpty applies fn only when the collection has items.
func (c *Collection[T]) WhenNotEmpty(fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(c.IsNotEmpty(), fn)
}
