package collections

// This file contains package-level generic functions for operations that
// change the element type of a Collection or need extra constraints on it.

import (
	"github.com/lightningnetwork/lnd/fn"

	"github.com/hasbyte1/go-fp-utils/list"
)

// Map applies f to every item and returns a new Collection[U].
//
//	doubled := collections.Map(collections.New(1, 2, 3),
//	    func(n, _ int) string { return strconv.Itoa(n * 2) })
func Map[T, U any](c *Collection[T], f func(T, int) U) *Collection[U] {
	return wrap(list.Map(f)(c.items))
}

// Foldl folds the items from left to right.
func Foldl[T, U any](c *Collection[T], reducer func(U, T) U, initial U) U {
	return list.Foldl(reducer, initial, c.items)
}

// Foldr folds the items from right to left.
func Foldr[T, U any](c *Collection[T], reducer func(U, T) U, initial U) U {
	return list.Foldr(reducer, initial, c.items)
}

// Reduce folds from the left, passing each item's index to f.
//
//	sum := collections.Reduce(collections.New(1, 2, 3, 4),
//	    func(acc int, n, _ int) int { return acc + n }, 0)
func Reduce[T, U any](c *Collection[T], f func(U, T, int) U, initial U) U {
	return list.Reduce(f, initial, c.items)
}

// Zip pairs a's items with b's by index; see [list.Zip].
func Zip[A, B any](a *Collection[A], b *Collection[B]) *Collection[fn.T2[A, fn.Option[B]]] {
	return wrap(list.Zip(a.items, b.items))
}

// Flatten flattens a Collection[[]T] by one level.
func Flatten[T any](c *Collection[[]T]) *Collection[T] {
	return wrap(list.Flatten(c.items))
}

// Uniq removes duplicate items, keeping first occurrences.
func Uniq[T comparable](c *Collection[T]) *Collection[T] {
	return wrap(list.Uniq(c.items))
}

// UniqDeep is Uniq for non-comparable items; see [list.UniqDeep].
func UniqDeep[T any](c *Collection[T]) *Collection[T] {
	return wrap(list.UniqDeep(c.items))
}

// GroupBy groups items by the key extracted with key.
//
//	byLen := collections.GroupBy(words, func(s string) int { return len(s) })
func GroupBy[T any, K comparable](c *Collection[T], key func(T) K) map[K]*Collection[T] {
	groups := make(map[K]*Collection[T])
	for k, items := range list.GroupBy(key, c.items) {
		groups[k] = wrap(items)
	}
	return groups
}
