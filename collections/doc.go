// Package collections provides a generic, fluent Collection type built on
// the functions of package list.
//
// # Overview
//
// [Collection][T] wraps a slice of T and exposes the list operations as
// chainable methods:
//
//	result := collections.New(1, 2, 3, 4, 5, 6, 7, 8, 9, 10).
//	    Filter(func(n, _ int) bool { return n%2 == 0 }).
//	    Reverse().
//	    Take(3).
//	    Join(", ") // → "10, 8, 6"
//
// # Immutability
//
// All transformation methods return a *new* Collection, leaving the original
// unchanged. Collection values are therefore safe to share across goroutines
// for reading.
//
// # Type-transforming operations
//
// Go methods cannot introduce type parameters, so operations that change the
// element type, or need a comparable one, are package-level functions:
// [Map], [Foldl], [Foldr], [Reduce], [Zip], [Flatten], [Uniq], [UniqDeep],
// [GroupBy].
//
//	lengths := collections.Map(collections.New("a", "bb"),
//	    func(s string, _ int) int { return len(s) })
package collections
