// Package list provides generic operations on Go slices: mapping,
// filtering, folding, slicing and searching.
//
// # Immutability
//
// Every function returns a new slice and leaves its input untouched. The
// two exceptions are [FoldlConsume] and [FoldrConsume], which drain the
// slice they are handed.
//
// # Calling conventions
//
// The function argument always comes first and the slice last. [Map] is
// curried so it slots into compositions; [Filter] takes both arguments at
// once. Each has a thin adapter for the other shape:
//
//	double := list.Map(func(n, _ int) int { return n * 2 })
//	double([]int{1, 2, 3})                       // → [2 4 6]
//	list.MapSlice(fn, xs)                        // uncurried
//
//	list.Filter(func(n, _ int) bool { return n%2 == 0 }, xs)
//	evens := list.FilterWith(func(n, _ int) bool { return n%2 == 0 })
//
// # Absent values
//
// Lookups that may find nothing return [fn.Option] from
// github.com/lightningnetwork/lnd/fn ([Find], [Head], [Last], the second
// element of [Zip] pairs). [FindIndex] keeps the conventional -1.
package list
