// Package pred provides boolean primitives and predicate combinators.
//
//	pred.Not(0)                          // → true
//	pred.Includes(3, []int{1, 2, 3})     // → true
//	isSmallEven := pred.And(isEven, pred.Pred[int](func(n int) bool { return n < 10 }))
//
// Predicates are plain func(T) bool values, so they can be passed directly
// to [list.Filter], [list.Find], [list.Some] and friends.
package pred
