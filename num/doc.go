// Package num provides curried arithmetic helpers for use with the
// higher-order functions in this module.
//
// Each binary operator binds its left operand first and returns a function
// waiting for the right operand, which makes them easy to hand to
// [list.Map] or [combinator.Compose]:
//
//	addTen := num.Add(10)
//	addTen(5)                     // → 15
//	num.Subtr(10)(3)              // → 7  (10 - 3)
//	num.Div(1.0)(0)               // → +Inf
//
// # Division
//
// [Div] is restricted to floating-point types so that division by zero
// follows IEEE 754 (±Inf or NaN) instead of panicking as Go's integer
// division does.
package num
