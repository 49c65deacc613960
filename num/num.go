package num

import "golang.org/x/exp/constraints"

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// ─────────────────────────────────────────────────────────────────────────────
// Curried binary operators
// ─────────────────────────────────────────────────────────────────────────────

// Add returns a function that adds its argument to a.
//
//	Add(1)(2) // → 3
func Add[T Number](a T) func(T) T {
	return func(b T) T { return a + b }
}

// Subtr returns a function computing a - b.
//
//	Subtr(10)(3) // → 7
func Subtr[T Number](a T) func(T) T {
	return func(b T) T { return a - b }
}

// Mult returns a function computing a * b.
func Mult[T Number](a T) func(T) T {
	return func(b T) T { return a * b }
}

// Div returns a function computing a / b. Dividing by zero yields ±Inf or
// NaN.
//
//	Div(2.0)(1) // → 2
func Div[T constraints.Float](a T) func(T) T {
	return func(b T) T { return a / b }
}

// ─────────────────────────────────────────────────────────────────────────────
// Unary helpers
// ─────────────────────────────────────────────────────────────────────────────

// Inc returns x + 1.
func Inc[T Number](x T) T { return x + 1 }

// Dec returns x - 1.
func Dec[T Number](x T) T { return x - 1 }

// Sum returns the sum of ns, or zero when ns is empty.
func Sum[T Number](ns ...T) T {
	var total T
	for _, n := range ns {
		total += n
	}
	return total
}
