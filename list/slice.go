package list

func clamp(n, length int) int {
	if n < 0 {
		return 0
	}
	if n > length {
		return length
	}
	return n
}

// Take returns the first n elements of xs. n is clamped to [0, len(xs)].
func Take[T any](n int, xs []T) []T {
	return clone(xs[:clamp(n, len(xs))])
}

// Drop returns xs without its first n elements. n is clamped to
// [0, len(xs)].
func Drop[T any](n int, xs []T) []T {
	return clone(xs[clamp(n, len(xs)):])
}

// DropLast returns xs without its last n elements.
func DropLast[T any](n int, xs []T) []T {
	return clone(xs[:len(xs)-clamp(n, len(xs))])
}

// DropWhile removes the leading elements for which p holds and returns the
// rest, starting at the first element where p is false. If p holds for
// every element the result is empty.
func DropWhile[T any](p func(T) bool, xs []T) []T {
	i := 0
	for i < len(xs) && p(xs[i]) {
		i++
	}
	return clone(xs[i:])
}

// TakeWhile returns the leading elements for which p holds.
func TakeWhile[T any](p func(T) bool, xs []T) []T {
	i := 0
	for i < len(xs) && p(xs[i]) {
		i++
	}
	return clone(xs[:i])
}

// Tail returns every element after the first. It is empty for empty input.
func Tail[T any](xs []T) []T {
	if len(xs) == 0 {
		return []T{}
	}
	return clone(xs[1:])
}
