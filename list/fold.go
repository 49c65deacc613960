package list

// Foldl threads an accumulator through xs from left to right:
// reducer(…reducer(reducer(initial, xs[0]), xs[1])…, xs[n-1]).
func Foldl[T, U any](reducer func(U, T) U, initial U, xs []T) U {
	acc := initial
	for _, x := range xs {
		acc = reducer(acc, x)
	}
	return acc
}

// Foldr threads an accumulator through xs from right to left, starting with
// reducer(initial, xs[n-1]).
func Foldr[T, U any](reducer func(U, T) U, initial U, xs []T) U {
	acc := initial
	for i := len(xs) - 1; i >= 0; i-- {
		acc = reducer(acc, xs[i])
	}
	return acc
}

// FoldlConsume behaves like Foldl but removes each element from *xs as it
// is consumed. Consumed slots in the backing array are zeroed and *xs is
// empty when FoldlConsume returns, so the slice must not be reused.
func FoldlConsume[T, U any](reducer func(U, T) U, initial U, xs *[]T) U {
	var zero T
	acc := initial
	for len(*xs) > 0 {
		acc = reducer(acc, (*xs)[0])
		(*xs)[0] = zero
		*xs = (*xs)[1:]
	}
	return acc
}

// FoldrConsume is the right-to-left counterpart of FoldlConsume.
func FoldrConsume[T, U any](reducer func(U, T) U, initial U, xs *[]T) U {
	var zero T
	acc := initial
	for n := len(*xs); n > 0; n = len(*xs) {
		acc = reducer(acc, (*xs)[n-1])
		(*xs)[n-1] = zero
		*xs = (*xs)[:n-1]
	}
	return acc
}

// Reduce is Foldl with the element index passed to fn.
func Reduce[T, U any](f func(U, T, int) U, initial U, xs []T) U {
	acc := initial
	for i, x := range xs {
		acc = f(acc, x, i)
	}
	return acc
}
