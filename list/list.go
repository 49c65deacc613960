package list

import (
	"fmt"
	"strings"

	"github.com/lightningnetwork/lnd/fn"
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

func clone[T any](xs []T) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a function that applies f(item, index) to every element of a
// slice, in order.
//
//	list.Map(func(n, _ int) string { return strconv.Itoa(n) })([]int{1, 2})
//	// → ["1" "2"]
func Map[T, U any](f func(T, int) U) func([]T) []U {
	return func(xs []T) []U {
		out := make([]U, len(xs))
		for i, x := range xs {
			out[i] = f(x, i)
		}
		return out
	}
}

// MapSlice is the uncurried form of [Map].
func MapSlice[T, U any](f func(T, int) U, xs []T) []U {
	return Map(f)(xs)
}

// Filter returns the elements for which f(item, index) is true, preserving
// their relative order.
func Filter[T any](f func(T, int) bool, xs []T) []T {
	out := make([]T, 0, len(xs))
	for i, x := range xs {
		if f(x, i) {
			out = append(out, x)
		}
	}
	return out
}

// FilterWith is the curried form of [Filter].
func FilterWith[T any](f func(T, int) bool) func([]T) []T {
	return func(xs []T) []T { return Filter(f, xs) }
}

// Flatten concatenates one level of nested slices.
//
//	Flatten([][]int{{1, 2}, {3}}) // → [1 2 3]
func Flatten[T any](xss [][]T) []T {
	return lo.Flatten(xss)
}

// Zip pairs xs[i] with ys[i] for every index of xs. When ys is shorter, the
// missing second elements are fn.None.
func Zip[A, B any](xs []A, ys []B) []fn.T2[A, fn.Option[B]] {
	out := make([]fn.T2[A, fn.Option[B]], len(xs))
	for i, x := range xs {
		second := fn.None[B]()
		if i < len(ys) {
			second = fn.Some(ys[i])
		}
		out[i] = fn.NewT2(x, second)
	}
	return out
}

// Range returns [a, a+1, …, b-1]. It is empty when b <= a.
func Range[T constraints.Integer](a, b T) []T {
	if b <= a {
		return []T{}
	}
	n := uint64(b) - uint64(a)
	out := make([]T, 0, n)
	for v := a; v < b; v++ {
		out = append(out, v)
	}
	return out
}

// Repeat returns a slice holding n copies of el. Pointers, maps and slices
// are shared, not cloned.
func Repeat[T any](el T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	out := make([]T, n)
	for i := range out {
		out[i] = el
	}
	return out
}

// Reverse returns a reversed copy of xs. Use strs.Reverse for strings.
func Reverse[T any](xs []T) []T {
	n := len(xs)
	out := make([]T, n)
	for i, x := range xs {
		out[n-1-i] = x
	}
	return out
}

// Append returns a new slice with el added after the elements of xs.
func Append[T any](xs []T, el T) []T {
	out := make([]T, len(xs), len(xs)+1)
	copy(out, xs)
	return append(out, el)
}

// Concat returns a new slice holding xs followed by ys.
func Concat[T any](xs, ys []T) []T {
	out := make([]T, 0, len(xs)+len(ys))
	out = append(out, xs...)
	return append(out, ys...)
}

// Join renders every element with fmt.Sprint and places delimiter between
// consecutive elements.
//
//	Join([]any{"hello,", "world"}, " ") // → "hello, world"
func Join[T any](xs []T, delimiter string) string {
	var sb strings.Builder
	for i, x := range xs {
		if i > 0 {
			sb.WriteString(delimiter)
		}
		fmt.Fprint(&sb, x)
	}
	return sb.String()
}

// Len returns the number of elements in xs.
func Len[T any](xs []T) int { return len(xs) }

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits xs into consecutive groups of size. The last group may be
// shorter. A non-positive size yields no groups.
func Chunk[T any](size int, xs []T) [][]T {
	if size <= 0 || len(xs) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(xs)+size-1)/size)
	for i := 0; i < len(xs); i += size {
		end := min(i+size, len(xs))
		chunks = append(chunks, clone(xs[i:end]))
	}
	return chunks
}

// Partition splits xs into the elements satisfying p and the rest.
func Partition[T any](p func(T) bool, xs []T) ([]T, []T) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for _, x := range xs {
		if p(x) {
			pass = append(pass, x)
		} else {
			fail = append(fail, x)
		}
	}
	return pass, fail
}

// GroupBy groups xs by the key extracted with key, keeping element order
// within each group.
func GroupBy[T any, K comparable](key func(T) K, xs []T) map[K][]T {
	groups := make(map[K][]T)
	for _, x := range xs {
		k := key(x)
		groups[k] = append(groups[k], x)
	}
	return groups
}
