package obj

import "github.com/samber/lo"

// Object is a string-keyed map whose nested levels are also Objects.
type Object = map[string]any

// Assoc returns a copy of m with k set to v. m is not modified.
func Assoc[K comparable, V any](k K, v V, m map[K]V) map[K]V {
	out := lo.Assign(m)
	out[k] = v
	return out
}

// Dissoc deletes k from m and returns m.
//
// Unlike Assoc this modifies its argument in place; callers that need the
// original must copy it first.
func Dissoc[K comparable, V any](k K, m map[K]V) map[K]V {
	delete(m, k)
	return m
}

// Pluck returns the value stored at k, or the zero value when k is absent.
func Pluck[K comparable, V any](m map[K]V, k K) V {
	return m[k]
}
