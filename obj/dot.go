package obj

import (
	"slices"

	"github.com/samber/lo"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers
//
//	o := Object{"user": Object{"name": "Alice", "address": Object{"city": "London"}}}
//
//	Get(o, "user.address.city")  → "London"
//	Has(o, "user.name")          → true
//	Dot(o)                       → {"user.name": "Alice", "user.address.city": "London"}
// ─────────────────────────────────────────────────────────────────────────────

// Dot flattens a nested Object into a single level keyed by dotted paths.
// Empty nested Objects disappear from the result.
func Dot(o Object) Object {
	out := make(Object)
	dotFlatten("", o, out)
	return out
}

func dotFlatten(prefix string, o Object, out Object) {
	for k, v := range o {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(Object); ok {
			dotFlatten(key, nested, out)
		} else {
			out[key] = v
		}
	}
}

// Undot expands a flat dot-notation Object into nested Objects. Keys are
// applied in sorted order, so a deeper key such as "a.b" always replaces a
// non-Object value set by its prefix "a".
func Undot(flat Object) Object {
	keys := lo.Keys(flat)
	slices.Sort(keys)

	out := make(Object)
	for _, key := range keys {
		set(out, SplitPath(key), flat[key])
	}
	return out
}

func set(o Object, path []string, v any) {
	if len(path) == 0 {
		return
	}
	if len(path) == 1 {
		o[path[0]] = v
		return
	}
	nested, ok := o[path[0]].(Object)
	if !ok {
		nested = make(Object)
		o[path[0]] = nested
	}
	set(nested, path[1:], v)
}

// Get returns the value at the dot-notation key, or def[0] (nil when no
// default is supplied) when the key does not exist.
func Get(o Object, key string, def ...any) any {
	if v, ok := lookup(o, SplitPath(key)); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Has reports whether the dot-notation key exists in o.
func Has(o Object, key string) bool {
	_, ok := lookup(o, SplitPath(key))
	return ok
}

func lookup(o Object, path []string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}
	current := o
	for i, seg := range path {
		v, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == len(path)-1 {
			return v, true
		}
		nested, ok := v.(Object)
		if !ok {
			return nil, false
		}
		current = nested
	}
	return nil, false
}
