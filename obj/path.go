package obj

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// SplitPath turns a dot-notation key such as "a.b.c" into its segments.
// The empty string yields an empty path.
func SplitPath(key string) []string {
	if key == "" {
		return []string{}
	}
	return strings.Split(key, ".")
}

func pathError(err error, path []string, depth int) error {
	return fmt.Errorf("%w: %s", err, strings.Join(path[:depth+1], "."))
}

// AssocPath returns a function that sets the value at path inside an
// Object. The returned function builds a new Object: every level on the
// path is copied and every other branch is shared with the input.
//
// All levels before the last key must already exist and be Objects;
// otherwise ErrMissingKey or ErrNotObject is returned. The final key is
// created when absent.
func AssocPath(path []string) func(v any, o Object) (Object, error) {
	return func(v any, o Object) (Object, error) {
		if len(path) == 0 {
			return nil, ErrEmptyPath
		}
		return assocAt(path, 0, v, o)
	}
}

func assocAt(path []string, depth int, v any, o Object) (Object, error) {
	head := path[depth]
	out := lo.Assign(o)
	if depth == len(path)-1 {
		out[head] = v
		return out, nil
	}
	raw, ok := o[head]
	if !ok {
		return nil, pathError(ErrMissingKey, path, depth)
	}
	child, ok := raw.(Object)
	if !ok {
		return nil, pathError(ErrNotObject, path, depth)
	}
	sub, err := assocAt(path, depth+1, v, child)
	if err != nil {
		return nil, err
	}
	out[head] = sub
	return out, nil
}

// DissocPath returns a copy of o without the key at the end of path.
//
// Levels along the path are copied; o itself is never modified. When any
// key on the path is absent the result equals o. An intermediate value that
// is not an Object yields ErrNotObject.
func DissocPath(path []string, o Object) (Object, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	return dissocAt(path, 0, o)
}

func dissocAt(path []string, depth int, o Object) (Object, error) {
	head := path[depth]
	out := lo.Assign(o)
	if depth == len(path)-1 {
		delete(out, head)
		return out, nil
	}
	raw, ok := o[head]
	if !ok {
		return out, nil
	}
	child, ok := raw.(Object)
	if !ok {
		return nil, pathError(ErrNotObject, path, depth)
	}
	sub, err := dissocAt(path, depth+1, child)
	if err != nil {
		return nil, err
	}
	out[head] = sub
	return out, nil
}
