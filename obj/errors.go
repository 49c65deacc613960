package obj

import "errors"

// Sentinel errors returned by path operations.
//
// Returned errors wrap these values together with the dotted path at which
// the failure happened; compare with [errors.Is]:
//
//	_, err := obj.AssocPath([]string{"a", "b"})(1, o)
//	if errors.Is(err, obj.ErrMissingKey) {
//	    // "a" does not exist in o
//	}
var (
	// ErrEmptyPath is returned when a path operation receives no keys.
	ErrEmptyPath = errors.New("obj: path must not be empty")

	// ErrMissingKey is returned by AssocPath when an intermediate level of
	// the path does not exist.
	ErrMissingKey = errors.New("obj: intermediate key does not exist")

	// ErrNotObject is returned when an intermediate level of the path holds
	// a value that is not an Object.
	ErrNotObject = errors.New("obj: intermediate value is not an object")
)
