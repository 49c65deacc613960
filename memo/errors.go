package memo

import "errors"

// ErrInvalidOption is returned when a Config value is out of range, e.g.
// a zero MaxEntries or a non-positive ristretto cost budget.
var ErrInvalidOption = errors.New("memo: invalid option value")
