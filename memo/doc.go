// Package memo memoizes pure functions behind a bounded cache.
//
// Memoization is only correct for functions that are referentially
// transparent: same input, same output, no observable side effects. Do not
// wrap anything that reads the clock, does I/O or depends on mutable state.
//
//	square, err := memo.Memoize(func(n int) int { return n * n },
//	    memo.WithMaxEntries(512))
//
// # Keys
//
// [Memoize] keys its cache directly on a comparable argument.
// [MemoizeHashed] accepts any argument type (slices, maps, structs holding
// them) and keys the cache on the BLAKE2b-256 digest of the argument's type
// and %#v rendering. Map keys are printed in sorted order, so equal maps share a
// digest; pointers are rendered as addresses and therefore compare by
// identity.
//
// # Stores
//
// The default store keeps two generations of at most MaxEntries each; when
// the current generation fills up the older one is discarded. With
// [WithRistretto], [MemoizeHashed] uses a ristretto cache instead, which
// admits and evicts entries by estimated hit frequency.
//
// # Configuration
//
// Options are applied on top of [DefaultConfig]. Cache events are logged at
// debug level on the configured *zap.Logger (a no-op logger by default).
package memo
