package memo

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
)

// Memoize wraps the pure function fn with a cache keyed on its argument.
// Concurrent first calls with the same key may each run fn; the results are
// interchangeable because fn is pure.
func Memoize[K comparable, V any](fn func(K) V, opts ...Option) (func(K) V, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	var store Store[K, V] = NewGenerationalStore[K, V](cfg.MaxEntries, cfg.Logger)
	return cachedBy(fn, func(k K) K { return k }, store, cfg.Logger), nil
}

// MemoizeHashed is Memoize for argument types that are not comparable. The
// cache key is [Digest] of the argument.
func MemoizeHashed[A, V any](fn func(A) V, opts ...Option) (func(A) V, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	var store Store[string, V]
	if cfg.UseRistretto {
		rs, err := NewRistrettoStore[V](cfg.RistrettoCounters, cfg.RistrettoMaxCost)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidOption, err)
		}
		store = rs
	} else {
		store = NewGenerationalStore[string, V](cfg.MaxEntries, cfg.Logger)
	}
	return cachedBy(fn, func(a A) string { return Digest(a) }, store, cfg.Logger), nil
}

// Digest returns the BLAKE2b-256 digest of v's dynamic type and %#v
// rendering, as a string. It is the cache key used by MemoizeHashed.
func Digest(v any) string {
	sum := blake2b.Sum256([]byte(fmt.Sprintf("%T:%#v", v, v)))
	return string(sum[:])
}

func cachedBy[A any, K comparable, V any](
	fn func(A) V,
	key func(A) K,
	store Store[K, V],
	logger *zap.Logger,
) func(A) V {
	return func(a A) V {
		k := key(a)
		if v, ok := store.Load(k); ok {
			return v
		}
		logger.Debug("memo: cache miss")
		v := fn(a)
		store.Store(k, v)
		return v
	}
}
