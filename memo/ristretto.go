package memo

import (
	ristretto "github.com/dgraph-io/ristretto/v2"
)

// RistrettoStore is a Store backed by a ristretto cache. Each entry costs
// 1, so maxCost is the entry budget.
type RistrettoStore[V any] struct {
	cache *ristretto.Cache[string, V]
}

// NewRistrettoStore builds a ristretto cache tracking counters keys with
// room for maxCost entries.
func NewRistrettoStore[V any](counters, maxCost int64) (*RistrettoStore[V], error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, V]{
		NumCounters:        counters,
		MaxCost:            maxCost,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &RistrettoStore[V]{cache: cache}, nil
}

// Load implements Store.
func (r *RistrettoStore[V]) Load(key string) (V, bool) {
	return r.cache.Get(key)
}

// Store implements Store. It waits for the write to be applied so that an
// immediately following Load observes it, unless ristretto rejected the
// entry.
func (r *RistrettoStore[V]) Store(key string, value V) {
	if r.cache.Set(key, value, 1) {
		r.cache.Wait()
	}
}

// Close stops the cache's background goroutines.
func (r *RistrettoStore[V]) Close() {
	r.cache.Close()
}
