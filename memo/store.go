package memo

import (
	"sync"

	"go.uber.org/zap"
)

// Store is the cache behind a memoized function. Implementations must be
// safe for concurrent use.
type Store[K comparable, V any] interface {
	Load(key K) (V, bool)
	Store(key K, value V)
}

// GenerationalStore keeps two maps of at most maxEntries entries. Writes go
// to the head generation; when it is full the older generation is dropped
// and a fresh head takes its place. Reads consult both.
type GenerationalStore[K comparable, V any] struct {
	mu         sync.RWMutex
	gens       [2]map[K]V
	head       int
	maxEntries int
	logger     *zap.Logger
}

// NewGenerationalStore returns an empty store. maxEntries must be positive.
func NewGenerationalStore[K comparable, V any](maxEntries uint32, logger *zap.Logger) *GenerationalStore[K, V] {
	if maxEntries == 0 {
		panic("memo: maxEntries must be greater than 0")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GenerationalStore[K, V]{
		gens:       [2]map[K]V{make(map[K]V), make(map[K]V)},
		maxEntries: int(maxEntries),
		logger:     logger,
	}
}

// Load looks key up in the head generation, then in the older one.
func (s *GenerationalStore[K, V]) Load(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.gens[s.head][key]; ok {
		return v, true
	}
	v, ok := s.gens[1-s.head][key]
	return v, ok
}

// Store writes to the head generation, rotating first if it is full.
func (s *GenerationalStore[K, V]) Store(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.gens[s.head][key]; !ok && len(s.gens[s.head]) >= s.maxEntries {
		dropped := len(s.gens[1-s.head])
		s.head = 1 - s.head
		s.gens[s.head] = make(map[K]V, s.maxEntries)
		s.logger.Debug("memo: rotated generations", zap.Int("dropped", dropped))
	}
	s.gens[s.head][key] = value
}

// Len returns the number of live entries across both generations. Keys
// present in both are counted twice.
func (s *GenerationalStore[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.gens[0]) + len(s.gens[1])
}
