package memo

import (
	"fmt"

	"go.uber.org/zap"
)

// Config controls the cache behind a memoized function.
type Config struct {
	// MaxEntries bounds each generation of the default store. Must be
	// greater than zero. Defaults to 1024.
	MaxEntries uint32

	// Logger receives debug-level cache events. Defaults to a no-op logger.
	Logger *zap.Logger

	// UseRistretto switches MemoizeHashed to a ristretto-backed store.
	UseRistretto bool

	// RistrettoCounters is the number of keys whose access frequency
	// ristretto tracks. Roughly ten times the expected entry count.
	RistrettoCounters int64

	// RistrettoMaxCost is the ristretto budget; every entry costs 1.
	RistrettoMaxCost int64
}

// DefaultConfig returns a [Config] populated with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxEntries:        1024,
		Logger:            zap.NewNop(),
		RistrettoCounters: 10_240,
		RistrettoMaxCost:  1024,
	}
}

// Option mutates a Config.
type Option func(*Config)

// WithMaxEntries sets the per-generation bound of the default store.
func WithMaxEntries(n uint32) Option {
	return func(c *Config) { c.MaxEntries = n }
}

// WithLogger sets the logger for cache events. A nil logger keeps the
// default no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithRistretto makes MemoizeHashed use a ristretto cache tracking counters
// keys with room for maxCost entries. The cache is never closed, so its
// background goroutines run for the rest of the process; prefer it for
// long-lived, package-level memoized functions.
func WithRistretto(counters, maxCost int64) Option {
	return func(c *Config) {
		c.UseRistretto = true
		c.RistrettoCounters = counters
		c.RistrettoMaxCost = maxCost
	}
}

func newConfig(opts []Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxEntries == 0 {
		return cfg, fmt.Errorf("%w: MaxEntries must be greater than 0", ErrInvalidOption)
	}
	if cfg.UseRistretto && (cfg.RistrettoCounters <= 0 || cfg.RistrettoMaxCost <= 0) {
		return cfg, fmt.Errorf("%w: ristretto counters and max cost must be positive", ErrInvalidOption)
	}
	return cfg, nil
}
