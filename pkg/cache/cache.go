// Package cache provides byte caching for expensive sizing work.
//
// Text measurement against real font faces and full sizing responses are the
// two cacheable products of this toolkit. Backends share one interface:
//
//   - [MemoryCache]: process-local, used by default in serve mode
//   - [FileCache]: persistent, used by the CLI across invocations
//   - [RedisCache]: shared, for multi-instance serve deployments
//   - [NullCache]: disabled caching
//
// Keys are built by a [Keyer] so every consumer derives them the same way;
// [NewScopedKeyer] adds a prefix for namespace isolation.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with optional TTL.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// SizeKeyOpts are the inputs that distinguish one sizing result from
// another beyond the spec digest itself.
type SizeKeyOpts struct {
	ChartWidth float64
	Constants  string // digest of non-default layout constants, empty for defaults
}

// Keyer derives cache keys for the toolkit's cacheable products.
type Keyer interface {
	// MeasureKey identifies one text measurement.
	MeasureKey(family string, size float64, label string) string

	// SizeKey identifies one full sizing computation by spec digest.
	SizeKey(specHash string, opts SizeKeyOpts) string
}

// DefaultKeyer derives hash-based keys with stable prefixes.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// MeasureKey generates a key for a single measurement.
func (k *DefaultKeyer) MeasureKey(family string, size float64, label string) string {
	return hashKey("measure", family, size, label)
}

// SizeKey generates a key for a sizing response.
func (k *DefaultKeyer) SizeKey(specHash string, opts SizeKeyOpts) string {
	return hashKey("size", specHash, opts.ChartWidth, opts.Constants)
}
