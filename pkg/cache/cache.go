// Package cache provides result caching for layout resolution.
//
// Resolution is deterministic, so a resolved layout can be cached against a
// hash of the template plus the solver options. Three backends are provided:
//
//   - FileCache: on-disk cache for CLI usage
//   - RedisCache: shared cache for the HTTP server
//   - NullCache: no-op backend for tests and --no-cache runs
//
// Keys are generated through the [Keyer] interface so callers can add
// scoping prefixes without touching key construction.
package cache

import (
	"context"
	"time"
)

// Default TTLs per artifact class. Resolution results are cheap to
// recompute, so they expire faster than stored template bodies.
const (
	TTLResolve  = 24 * time.Hour
	TTLTemplate = 7 * 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present; an absent key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ResolveKeyOpts are the solver options that affect a resolution result and
// therefore belong in its cache key.
type ResolveKeyOpts struct {
	MaxIterations int `json:"max_iterations"`
}

// Keyer generates cache keys for the cacheable artifacts.
type Keyer interface {
	// TemplateKey generates a key for a stored template body.
	TemplateKey(name string) string

	// ResolveKey generates a key for a resolution result. templateHash is
	// the content hash of the serialized template.
	ResolveKey(templateHash string, opts ResolveKeyOpts) string
}

// DefaultKeyer is the standard key generation scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// TemplateKey generates a key for a stored template body.
func (k *DefaultKeyer) TemplateKey(name string) string {
	return "template:" + name
}

// ResolveKey generates a key for a resolution result. Options are folded
// into the hash so runs with different pass budgets never collide.
func (k *DefaultKeyer) ResolveKey(templateHash string, opts ResolveKeyOpts) string {
	return hashKey("resolve", templateHash, opts)
}
