// Package cache provides caching for pipeline stage results.
//
// Two backends ship with the engine: [FileCache] for CLI usage and
// [RedisCache] for server deployments. [NullCache] disables caching
// entirely. Keys are derived from content hashes by a [Keyer] so that
// identical inputs reuse results across runs and processes.
package cache

import (
	"context"
	"time"
)

// Default TTLs per cached stage. Isolated trees are cheap to recompute
// and invalidated by edits often, so they expire faster than rendered
// artifacts.
const (
	TTLTree     = 1 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache is a byte-oriented cache with TTL support.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any underlying resources.
	Close() error
}

// ArtifactKeyOpts captures everything that changes a generated artifact.
// Any field difference produces a distinct cache key.
type ArtifactKeyOpts struct {
	Target               string `json:"target"`
	ComponentName        string `json:"component_name"`
	StyleGuide           string `json:"style_guide"`
	IncludeStyles        bool   `json:"include_styles"`
	IncludeAccessibility bool   `json:"include_accessibility"`
	Responsive           bool   `json:"responsive"`
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// TreeKey generates a key for an isolated, normalized subtree.
	TreeKey(treeHash, selector string) string

	// ArtifactKey generates a key for a generated artifact.
	ArtifactKey(componentHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer generates content-addressed keys using SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// TreeKey generates a key for an isolated subtree.
func (k *DefaultKeyer) TreeKey(treeHash, selector string) string {
	return hashKey("tree", treeHash, selector)
}

// ArtifactKey generates a key for a generated artifact.
func (k *DefaultKeyer) ArtifactKey(componentHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", componentHash, opts)
}
