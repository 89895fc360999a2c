package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// Useful when one cache backend serves several projects or users and
// their namespaces must not collide.
//
// Example usage:
//
//	// Project-specific keys
//	projKeyer := NewScopedKeyer(NewDefaultKeyer(), "project:abc123:")
//
//	// Shared keys
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// TreeKey generates a prefixed key for isolated subtree caching.
func (k *ScopedKeyer) TreeKey(treeHash, selector string) string {
	return k.prefix + k.inner.TreeKey(treeHash, selector)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(componentHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(componentHash, opts)
}
