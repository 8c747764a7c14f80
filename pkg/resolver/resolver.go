// Package resolver builds asset URLs at render time from the persisted
// manifest, falling back to the original path for unknown keys.
package resolver

import (
	"github.com/hashbust/hashbust/pkg/manifest"
)

// DefaultPrefix is the URL prefix used when none is configured
const DefaultPrefix = "assets"

// Resolver resolves asset keys to URLs using a load-once manifest cache.
// A key missing from the manifest (or an absent manifest altogether)
// resolves to the original key, so unhashed deployments keep working.
type Resolver struct {
	cache  *manifest.Cache
	prefix string
}

// New creates a Resolver with the default "assets" URL prefix
func New(cache *manifest.Cache) *Resolver {
	return NewWithPrefix(cache, DefaultPrefix)
}

// NewWithPrefix creates a Resolver that prefixes URLs with the given segment
func NewWithPrefix(cache *manifest.Cache, prefix string) *Resolver {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Resolver{cache: cache, prefix: prefix}
}

// Asset returns the URL for the given asset key: "/{prefix}/{hashed}"
// when the manifest has an entry for key, "/{prefix}/{key}" otherwise.
func (r *Resolver) Asset(key string) string {
	return r.AssetWithPrefix(r.prefix, key)
}

// AssetWithPrefix is Asset with the configured prefix replaced for this
// one lookup. An empty prefix falls back to the resolver's own.
func (r *Resolver) AssetWithPrefix(prefix, key string) string {
	if prefix == "" {
		prefix = r.prefix
	}
	m := r.cache.GetOrLoad()
	if hashed, ok := m[key]; ok {
		return "/" + prefix + "/" + hashed
	}
	return "/" + prefix + "/" + key
}
