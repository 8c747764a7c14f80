package manifest

import (
	"sync"

	"github.com/hashbust/hashbust/pkg/logging"
	"github.com/hashbust/hashbust/pkg/types"
)

// Cache holds a manifest loaded once per process for render-time lookups.
//
// The manifest is read on the first GetOrLoad call and never reloaded:
// hashed filenames only change when content changes, and a running
// process serves one deployment's worth of assets. A manifest that
// cannot be loaded degrades to an empty mapping, so lookups fall back
// to the original asset path instead of failing the caller.
type Cache struct {
	fs   types.FS
	path string

	once   sync.Once
	loaded Manifest
}

// NewCache creates a Cache that will read the manifest at path on first use
func NewCache(filesystem types.FS, path string) *Cache {
	return &Cache{fs: filesystem, path: path}
}

// GetOrLoad returns the cached manifest, loading it on the first call.
// An absent or unreadable manifest yields an empty mapping.
func (c *Cache) GetOrLoad() Manifest {
	c.once.Do(func() {
		m, err := Load(c.fs, c.path)
		if err != nil {
			logger := logging.GetLogger("manifest.cache")
			logger.Warn().Err(err).Str("path", c.path).
				Msg("manifest unavailable, asset lookups will fall back to original paths")
			m = Manifest{}
		}
		c.loaded = m
	})
	return c.loaded
}
