package render

import (
	"github.com/cespare/xxhash/v2"
	"github.com/milk9111/tileworld/ecs/component"
	"github.com/milk9111/tileworld/logger"
	"github.com/sirupsen/logrus"
)

// Loader turns a sprite path into image data. The cache never inspects the
// returned value.
type Loader func(path string) (any, error)

type entry struct {
	path   string
	data   any
	sprite component.Sprite
}

// SpriteCache hands out stable handles for sprite paths, loading each path at
// most once. Failed loads are cached too, as invalid handles.
type SpriteCache struct {
	load    Loader
	entries map[uint64]*entry
}

// NewSpriteCache creates a cache. A nil loader yields invalid handles for
// every path, which keeps geometry working without any image backend.
func NewSpriteCache(load Loader) *SpriteCache {
	return &SpriteCache{load: load, entries: make(map[uint64]*entry)}
}

// Key hashes a sprite path.
func Key(path string) uint64 {
	return xxhash.Sum64String(path)
}

// slot finds the key holding path, probing past hash collisions. found is
// false when path has no entry yet and key is where it should go.
func (c *SpriteCache) slot(path string) (key uint64, found bool) {
	key = Key(path)
	if key == 0 {
		key = 1
	}
	for {
		e, ok := c.entries[key]
		if !ok {
			return key, false
		}
		if e.path == path {
			return key, true
		}
		key++
		if key == 0 {
			key = 1
		}
	}
}

// Get returns the handle for path, loading it on first use.
func (c *SpriteCache) Get(path string) component.Sprite {
	if c == nil || path == "" {
		return component.Sprite{Path: path}
	}
	key, found := c.slot(path)
	if found {
		return c.entries[key].sprite
	}

	e := &entry{path: path, sprite: component.Sprite{ID: key, Path: path}}
	if c.load != nil {
		data, err := c.load(path)
		if err != nil {
			logger.Log.WithFields(logrus.Fields{
				"component": "sprite_cache",
				"path":      path,
			}).WithError(err).Warn("sprite load failed")
		} else if data != nil {
			e.data = data
			e.sprite.Loaded = true
		}
	}
	c.entries[key] = e
	return e.sprite
}

// Image returns the loaded data behind a handle.
func (c *SpriteCache) Image(s component.Sprite) (any, bool) {
	if c == nil || !s.Valid() {
		return nil, false
	}
	e, ok := c.entries[s.ID]
	if !ok || e.path != s.Path || e.data == nil {
		return nil, false
	}
	return e.data, true
}

// Len returns the number of cached paths, failed ones included.
func (c *SpriteCache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Purge forgets every entry. Only world teardown does this.
func (c *SpriteCache) Purge() {
	if c == nil {
		return
	}
	c.entries = make(map[uint64]*entry)
}
