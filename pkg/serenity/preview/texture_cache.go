package preview

import (
	"github.com/serenity-wellness/serenity/pkg/serenity/catalog"
	"github.com/serenity-wellness/serenity/pkg/serenity/internal"
)

const defaultMaxCacheSize = 24

// destroyer is the part of *sdl.Texture the cache needs.
type destroyer interface {
	Destroy() error
}

// TextureCache is an LRU of loaded assets keyed by handle. Handles are
// theme specific, but the cache is also flushed whenever the Appearance
// generation moves so no texture outlives the theme it was drawn for.
type TextureCache[T destroyer] struct {
	textures   map[catalog.AssetHandle]T
	order      []catalog.AssetHandle // tracks insertion order for LRU eviction
	maxSize    int
	generation uint64
}

func NewTextureCache[T destroyer]() *TextureCache[T] {
	return NewTextureCacheWithSize[T](defaultMaxCacheSize)
}

func NewTextureCacheWithSize[T destroyer](maxSize int) *TextureCache[T] {
	return &TextureCache[T]{
		textures: make(map[catalog.AssetHandle]T),
		order:    make([]catalog.AssetHandle, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Sync flushes the cache if generation differs from the one it was filled
// under. It reports whether a flush happened.
func (c *TextureCache[T]) Sync(generation uint64) bool {
	if generation == c.generation {
		return false
	}
	internal.GetInternalLogger().Debug("Theme generation changed; flushing textures",
		"from", c.generation, "to", generation, "textures", len(c.textures))
	c.Destroy()
	c.generation = generation
	return true
}

func (c *TextureCache[T]) Get(key catalog.AssetHandle) (T, bool) {
	if texture, exists := c.textures[key]; exists {
		// Move to end (most recently used)
		c.moveToEnd(key)
		return texture, true
	}
	var zero T
	return zero, false
}

func (c *TextureCache[T]) Set(key catalog.AssetHandle, texture T) {
	// If key already exists, just update and move to end
	if _, exists := c.textures[key]; exists {
		c.textures[key] = texture
		c.moveToEnd(key)
		return
	}

	// Evict oldest if at capacity
	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

func (c *TextureCache[T]) Len() int {
	return len(c.order)
}

func (c *TextureCache[T]) moveToEnd(key catalog.AssetHandle) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache[T]) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		_ = texture.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *TextureCache[T]) Destroy() {
	for _, texture := range c.textures {
		_ = texture.Destroy()
	}
	c.textures = make(map[catalog.AssetHandle]T)
	c.order = c.order[:0]
}
