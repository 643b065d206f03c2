package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

const defaultMaxCacheSize = 32

// TextureCache keeps recently used sprite textures, evicting the least
// recently used one when full.
type TextureCache struct {
	textures map[string]*sdl.Texture
	order    []string // least recently used first
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &TextureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

// SpriteKey builds the cache key for a sprite rendered at a given pixel size.
func SpriteKey(dictionary, texture string, w, h int32) string {
	return fmt.Sprintf("%s/%s@%dx%d", dictionary, texture, w, h)
}

func (c *TextureCache) Get(key string) *sdl.Texture {
	if texture, exists := c.textures[key]; exists {
		c.moveToEnd(key)
		return texture
	}
	return nil
}

// GetOrCreate returns the cached texture for key, creating it on a miss.
func (c *TextureCache) GetOrCreate(key string, create func() (*sdl.Texture, error)) (*sdl.Texture, error) {
	if texture := c.Get(key); texture != nil {
		return texture, nil
	}

	texture, err := create()
	if err != nil {
		return nil, err
	}
	c.Set(key, texture)
	return texture, nil
}

func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	if old, exists := c.textures[key]; exists {
		if old != nil && old != texture {
			old.Destroy()
		}
		c.textures[key] = texture
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

// Has reports whether key is cached without touching its recency.
func (c *TextureCache) Has(key string) bool {
	_, exists := c.textures[key]
	return exists
}

func (c *TextureCache) Len() int {
	return len(c.order)
}

func (c *TextureCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		if texture != nil {
			texture.Destroy()
		}
		delete(c.textures, oldest)
	}
}

func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		if texture != nil {
			texture.Destroy()
		}
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}
