package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpriteKey(t *testing.T) {
	assert.Equal(t, "commonmenu/arrowleft@30x30", SpriteKey("commonmenu", "arrowleft", 30, 30))
}

func TestTextureCacheEviction(t *testing.T) {
	cache := NewTextureCacheWithSize(2)

	cache.Set("a", nil)
	cache.Set("b", nil)
	cache.Get("a")
	cache.Set("c", nil)

	assert.Equal(t, 2, cache.Len())
	assert.True(t, cache.Has("a"), "recently used entry survives")
	assert.False(t, cache.Has("b"), "least recently used entry is evicted")
	assert.True(t, cache.Has("c"))

	cache.Destroy()
	assert.Equal(t, 0, cache.Len())
}
