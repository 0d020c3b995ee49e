package texture

import (
	"image"
	"os"
	"path/filepath"
	"sync"
)

// Resolver resolves a texture name to a decoded NRGBA image.
type Resolver interface {
	Resolve(texName string) *image.NRGBA
}

// Cache is a concurrency-safe texture cache. Names resolve to an override
// file <assetDir>/<name>.{tga,png,jpg} when one exists, otherwise to the
// built-in procedural generator for that name. Sweep workers share one
// cache so each texture is realized once.
type Cache struct {
	mu       sync.RWMutex
	items    map[string]*image.NRGBA
	assetDir string
}

// generators maps texture names to their procedural fallbacks.
var generators = map[string]func() *image.NRGBA{
	"road": GenerateRoad,
}

// NewCache creates a cache. assetDir may be empty to use procedural
// textures only.
func NewCache(assetDir string) *Cache {
	return &Cache{
		items:    make(map[string]*image.NRGBA),
		assetDir: assetDir,
	}
}

// Resolve returns the texture for name, loading or generating it on first
// use. Returns nil for unknown names with no override file.
func (c *Cache) Resolve(texName string) *image.NRGBA {
	c.mu.RLock()
	if img, ok := c.items[texName]; ok {
		c.mu.RUnlock()
		return img
	}
	c.mu.RUnlock()

	img := c.realize(texName)

	// Write lock with double-check
	c.mu.Lock()
	if cached, ok := c.items[texName]; ok {
		c.mu.Unlock()
		return cached
	}
	c.items[texName] = img
	c.mu.Unlock()

	return img
}

func (c *Cache) realize(texName string) *image.NRGBA {
	if c.assetDir != "" {
		for _, ext := range []string{".tga", ".png", ".jpg", ".jpeg"} {
			path := filepath.Join(c.assetDir, texName+ext)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if img, err := LoadImage(path); err == nil {
				return img
			}
		}
	}
	if gen, ok := generators[texName]; ok {
		return gen()
	}
	return nil
}
