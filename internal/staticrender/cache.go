package staticrender

import "fmt"

// renderCache is a bounded FIFO cache of render results keyed by a
// content fingerprint. Oldest-inserted entries evict first; reads do not
// refresh position.
type renderCache struct {
	capacity int
	entries  map[string]Result
	order    []string
}

// defaultCacheCapacity bounds the render cache.
const defaultCacheCapacity = 50

func newRenderCache(capacity int) *renderCache {
	if capacity <= 0 {
		capacity = defaultCacheCapacity
	}
	return &renderCache{
		capacity: capacity,
		entries:  make(map[string]Result, capacity),
	}
}

// get returns the cached result for the key.
func (c *renderCache) get(key string) (Result, bool) {
	r, ok := c.entries[key]
	return r, ok
}

// put inserts a result, evicting the oldest entry at capacity. Re-put of
// an existing key refreshes the value without changing its age.
func (c *renderCache) put(key string, r Result) {
	if _, exists := c.entries[key]; exists {
		c.entries[key] = r
		return
	}
	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = r
	c.order = append(c.order, key)
}

// len returns the number of cached entries.
func (c *renderCache) len() int { return len(c.entries) }

// fingerprint builds the cache key from text length, base path, theme,
// and a rolling hash of the text.
func fingerprint(text, basePath, theme string) string {
	var h uint64
	for i := 0; i < len(text); i++ {
		h = h*131 + uint64(text[i])
	}
	return fmt.Sprintf("%d:%s:%s:%x", len(text), basePath, theme, h)
}
