package dataset

import (
	"path/filepath"
	"sync"
)

// Cache is a read-through cache of parsed tables keyed by cleaned
// source path. Tables are immutable after load, so a cached entry is
// shared by every caller; entries never need invalidation because the
// source files are static for the process lifetime.
type Cache struct {
	mu     sync.Mutex
	tables map[string]*Table
}

func NewCache() *Cache {
	return &Cache{tables: map[string]*Table{}}
}

// Load returns the cached table for path, loading it on first use.
func (c *Cache) Load(path string) (*Table, error) {
	key := filepath.Clean(path)
	c.mu.Lock()
	t, ok := c.tables[key]
	c.mu.Unlock()
	if ok {
		return t, nil
	}
	t, err := LoadCSV(path)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.tables[key] = t
	c.mu.Unlock()
	return t, nil
}

// Len reports the number of cached tables.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tables)
}
