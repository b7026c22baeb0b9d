// Package doccache remembers the last text of each document that the engine
// accepted, so navigation keeps working while the live buffer does not parse.
package doccache

import "sync"

// Cache maps document URIs to their last parseable text.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]string
}

func New() *Cache {
	return &Cache{entries: make(map[string]string)}
}

func (c *Cache) Get(uri string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	text, ok := c.entries[uri]
	return text, ok
}

// Set overwrites whatever was stored for uri.
func (c *Cache) Set(uri, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[uri] = text
}

func (c *Cache) Delete(uri string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, uri)
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
