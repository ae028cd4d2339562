package nocodb

import (
	"sync"
	"time"
)

// tableCache is a small TTL read cache over raw list payloads. Any write to
// a table drops every cached query for it, so readers never see their own
// writes stale.
type tableCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry   // query key -> payload
	byTable map[string][]string     // table -> query keys
}

type cacheEntry struct {
	data    []byte
	expires time.Time
}

func newTableCache(ttl time.Duration) *tableCache {
	return &tableCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		byTable: make(map[string][]string),
	}
}

func (c *tableCache) get(table, key string) ([]byte, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || time.Now().After(e.expires) {
		return nil, false
	}
	return e.data, true
}

func (c *tableCache) put(table, key string, data []byte) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{data: data, expires: time.Now().Add(c.ttl)}
	c.byTable[table] = append(c.byTable[table], key)
}

func (c *tableCache) invalidate(table string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range c.byTable[table] {
		delete(c.entries, key)
	}
	delete(c.byTable, table)
}
