package cache

import (
	"strings"
	"sync"
)

// lookupOutcome records how a single product name resolved, including clean
// misses, so repeated names skip the network entirely.
type lookupOutcome struct {
	Value float64
	Found bool
}

// MemoryCache is a thread-safe in-memory cache of calorie lookup outcomes.
// It lives for one run only; nothing is persisted and entries never expire.
type MemoryCache struct {
	data  map[string]lookupOutcome
	mutex sync.RWMutex
}

// NewMemoryCache creates a new in-memory lookup cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		data: make(map[string]lookupOutcome),
	}
}

// Get retrieves a prior outcome for the product name. ok reports whether the
// name was looked up before; found and value replay that lookup's result.
func (c *MemoryCache) Get(name string) (value float64, found, ok bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	outcome, ok := c.data[normalizeKey(name)]
	if !ok {
		return 0, false, false
	}

	return outcome.Value, outcome.Found, true
}

// Set records the outcome of a lookup for the product name.
func (c *MemoryCache) Set(name string, value float64, found bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[normalizeKey(name)] = lookupOutcome{Value: value, Found: found}
}

// Size returns the current number of entries (for debugging/monitoring)
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// normalizeKey folds case and surrounding whitespace so "Bananas" and
// "bananas " share an entry.
func normalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
