package regexlib

import "sync"

type cachedTester struct {
	tester Tester

	mux   sync.RWMutex
	cache map[string]bool
}

// WithCache memoizes the results of t. The cache is unbounded; use it for
// inputs with many repeated subjects.
func WithCache(t Tester) Tester {
	if c, ok := t.(*cachedTester); ok {
		return c
	}
	return &cachedTester{tester: t, cache: make(map[string]bool)}
}

func (c *cachedTester) Test(s string) bool {
	if result, ok := c.fetch(s); ok {
		return result
	}
	result := c.tester.Test(s)
	c.put(s, result)
	return result
}

func (c *cachedTester) fetch(key string) (result bool, ok bool) {
	c.mux.RLock()
	result, ok = c.cache[key]
	c.mux.RUnlock()
	return
}

func (c *cachedTester) put(key string, result bool) {
	c.mux.Lock()
	c.cache[key] = result
	c.mux.Unlock()
}
