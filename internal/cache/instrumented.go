package cache

// instrumentedCache records hit, miss and write counters for one cache group
// around an inner provider. Evictions are counted by the OnEvict hook that New
// installs, and the entry gauge is read lazily by the entries collector.
type instrumentedCache struct {
	inner Cache
	group string
}

func newInstrumentedCache(inner Cache, group string) *instrumentedCache {
	entries.track(group, inner.Len)
	return &instrumentedCache{inner: inner, group: group}
}

func (c *instrumentedCache) Get(key string) ([]byte, bool) {
	val, ok := c.inner.Get(key)
	c.recordLookup(ok)
	return val, ok
}

func (c *instrumentedCache) recordLookup(hit bool) {
	if hit {
		HitsTotal.WithLabelValues(c.group).Inc()
		return
	}
	MissesTotal.WithLabelValues(c.group).Inc()
}

func (c *instrumentedCache) Set(key string, value []byte) {
	c.inner.Set(key, value)
	WritesTotal.WithLabelValues(c.group).Inc()
}

func (c *instrumentedCache) Contains(key string) bool {
	return c.inner.Contains(key)
}

func (c *instrumentedCache) Len() int {
	return c.inner.Len()
}

// Close stops reporting the group's entry count and closes the inner cache.
func (c *instrumentedCache) Close() error {
	entries.untrack(c.group)
	return c.inner.Close()
}
