package cache

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Response cache metrics. Every series carries a "cache" label holding the
// Group from ProviderConfig, so the search and episode caches can be told apart.
var (
	// HitsTotal counts lookups answered from the cache.
	HitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "response_cache_hits_total",
			Help: "Total number of upstream responses served from the cache.",
		},
		[]string{"cache"},
	)

	// MissesTotal counts lookups that fell through to the upstream API.
	MissesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "response_cache_misses_total",
			Help: "Total number of cache lookups that missed.",
		},
		[]string{"cache"},
	)

	// WritesTotal counts responses stored in the cache.
	WritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "response_cache_writes_total",
			Help: "Total number of upstream responses written to the cache.",
		},
		[]string{"cache"},
	)

	// EvictionsTotal counts entries dropped to make room or because they expired.
	EvictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "response_cache_evictions_total",
			Help: "Total number of entries evicted from the cache.",
		},
		[]string{"cache"},
	)
)

func init() {
	prometheus.MustRegister(
		HitsTotal,
		MissesTotal,
		WritesTotal,
		EvictionsTotal,
		entries,
	)
}

// entriesCollector reports response_cache_entries for every live cache group
// by calling each group's Len at scrape time. Backends with server-side
// expiry (redis) would drift from an in-process gauge.
type entriesCollector struct {
	desc *prometheus.Desc

	mu     sync.Mutex
	groups map[string]func() int
}

var entries = &entriesCollector{
	desc: prometheus.NewDesc(
		"response_cache_entries",
		"Current number of entries in the cache.",
		[]string{"cache"},
		nil,
	),
	groups: make(map[string]func() int),
}

func (c *entriesCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

func (c *entriesCollector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	names := make([]string, 0, len(c.groups))
	for name := range c.groups {
		names = append(names, name)
	}
	funcs := make(map[string]func() int, len(c.groups))
	for name, fn := range c.groups {
		funcs[name] = fn
	}
	c.mu.Unlock()

	// Len may hit the network, so it is called outside the lock.
	sort.Strings(names)
	for _, name := range names {
		ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(funcs[name]()), name)
	}
}

// track starts reporting lenFunc under group, replacing any previous cache
// registered for the same group.
func (c *entriesCollector) track(group string, lenFunc func() int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.groups[group] = lenFunc
}

// untrack stops reporting group.
func (c *entriesCollector) untrack(group string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.groups, group)
}

// tracked reports whether group is currently reported.
func (c *entriesCollector) tracked(group string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.groups[group]
	return ok
}
