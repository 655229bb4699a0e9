package cache

// EvictCallback is called when an entry is evicted from the cache.
// Only the memory provider reports evictions; redis and bolt expire entries
// by TTL without notifying the application.
type EvictCallback func(key string, value []byte)

// Logger receives error reports from cache backends with a network or disk
// dependency. Cache operations never fail the caller; a failed Get is a miss.
type Logger interface {
	Error(msg string, err error)
}

// Cache stores raw upstream response bodies keyed by request URL.
type Cache interface {
	// Get retrieves a value by key. Returns the value and true if found, or nil and false if not.
	Get(key string) ([]byte, bool)

	// Set stores a value with the given key. If the key already exists, it is overwritten.
	Set(key string, value []byte)

	// Contains checks whether a key exists in the cache without affecting LRU ordering.
	Contains(key string) bool

	// Len returns the number of live entries currently in the cache.
	Len() int

	// Close releases any resources held by the cache (connections, file locks).
	Close() error
}
