package cache

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var boltBucket = []byte("responses")

// expiryHeaderLen is the size of the big-endian unix-nano expiry stored in
// front of every value.
const expiryHeaderLen = 8

func init() {
	Register("bolt", newBoltCache)
}

// boltCache persists response bodies in a single bbolt bucket so a restarted
// server keeps its warm cache. Expired entries are dropped lazily on read and
// when Set pushes the bucket over Size.
type boltCache struct {
	db      *bolt.DB
	ttl     time.Duration
	maxSize int
	onEvict EvictCallback
	logger  Logger
	now     func() time.Time
}

func newBoltCache(cfg ProviderConfig) (Cache, error) {
	if cfg.BoltPath == "" {
		return nil, errors.New("bolt cache: path is required")
	}

	db, err := bolt.Open(cfg.BoltPath, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("bolt cache: open %s: %w", cfg.BoltPath, err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bolt cache: create bucket: %w", err)
	}

	return &boltCache{
		db:      db,
		ttl:     cfg.TTL,
		maxSize: cfg.Size,
		onEvict: cfg.OnEvict,
		logger:  cfg.Logger,
		now:     time.Now,
	}, nil
}

func (b *boltCache) logError(msg string, err error) {
	if b.logger != nil {
		b.logger.Error(msg, err)
	}
}

func (b *boltCache) expired(raw []byte) bool {
	if len(raw) < expiryHeaderLen {
		return true
	}
	expiresAt := int64(binary.BigEndian.Uint64(raw[:expiryHeaderLen]))
	return b.now().UnixNano() >= expiresAt
}

func (b *boltCache) Get(key string) ([]byte, bool) {
	var value []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(boltBucket).Get([]byte(key))
		if raw == nil || b.expired(raw) {
			return nil
		}
		// raw is only valid inside the transaction
		value = append([]byte(nil), raw[expiryHeaderLen:]...)
		return nil
	})
	if err != nil {
		b.logError("bolt cache Get failed", err)
		return nil, false
	}
	return value, value != nil
}

func (b *boltCache) Set(key string, value []byte) {
	raw := make([]byte, expiryHeaderLen+len(value))
	binary.BigEndian.PutUint64(raw[:expiryHeaderLen], uint64(b.now().Add(b.ttl).UnixNano()))
	copy(raw[expiryHeaderLen:], value)

	var evicted []string
	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(boltBucket)
		if err := bucket.Put([]byte(key), raw); err != nil {
			return err
		}
		if countKeys(bucket) <= b.maxSize {
			return nil
		}
		evicted = b.evict(bucket, key)
		return nil
	})
	if err != nil {
		b.logError("bolt cache Set failed", err)
		return
	}

	if b.onEvict != nil {
		for _, k := range evicted {
			b.onEvict(k, nil)
		}
	}
}

// evict removes expired entries, then the soonest-to-expire ones, until the
// bucket fits maxSize again. keep is never removed.
func (b *boltCache) evict(bucket *bolt.Bucket, keep string) []string {
	type entry struct {
		key       string
		expiresAt int64
	}

	var live []entry
	var removed []string
	c := bucket.Cursor()
	for k, v := c.First(); k != nil; k, v = c.Next() {
		if string(k) == keep {
			continue
		}
		if b.expired(v) {
			removed = append(removed, string(k))
			continue
		}
		live = append(live, entry{key: string(k), expiresAt: int64(binary.BigEndian.Uint64(v[:expiryHeaderLen]))})
	}

	// All entries share one TTL, so the earliest expiry is the oldest write.
	excess := len(live) + 1 - b.maxSize
	for excess > 0 && len(live) > 0 {
		oldest := 0
		for i := range live {
			if live[i].expiresAt < live[oldest].expiresAt {
				oldest = i
			}
		}
		removed = append(removed, live[oldest].key)
		live = append(live[:oldest], live[oldest+1:]...)
		excess--
	}

	for _, k := range removed {
		if err := bucket.Delete([]byte(k)); err != nil {
			b.logError("bolt cache evict failed", err)
		}
	}
	return removed
}

func countKeys(bucket *bolt.Bucket) int {
	n := 0
	c := bucket.Cursor()
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		n++
	}
	return n
}

func (b *boltCache) Contains(key string) bool {
	found := false
	_ = b.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(boltBucket).Get([]byte(key))
		found = raw != nil && !b.expired(raw)
		return nil
	})
	return found
}

func (b *boltCache) Len() int {
	n := 0
	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).ForEach(func(_, v []byte) error {
			if !b.expired(v) {
				n++
			}
			return nil
		})
	})
	if err != nil {
		b.logError("bolt cache Len failed", err)
		return 0
	}
	return n
}

func (b *boltCache) Close() error {
	return b.db.Close()
}
