package attr

import (
	"container/list"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

const (
	// DefaultCapacity bounds the Default cache.
	DefaultCapacity = 4096

	shardCount = 16
)

// Default is the process-wide attribute cache.
var Default = NewCache(DefaultCapacity)

// Observer receives cache events, typically to feed metrics.
type Observer interface {
	CacheHit()
	CacheMiss()
	CacheEvict()
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithObserver reports hits, misses and evictions to o.
func WithObserver(o Observer) CacheOption {
	return func(c *Cache) {
		c.observer = o
	}
}

// CacheStats is a snapshot of cache counters.
type CacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Entries   int
}

// Cache memoizes Serialize output keyed by a structural fingerprint of
// the attribute set. Entries are immutable once stored. Concurrent
// misses for the same set may both compute; the results are identical.
//
// The zero capacity means unbounded. Otherwise the capacity is split
// across shards, each evicting its least recently used entry.
type Cache struct {
	shards   [shardCount]cacheShard
	observer Observer
	hash     func([]pair) uint64

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type cacheShard struct {
	mu      sync.Mutex
	limit   int
	entries map[uint64]*list.Element
	order   *list.List // front = most recent
}

type cacheItem struct {
	fp    uint64
	pairs []pair
	value string
}

// NewCache creates a cache holding at most capacity entries.
func NewCache(capacity int, opts ...CacheOption) *Cache {
	c := &Cache{hash: fingerprint}
	limit := 0
	if capacity > 0 {
		limit = (capacity + shardCount - 1) / shardCount
	}
	for i := range c.shards {
		c.shards[i] = cacheShard{
			limit:   limit,
			entries: make(map[uint64]*list.Element),
			order:   list.New(),
		}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Serialize returns Serialize(s), reusing a previous result for an equal
// set. A nil cache serializes without caching.
func (c *Cache) Serialize(s Set) (string, error) {
	if c == nil {
		return Serialize(s)
	}
	if len(s) == 0 {
		return "", nil
	}

	var scratch [8]pair
	pairs, err := normalize(scratch[:0], s)
	if err != nil {
		return "", err
	}
	if len(pairs) == 0 {
		return "", nil
	}

	fp := c.hash(pairs)
	sh := &c.shards[fp%shardCount]
	if value, ok := sh.get(fp, pairs); ok {
		c.hits.Add(1)
		if c.observer != nil {
			c.observer.CacheHit()
		}
		return value, nil
	}

	c.misses.Add(1)
	if c.observer != nil {
		c.observer.CacheMiss()
	}
	value := fragment(pairs)
	stored := make([]pair, len(pairs))
	copy(stored, pairs)
	if sh.put(fp, stored, value) {
		c.evictions.Add(1)
		if c.observer != nil {
			c.observer.CacheEvict()
		}
	}
	return value, nil
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	n := 0
	for i := range c.shards {
		sh := &c.shards[i]
		sh.mu.Lock()
		n += len(sh.entries)
		sh.mu.Unlock()
	}
	return n
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Entries:   c.Len(),
	}
}

// Purge drops every entry. Counters are kept.
func (c *Cache) Purge() {
	for i := range c.shards {
		sh := &c.shards[i]
		sh.mu.Lock()
		sh.entries = make(map[uint64]*list.Element)
		sh.order.Init()
		sh.mu.Unlock()
	}
}

// get returns the cached value when the stored pairs match exactly; a
// fingerprint collision reads as a miss.
func (s *cacheShard) get(fp uint64, pairs []pair) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.entries[fp]
	if !ok {
		return "", false
	}
	item := elem.Value.(*cacheItem)
	if !samePairs(item.pairs, pairs) {
		return "", false
	}
	s.order.MoveToFront(elem)
	return item.value, true
}

// put stores an entry and reports whether another one was evicted.
func (s *cacheShard) put(fp uint64, pairs []pair, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.entries[fp]; ok {
		elem.Value = &cacheItem{fp: fp, pairs: pairs, value: value}
		s.order.MoveToFront(elem)
		return false
	}

	s.entries[fp] = s.order.PushFront(&cacheItem{fp: fp, pairs: pairs, value: value})
	if s.limit == 0 || s.order.Len() <= s.limit {
		return false
	}

	oldest := s.order.Back()
	s.order.Remove(oldest)
	delete(s.entries, oldest.Value.(*cacheItem).fp)
	return true
}

func samePairs(a, b []pair) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// fingerprint hashes the normalized pairs. Separators keep ("ab","c")
// and ("a","bc") apart.
func fingerprint(pairs []pair) uint64 {
	var d xxhash.Digest
	d.Reset()
	var sep [2]byte
	for _, p := range pairs {
		d.WriteString(p.key)
		sep[0], sep[1] = 0, byte(p.kind)
		d.Write(sep[:])
		d.WriteString(p.text)
		sep[0], sep[1] = 0, 0xff
		d.Write(sep[:])
	}
	return d.Sum64()
}
