package cache

import (
	"encoding/hex"
	"sync"
	"sync/atomic"

	"github.com/zeebo/xxh3"
	"golang.org/x/sync/singleflight"

	"github.com/ib-77/procompose/pkg/proc"
)

// RecordKey is the record field holding a Cache.
const RecordKey = "cache"

type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// Fetcher is implemented by caches able to fill a missing entry themselves.
type Fetcher interface {
	Fetch(key string, fill func() (any, error)) (any, error)
}

// Key digests namespace and parts into a fixed-size cache key.
func Key(namespace string, parts ...string) string {
	h := xxh3.New()
	_, _ = h.WriteString(namespace)
	for _, p := range parts {
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(p)
	}
	sum := h.Sum128().Bytes()
	return namespace + ":" + hex.EncodeToString(sum[:])
}

// FromRecord returns the cache carried by r, if any.
func FromRecord(r proc.Record) (Cache, bool) {
	v, ok := r.Value(RecordKey)
	if !ok || proc.IsNil(v) {
		return nil, false
	}
	c, ok := v.(Cache)
	return c, ok
}

// Fetch returns the cached value for key, calling fill on a miss. A nil cache
// always calls fill. Errors from fill are not cached.
func Fetch(c Cache, key string, fill func() (any, error)) (any, error) {
	if c == nil {
		return fill()
	}
	if f, ok := c.(Fetcher); ok {
		return f.Fetch(key, fill)
	}
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := fill()
	if err != nil {
		return nil, err
	}
	c.Set(key, v)
	return v, nil
}

// Memory is an unbounded in-process Cache safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	items  map[string]any
	group  singleflight.Group
	hits   atomic.Int64
	misses atomic.Int64
}

func NewMemory() *Memory {
	return &Memory{items: map[string]any{}}
}

func (m *Memory) Get(key string) (any, bool) {
	m.mu.RLock()
	v, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		m.hits.Add(1)
	} else {
		m.misses.Add(1)
	}
	return v, ok
}

func (m *Memory) Set(key string, value any) {
	m.mu.Lock()
	m.items[key] = value
	m.mu.Unlock()
}

// Fetch fills a missing key once even when called concurrently.
func (m *Memory) Fetch(key string, fill func() (any, error)) (any, error) {
	if v, ok := m.Get(key); ok {
		return v, nil
	}
	v, err, _ := m.group.Do(key, func() (any, error) {
		m.mu.RLock()
		v, ok := m.items[key]
		m.mu.RUnlock()
		if ok {
			return v, nil
		}
		v, err := fill()
		if err != nil {
			return nil, err
		}
		m.Set(key, v)
		return v, nil
	})
	return v, err
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

type Stats struct {
	Hits   int64
	Misses int64
}

func (m *Memory) Stats() Stats {
	return Stats{Hits: m.hits.Load(), Misses: m.misses.Load()}
}
