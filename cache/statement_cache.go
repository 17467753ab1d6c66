package cache

import (
	"strconv"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// DefaultSize is used when a non-positive size is requested.
const DefaultSize = 1024

// Statements memoizes rendered SQL text by key. It is safe for concurrent use.
type Statements struct {
	cache  *lru.Cache[uint64, string]
	group  singleflight.Group
	hits   atomic.Uint64
	misses atomic.Uint64
}

// Stats is a snapshot of cache effectiveness.
type Stats struct {
	Hits   uint64
	Misses uint64
	Len    int
}

func NewStatements(size int) *Statements {
	if size <= 0 {
		size = DefaultSize
	}
	// lru.New only fails on a non-positive size
	c, _ := lru.New[uint64, string](size)
	return &Statements{cache: c}
}

func (s *Statements) Get(key uint64) (string, bool) {
	sql, ok := s.cache.Get(key)
	if ok {
		s.hits.Add(1)
	} else {
		s.misses.Add(1)
	}
	return sql, ok
}

func (s *Statements) Set(key uint64, sql string) {
	s.cache.Add(key, sql)
}

// GetOrRender returns the cached text for key, calling render on a miss.
// Concurrent misses for the same key share one render. Failed renders are not cached.
func (s *Statements) GetOrRender(key uint64, render func() (string, error)) (string, error) {
	if sql, ok := s.Get(key); ok {
		return sql, nil
	}

	v, err, _ := s.group.Do(strconv.FormatUint(key, 16), func() (any, error) {
		if sql, ok := s.cache.Get(key); ok {
			return sql, nil
		}
		sql, err := render()
		if err != nil {
			return "", err
		}
		s.cache.Add(key, sql)
		return sql, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (s *Statements) Len() int {
	return s.cache.Len()
}

func (s *Statements) Stats() Stats {
	return Stats{Hits: s.hits.Load(), Misses: s.misses.Load(), Len: s.cache.Len()}
}

// Purge drops every entry and resets the counters.
func (s *Statements) Purge() {
	s.cache.Purge()
	s.hits.Store(0)
	s.misses.Store(0)
}
