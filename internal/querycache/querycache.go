// Package querycache memoizes API query results for the web front.
//
// Entries are keyed by procedure name plus canonical arguments. Errors are never
// stored, concurrent fetches of one key share a single call, and nothing is
// invalidated automatically: after a mutation the caller refetches or removes
// what it changed. With WithGCTime, entries nobody read for that long are dropped.
package querycache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/sbilibin2017/tweet-board/internal/logger"
	"github.com/sbilibin2017/tweet-board/internal/metrics"
)

// ErrClosed is returned by a cache after Close.
var ErrClosed = errors.New("query cache closed")

// Key identifies one query result.
type Key struct {
	Procedure string
	Args      string
}

// NewKey builds a key from a procedure name and its arguments. Arguments are
// encoded as JSON, so maps with the same contents produce the same key.
func NewKey(procedure string, args any) Key {
	if args == nil {
		return Key{Procedure: procedure}
	}
	data, err := json.Marshal(args)
	if err != nil {
		return Key{Procedure: procedure, Args: fmt.Sprint(args)}
	}
	return Key{Procedure: procedure, Args: string(data)}
}

func (k Key) String() string {
	if k.Args == "" {
		return k.Procedure
	}
	return k.Procedure + " " + k.Args
}

// FetchFunc loads the value of a key.
type FetchFunc func(ctx context.Context) (any, error)

type entry struct {
	data      any
	updatedAt time.Time
	usedAt    time.Time
	gen       uint64
	removed   bool // tombstone left by Remove so an older in-flight fetch cannot restore the key
}

// Cache is safe for concurrent use.
type Cache struct {
	mu        sync.RWMutex
	entries   map[Key]entry
	seq       uint64
	closed    bool
	group     singleflight.Group
	staleTime time.Duration
	gcTime    time.Duration
	lastGC    time.Time
	now       func() time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithStaleTime makes entries older than d count as missing for Ensure.
// The default of 0 means entries never go stale.
func WithStaleTime(d time.Duration) Option {
	return func(c *Cache) {
		c.staleTime = d
	}
}

// WithGCTime drops entries that were not read or written for d. Removal happens
// lazily, at most once per d, during other cache calls. The default of 0 keeps
// entries until Close.
func WithGCTime(d time.Duration) Option {
	return func(c *Cache) {
		c.gcTime = d
	}
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[Key]entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.lastGC = c.now()
	return c
}

// collect drops idle entries and tombstones. Callers hold c.mu.
func (c *Cache) collect(now time.Time) {
	if c.gcTime <= 0 || now.Sub(c.lastGC) < c.gcTime {
		return
	}
	c.lastGC = now
	for key, e := range c.entries {
		if now.Sub(e.usedAt) >= c.gcTime {
			delete(c.entries, key)
		}
	}
}

// Get returns the cached value of key.
func (c *Cache) Get(key Key) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return nil, false
	}
	e, ok := c.entries[key]
	if !ok || e.removed {
		return nil, false
	}
	return e.data, true
}

// Set stores data under key, replacing any previous value.
func (c *Cache) Set(key Key, data any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	now := c.now()
	c.collect(now)
	c.seq++
	c.entries[key] = entry{data: data, updatedAt: now, usedAt: now, gen: c.seq}
}

// Remove drops key. A fetch of key that started before Remove does not
// bring the old value back.
func (c *Cache) Remove(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	now := c.now()
	c.collect(now)
	if _, ok := c.entries[key]; !ok {
		return
	}
	c.seq++
	c.entries[key] = entry{usedAt: now, gen: c.seq, removed: true}
}

// Ensure returns the cached value of key, fetching it when absent or stale.
func (c *Cache) Ensure(ctx context.Context, key Key, fetch FetchFunc) (any, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrClosed
	}
	now := c.now()
	c.collect(now)
	e, ok := c.entries[key]
	fresh := ok && !e.removed && (c.staleTime <= 0 || now.Sub(e.updatedAt) < c.staleTime)
	if fresh {
		e.usedAt = now
		c.entries[key] = e
	}
	c.mu.Unlock()

	if fresh {
		metrics.QueryCacheRequestsTotal.WithLabelValues(key.Procedure, "hit").Inc()
		return e.data, nil
	}

	metrics.QueryCacheRequestsTotal.WithLabelValues(key.Procedure, "miss").Inc()
	return c.fetch(ctx, "ensure", key, fetch)
}

// Refetch always fetches key and replaces the cached value on success.
// A failed refetch leaves the previous value in place.
func (c *Cache) Refetch(ctx context.Context, key Key, fetch FetchFunc) (any, error) {
	metrics.QueryCacheRequestsTotal.WithLabelValues(key.Procedure, "refetch").Inc()
	return c.fetch(ctx, "refetch", key, fetch)
}

func (c *Cache) fetch(ctx context.Context, kind string, key Key, fetch FetchFunc) (any, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrClosed
	}
	// Refetches never join an ensure that started before them.
	c.seq++
	gen := c.seq
	c.mu.Unlock()

	// Callers joining this flight share its result, so the first caller's
	// cancellation must not fail them. Deadlines come from the fetch itself.
	fetchCtx := context.WithoutCancel(ctx)

	v, err, _ := c.group.Do(kind+":"+key.String(), func() (any, error) {
		data, err := fetch(fetchCtx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed {
			return nil, ErrClosed
		}
		// a newer write wins over a slower, older fetch
		now := c.now()
		c.collect(now)
		if cur, ok := c.entries[key]; !ok || cur.gen < gen {
			c.entries[key] = entry{data: data, updatedAt: now, usedAt: now, gen: gen}
		}
		return data, nil
	})
	if err != nil {
		metrics.QueryCacheRequestsTotal.WithLabelValues(key.Procedure, "error").Inc()
		logger.Log.Debugw("query failed", "key", key.String(), "error", err)
		return nil, err
	}
	return v, nil
}

// Close drops every entry. Later calls to Ensure and Refetch return ErrClosed.
func (c *Cache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.entries = make(map[Key]entry)
}

// Ensure is the typed form of Cache.Ensure.
func Ensure[T any](ctx context.Context, c *Cache, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	v, err := c.Ensure(ctx, key, func(ctx context.Context) (any, error) { return fetch(ctx) })
	return typed[T](v, err)
}

// Refetch is the typed form of Cache.Refetch.
func Refetch[T any](ctx context.Context, c *Cache, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	v, err := c.Refetch(ctx, key, func(ctx context.Context) (any, error) { return fetch(ctx) })
	return typed[T](v, err)
}

func typed[T any](v any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("query cache: unexpected value type %T", v)
	}
	return t, nil
}
