// Package cache хранит результаты запросов на чтение в локальном KV хранилище
// и поддерживает грубую инвалидацию всех записей сразу.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/iudanet/stockflow/internal/client/storage"
)

const (
	generationKey = "cache/generation"
	entryPrefix   = "cache/query/"
)

// ErrMiss returned by Get when nothing is cached for the query
var ErrMiss = errors.New("cache miss")

// entry is the stored form of one cached query result
type entry struct {
	StoredAt   time.Time       `json:"stored_at"`
	Data       json.RawMessage `json:"data"`
	Generation uint64          `json:"generation"`
}

// Cache is a query result cache backed by storage.KVStore.
// Запись свежая, пока ее поколение совпадает с текущим поколением кеша;
// InvalidateAll увеличивает поколение, делая устаревшими все записи разом.
type Cache struct {
	kv     storage.KVStore
	logger *slog.Logger
	now    func() time.Time
	mu     sync.Mutex
}

// New creates a cache on top of kv
func New(kv storage.KVStore, logger *slog.Logger) *Cache {
	return &Cache{
		kv:     kv,
		logger: logger,
		now:    time.Now,
	}
}

// Get decodes the cached result of query into dst.
// fresh is false when the entry was written before the last InvalidateAll.
// Returns ErrMiss if the query has never been cached.
func (c *Cache) Get(ctx context.Context, query string, dst any) (fresh bool, err error) {
	raw, err := c.kv.Get(ctx, entryPrefix+query)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return false, ErrMiss
		}
		return false, fmt.Errorf("failed to read cache entry %q: %w", query, err)
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return false, fmt.Errorf("failed to decode cache entry %q: %w", query, err)
	}
	if err := json.Unmarshal(e.Data, dst); err != nil {
		return false, fmt.Errorf("failed to decode cached data %q: %w", query, err)
	}

	gen, err := c.generation(ctx)
	if err != nil {
		return false, err
	}

	return e.Generation >= gen, nil
}

// Put stores v as the current result of query
func (c *Cache) Put(ctx context.Context, query string, v any) error {
	gen, err := c.Generation(ctx)
	if err != nil {
		return err
	}
	return c.PutAt(ctx, query, gen, v)
}

// PutAt stores v stamped with gen, the generation read before v was fetched.
// Результат, полученный до InvalidateAll, сохраняется уже устаревшим.
func (c *Cache) PutAt(ctx context.Context, query string, gen uint64, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode cached data %q: %w", query, err)
	}

	raw, err := json.Marshal(entry{StoredAt: c.now(), Data: data, Generation: gen})
	if err != nil {
		return fmt.Errorf("failed to encode cache entry %q: %w", query, err)
	}

	if err := c.kv.Set(ctx, entryPrefix+query, raw); err != nil {
		return fmt.Errorf("failed to write cache entry %q: %w", query, err)
	}
	return nil
}

// Generation returns the current cache generation
func (c *Cache) Generation(ctx context.Context) (uint64, error) {
	return c.generation(ctx)
}

// InvalidateAll marks every cached query result stale
func (c *Cache) InvalidateAll(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	gen, err := c.generation(ctx)
	if err != nil {
		return err
	}
	gen++

	if err := c.kv.Set(ctx, generationKey, []byte(strconv.FormatUint(gen, 10))); err != nil {
		return fmt.Errorf("failed to bump cache generation: %w", err)
	}

	c.logger.DebugContext(ctx, "Query cache invalidated", "generation", gen)
	return nil
}

func (c *Cache) generation(ctx context.Context) (uint64, error) {
	raw, err := c.kv.Get(ctx, generationKey)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read cache generation: %w", err)
	}

	gen, err := strconv.ParseUint(string(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid cache generation %q: %w", raw, err)
	}
	return gen, nil
}
