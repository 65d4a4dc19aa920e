package storage

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go-user-directory/pkg/logger"
	"go-user-directory/pkg/metrics"
)

// Cell wraps one named slot of a Backend with best-effort persistence.
// The in-memory value held by the caller is always the authority: a backend
// that is unavailable or returns a corrupt payload is logged and degraded
// around, never surfaced as a failure.
type Cell struct {
	backend Backend

	mu      sync.Mutex
	key     string // key of the cached payload
	lastRaw []byte // last serialized value seen for key
}

func NewCell(backend Backend) *Cell {
	return &Cell{backend: backend}
}

// Load fetches and decodes the value at key into out, reporting whether a
// stored value was used. A corrupt payload is logged and treated as absent.
// When the backend is unreachable the cell falls back to the last value it
// saw for the same key; a key change always forces a fresh backend read.
func (c *Cell) Load(ctx context.Context, key string, out any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, err := c.backend.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false
	}
	if err != nil {
		logger.Log.Warn("storage read failed, using in-memory fallback", "key", key, "error", err)
		metrics.StorageFailures.Inc()
		if c.key != key || c.lastRaw == nil {
			return false
		}
		raw = c.lastRaw
	}

	if err := json.Unmarshal(raw, out); err != nil {
		logger.Log.Warn("stored value is not decodable, treating as absent", "key", key, "error", err)
		return false
	}
	c.key = key
	c.lastRaw = raw
	return true
}

// LoadOrSeed behaves like Load but, when no usable value exists, decodes the
// seed into out and eagerly writes the seed back so a subsequent independent
// read observes consistent state. It reports whether the seed was used.
func (c *Cell) LoadOrSeed(ctx context.Context, key string, out any, seed any) (seeded bool) {
	if c.Load(ctx, key, out) {
		return false
	}
	raw, err := json.Marshal(seed)
	if err != nil {
		logger.Log.Error("seed value is not serializable", "key", key, "error", err)
		return true
	}
	if err := json.Unmarshal(raw, out); err != nil {
		logger.Log.Error("seed value round-trip failed", "key", key, "error", err)
		return true
	}
	c.mu.Lock()
	c.persist(ctx, key, raw)
	c.mu.Unlock()
	return true
}

// Store serializes v and persists it under key. Persistence failures are
// logged and swallowed; the caller's in-memory state stays authoritative and
// the change simply does not survive the session.
func (c *Cell) Store(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("value is not serializable, skipping persist", "key", key, "error", err)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.persist(ctx, key, raw)
}

// persist updates the cache and attempts the backend write. Callers must
// hold c.mu.
func (c *Cell) persist(ctx context.Context, key string, raw []byte) {
	c.key = key
	c.lastRaw = raw
	if err := c.backend.Set(ctx, key, raw); err != nil {
		logger.Log.Warn("storage write failed, change will not survive this session", "key", key, "error", err)
		metrics.StorageFailures.Inc()
	}
}
