package storage_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"go-user-directory/internal/storage"
	"go-user-directory/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// flakyBackend fails every call once armed.
type flakyBackend struct {
	inner   storage.Backend
	failing bool
}

func (f *flakyBackend) Get(ctx context.Context, key string) ([]byte, error) {
	if f.failing {
		return nil, errors.New("backend down")
	}
	return f.inner.Get(ctx, key)
}

func (f *flakyBackend) Set(ctx context.Context, key string, value []byte) error {
	if f.failing {
		return errors.New("backend down")
	}
	return f.inner.Set(ctx, key, value)
}

func TestCellLoadOrSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("Absent key seeds and eagerly writes the seed back", func(t *testing.T) {
		backend := storage.NewMemoryBackend()
		cell := storage.NewCell(backend)

		var got []string
		seeded := cell.LoadOrSeed(ctx, "names", &got, []string{"a", "b"})
		assert.True(t, seeded)
		assert.Equal(t, []string{"a", "b"}, got)

		// An independent cell over the same backend must see the seed.
		var again []string
		seeded = storage.NewCell(backend).LoadOrSeed(ctx, "names", &again, []string{"x"})
		assert.False(t, seeded)
		assert.Equal(t, []string{"a", "b"}, again)
	})

	t.Run("Corrupt payload is treated as absent", func(t *testing.T) {
		backend := storage.NewMemoryBackend()
		require.NoError(t, backend.Set(ctx, "names", []byte("{not json")))

		var got []string
		seeded := storage.NewCell(backend).LoadOrSeed(ctx, "names", &got, []string{"fallback"})
		assert.True(t, seeded)
		assert.Equal(t, []string{"fallback"}, got)

		// The seed replaced the corrupt payload.
		raw, err := backend.Get(ctx, "names")
		require.NoError(t, err)
		assert.JSONEq(t, `["fallback"]`, string(raw))
	})
}

func TestCellStoreAndFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("Store round-trips through Load", func(t *testing.T) {
		cell := storage.NewCell(storage.NewMemoryBackend())
		cell.Store(ctx, "slot", map[string]int{"n": 7})

		var got map[string]int
		assert.True(t, cell.Load(ctx, "slot", &got))
		assert.Equal(t, 7, got["n"])
	})

	t.Run("Unreachable backend falls back to last value for the same key", func(t *testing.T) {
		flaky := &flakyBackend{inner: storage.NewMemoryBackend()}
		cell := storage.NewCell(flaky)
		cell.Store(ctx, "slot", []int{1, 2, 3})

		flaky.failing = true
		var got []int
		assert.True(t, cell.Load(ctx, "slot", &got))
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("Key change never serves the previous key's fallback", func(t *testing.T) {
		flaky := &flakyBackend{inner: storage.NewMemoryBackend()}
		cell := storage.NewCell(flaky)
		cell.Store(ctx, "slot-a", []int{1})

		flaky.failing = true
		var got []int
		assert.False(t, cell.Load(ctx, "slot-b", &got))
	})

	t.Run("Write failure keeps the in-memory value authoritative", func(t *testing.T) {
		flaky := &flakyBackend{inner: storage.NewMemoryBackend(), failing: true}
		cell := storage.NewCell(flaky)
		cell.Store(ctx, "slot", "kept")

		var got string
		assert.True(t, cell.Load(ctx, "slot", &got))
		assert.Equal(t, "kept", got)
	})
}

func TestFileBackend(t *testing.T) {
	ctx := context.Background()
	backend, err := storage.NewFileBackend(t.TempDir())
	require.NoError(t, err)

	_, err = backend.Get(ctx, "users")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, backend.Set(ctx, "users", []byte(`[{"id":1}]`)))
	raw, err := backend.Get(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(raw))
}

func TestRedisBackend(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	backend := storage.NewRedisBackend(client)

	_, err := backend.Get(ctx, "users")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, backend.Set(ctx, "users", []byte(`[1,2,3]`)))
	raw, err := backend.Get(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, `[1,2,3]`, string(raw))
}
