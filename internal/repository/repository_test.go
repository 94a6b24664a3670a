package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKV_RoundTrip(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	_, err := kv.Get(ctx, "cart")
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, kv.Set(ctx, "cart", "[]"))
	require.NoError(t, kv.Set(ctx, "cart", `[{"id":"1"}]`))

	v, err := kv.Get(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, v)
}

func TestMemoryKV_CanceledContext(t *testing.T) {
	kv := NewMemoryKV()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := kv.Set(ctx, "themeMode", "dark")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRedisKV_RoundTrip(t *testing.T) {
	srv := miniredis.RunT(t)
	kv := NewRedisKV(srv.Addr(), "")
	defer kv.Close()

	ctx := context.Background()
	require.NoError(t, kv.Ping(ctx))

	_, err := kv.Get(ctx, "themeMode")
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, kv.Set(ctx, "themeMode", "dark"))

	v, err := kv.Get(ctx, "themeMode")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)

	raw, err := srv.Get(redisKeyPrefix + "themeMode")
	require.NoError(t, err)
	assert.Equal(t, "dark", raw)
}

func TestRedisKV_Unavailable(t *testing.T) {
	srv := miniredis.RunT(t)
	kv := NewRedisKV(srv.Addr(), "")
	defer kv.Close()
	srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := kv.Get(ctx, "cart")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrKeyNotFound))
}

func TestWithRetry(t *testing.T) {
	delays := []time.Duration{time.Millisecond, time.Millisecond}

	t.Run("retries serialization failures", func(t *testing.T) {
		calls := 0
		err := withRetry(context.Background(), delays, func() error {
			calls++
			if calls < 3 {
				return &pgconn.PgError{Code: pgerrcode.SerializationFailure}
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after delays exhausted", func(t *testing.T) {
		calls := 0
		err := withRetry(context.Background(), delays, func() error {
			calls++
			return errors.New("dial tcp: connection refused")
		})
		require.Error(t, err)
		assert.Equal(t, len(delays)+1, calls)
	})

	t.Run("does not retry other errors", func(t *testing.T) {
		calls := 0
		err := withRetry(context.Background(), delays, func() error {
			calls++
			return &pgconn.PgError{Code: pgerrcode.UniqueViolation}
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops on context cancel", func(t *testing.T) {
		calls := 0
		err := withRetry(context.Background(), delays, func() error {
			calls++
			return context.Canceled
		})
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}
