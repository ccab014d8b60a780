package redis

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Laincy/reconnected-se/internal/domain"
	"github.com/Laincy/reconnected-se/internal/infrastructure/metrics"
	"github.com/Laincy/reconnected-se/internal/service"
	"github.com/Laincy/reconnected-se/internal/service/mocks"
)

func TestResolveCache_ResolveDiscord_CachesHits(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()
	accountID := uuid.New()

	var innerCalls atomic.Int64
	inner := mocks.NewMemStockRepository()
	inner.ResolveDiscordFunc = func(ctx context.Context, id int64) (uuid.UUID, bool, error) {
		innerCalls.Add(1)
		return accountID, true, nil
	}

	cache := NewResolveCache(inner, client, time.Hour, zerolog.Nop(), nil)

	got, found, err := cache.ResolveDiscord(ctx, 42)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, accountID, got)
	require.EqualValues(t, 1, innerCalls.Load())

	// Second resolve is served from Redis.
	got, found, err = cache.ResolveDiscord(ctx, 42)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, accountID, got)
	require.EqualValues(t, 1, innerCalls.Load())
}

func TestResolveCache_DoesNotCacheMisses(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	var innerCalls atomic.Int64
	inner := mocks.NewMemStockRepository()
	inner.ResolveDiscordFunc = func(ctx context.Context, id int64) (uuid.UUID, bool, error) {
		innerCalls.Add(1)
		return uuid.Nil, false, nil
	}

	cache := NewResolveCache(inner, client, time.Hour, zerolog.Nop(), nil)

	_, found, err := cache.ResolveDiscord(ctx, 42)
	require.NoError(t, err)
	require.False(t, found)

	// An unlinked identity may become linked at any time, so the miss must
	// reach the repository again.
	_, found, err = cache.ResolveDiscord(ctx, 42)
	require.NoError(t, err)
	require.False(t, found)
	require.EqualValues(t, 2, innerCalls.Load())
}

func TestResolveCache_RegisterPrimesCache(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()
	inner := mocks.NewMemStockRepository()
	cache := NewResolveCache(inner, client, time.Hour, zerolog.Nop(), nil)

	discordID := int64(42)
	accountID, err := cache.RegisterAccount(ctx, &discordID, nil)
	require.NoError(t, err)

	// Break the inner lookup: a primed cache should never reach it.
	inner.ResolveDiscordFunc = func(ctx context.Context, id int64) (uuid.UUID, bool, error) {
		t.Error("resolve should have been served from cache")
		return uuid.Nil, false, nil
	}

	got, found, err := cache.ResolveDiscord(ctx, discordID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, accountID, got)
}

func TestResolveCache_ResolveMinecraft(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()
	inner := mocks.NewMemStockRepository()
	cache := NewResolveCache(inner, client, time.Hour, zerolog.Nop(), nil)

	mcID := uuid.New()
	accountID, err := cache.RegisterAccount(ctx, nil, &mcID)
	require.NoError(t, err)

	got, found, err := cache.ResolveMinecraft(ctx, mcID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, accountID, got)
}

func TestResolveCache_FallsBackWhenRedisDown(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	accountID := uuid.New()

	inner := mocks.NewMemStockRepository()
	inner.ResolveDiscordFunc = func(ctx context.Context, id int64) (uuid.UUID, bool, error) {
		return accountID, true, nil
	}

	cache := NewResolveCache(inner, client, time.Hour, zerolog.Nop(), nil)

	mr.Close()

	got, found, err := cache.ResolveDiscord(ctx, 42)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, accountID, got)
}

func TestResolveCache_CountsHitsAndMisses(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()
	accountID := uuid.New()

	inner := mocks.NewMemStockRepository()
	inner.ResolveDiscordFunc = func(ctx context.Context, id int64) (uuid.UUID, bool, error) {
		return accountID, true, nil
	}

	m := metrics.New(prometheus.NewRegistry())
	cache := NewResolveCache(inner, client, time.Hour, zerolog.Nop(), m)

	_, _, err := cache.ResolveDiscord(ctx, 42)
	require.NoError(t, err)
	_, _, err = cache.ResolveDiscord(ctx, 42)
	require.NoError(t, err)

	require.EqualValues(t, 1, testutil.ToFloat64(m.ResolveCacheMisses.WithLabelValues("discord")))
	require.EqualValues(t, 1, testutil.ToFloat64(m.ResolveCacheHits.WithLabelValues("discord")))
}

func TestResolveCache_CountsStorageErrors(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()
	boom := errors.New("connection reset")

	inner := mocks.NewMemStockRepository()
	inner.ResolveDiscordFunc = func(ctx context.Context, id int64) (uuid.UUID, bool, error) {
		return uuid.Nil, false, boom
	}
	inner.ListStocksFunc = func(ctx context.Context, page domain.Pager) (*domain.StockPage, error) {
		return nil, boom
	}

	m := metrics.New(prometheus.NewRegistry())
	cache := NewResolveCache(inner, client, time.Hour, zerolog.Nop(), m)

	_, _, err := cache.ResolveDiscord(ctx, 42)
	require.ErrorIs(t, err, boom)
	_, err = cache.ListStocks(ctx, domain.NewPager(0, 10))
	require.ErrorIs(t, err, boom)

	require.EqualValues(t, 1, testutil.ToFloat64(m.StorageErrors.WithLabelValues("resolve_discord")))
	require.EqualValues(t, 1, testutil.ToFloat64(m.StorageErrors.WithLabelValues("list_stocks")))

	// Conflicts are their own counter, not storage errors.
	discordID := int64(7)
	inner.RegisterAccountFunc = func(ctx context.Context, d *int64, mc *uuid.UUID) (uuid.UUID, error) {
		return uuid.Nil, service.ErrAlreadyLinked
	}
	_, err = cache.RegisterAccount(ctx, &discordID, nil)
	require.ErrorIs(t, err, service.ErrAlreadyLinked)
	require.EqualValues(t, 1, testutil.ToFloat64(m.RegisterConflicts))
	require.EqualValues(t, 0, testutil.ToFloat64(m.StorageErrors.WithLabelValues("register")))
}
