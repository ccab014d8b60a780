// Package redis decorates the repository port with Redis-backed caching and
// holds the idempotency store used by the HTTP adapter.
package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Laincy/reconnected-se/internal/domain"
	"github.com/Laincy/reconnected-se/internal/infrastructure/metrics"
	"github.com/Laincy/reconnected-se/internal/service"
)

// ResolveCache wraps a StockRepository and caches external-id to account-id
// resolution. A link is written once at registration and never changed or
// removed, so a cached hit can only go stale by the account ceasing to exist,
// which the system never does. Misses are not cached: an identity can gain a
// link at any moment through registration.
//
// Cache failures degrade to the inner repository; the cache is never allowed
// to fail a read that storage could serve.
type ResolveCache struct {
	inner   service.StockRepository
	client  *redis.Client
	ttl     time.Duration
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

// NewResolveCache creates a ResolveCache over inner. Metrics may be nil.
func NewResolveCache(inner service.StockRepository, client *redis.Client, ttl time.Duration, logger zerolog.Logger, m *metrics.Metrics) *ResolveCache {
	return &ResolveCache{
		inner:   inner,
		client:  client,
		ttl:     ttl,
		logger:  logger,
		metrics: m,
	}
}

const (
	discordKeyPrefix   = "resolve:discord:"
	minecraftKeyPrefix = "resolve:mc:"
)

// ResolveDiscord returns the account linked to a Discord snowflake, serving
// from cache when possible.
func (c *ResolveCache) ResolveDiscord(ctx context.Context, id int64) (uuid.UUID, bool, error) {
	key := discordKeyPrefix + strconv.FormatInt(id, 10)

	if accountID, ok := c.lookup(ctx, key); ok {
		c.countHit("discord")
		return accountID, true, nil
	}
	c.countMiss("discord")

	accountID, found, err := c.inner.ResolveDiscord(ctx, id)
	if err != nil || !found {
		c.countStorageError("resolve_discord", err)
		return accountID, found, err
	}

	c.store(ctx, key, accountID)

	return accountID, true, nil
}

// ResolveMinecraft returns the account linked to a Minecraft UUID, serving
// from cache when possible.
func (c *ResolveCache) ResolveMinecraft(ctx context.Context, id uuid.UUID) (uuid.UUID, bool, error) {
	key := minecraftKeyPrefix + id.String()

	if accountID, ok := c.lookup(ctx, key); ok {
		c.countHit("minecraft")
		return accountID, true, nil
	}
	c.countMiss("minecraft")

	accountID, found, err := c.inner.ResolveMinecraft(ctx, id)
	if err != nil || !found {
		c.countStorageError("resolve_minecraft", err)
		return accountID, found, err
	}

	c.store(ctx, key, accountID)

	return accountID, true, nil
}

// RegisterAccount delegates to the inner repository and primes the cache
// with the fresh link on success.
func (c *ResolveCache) RegisterAccount(ctx context.Context, discordID *int64, minecraftID *uuid.UUID) (uuid.UUID, error) {
	id, err := c.inner.RegisterAccount(ctx, discordID, minecraftID)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyLinked) {
			if c.metrics != nil {
				c.metrics.RegisterConflicts.Inc()
			}
		} else {
			c.countStorageError("register", err)
		}
		return uuid.Nil, err
	}
	if c.metrics != nil {
		c.metrics.AccountsRegistered.Inc()
	}

	switch {
	case discordID != nil:
		c.store(ctx, discordKeyPrefix+strconv.FormatInt(*discordID, 10), id)
	case minecraftID != nil:
		c.store(ctx, minecraftKeyPrefix+minecraftID.String(), id)
	}

	return id, nil
}

// UserExists delegates to the inner repository.
func (c *ResolveCache) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := c.inner.UserExists(ctx, id)
	c.countStorageError("user_exists", err)
	return ok, err
}

// StockExists delegates to the inner repository.
func (c *ResolveCache) StockExists(ctx context.Context, ticker domain.Ticker) (bool, error) {
	ok, err := c.inner.StockExists(ctx, ticker)
	c.countStorageError("stock_exists", err)
	return ok, err
}

// AccountInfo delegates to the inner repository.
func (c *ResolveCache) AccountInfo(ctx context.Context, id uuid.UUID) (*domain.UserInfo, error) {
	info, err := c.inner.AccountInfo(ctx, id)
	c.countStorageError("account_info", err)
	return info, err
}

// GetHoldings delegates to the inner repository.
func (c *ResolveCache) GetHoldings(ctx context.Context, id uuid.UUID, page domain.Pager) (*domain.HoldingsPage, error) {
	holdings, err := c.inner.GetHoldings(ctx, id, page)
	c.countStorageError("get_holdings", err)
	return holdings, err
}

// ListStocks delegates to the inner repository.
func (c *ResolveCache) ListStocks(ctx context.Context, page domain.Pager) (*domain.StockPage, error) {
	stocks, err := c.inner.ListStocks(ctx, page)
	c.countStorageError("list_stocks", err)
	return stocks, err
}

func (c *ResolveCache) countHit(identity string) {
	if c.metrics != nil {
		c.metrics.ResolveCacheHits.WithLabelValues(identity).Inc()
	}
}

func (c *ResolveCache) countMiss(identity string) {
	if c.metrics != nil {
		c.metrics.ResolveCacheMisses.WithLabelValues(identity).Inc()
	}
}

func (c *ResolveCache) countStorageError(op string, err error) {
	if c.metrics != nil && err != nil {
		c.metrics.StorageErrors.WithLabelValues(op).Inc()
	}
}

func (c *ResolveCache) countError() {
	if c.metrics != nil {
		c.metrics.ResolveCacheErrors.Inc()
	}
}

func (c *ResolveCache) lookup(ctx context.Context, key string) (uuid.UUID, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return uuid.Nil, false
	}
	if err != nil {
		c.countError()
		c.logger.Debug().Err(err).Str("key", key).Msg("resolve cache read failed")
		return uuid.Nil, false
	}

	accountID, err := uuid.Parse(val)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("resolve cache held a malformed account id")
		return uuid.Nil, false
	}

	return accountID, true
}

func (c *ResolveCache) store(ctx context.Context, key string, accountID uuid.UUID) {
	if err := c.client.Set(ctx, key, accountID.String(), c.ttl).Err(); err != nil {
		c.countError()
		c.logger.Debug().Err(err).Str("key", key).Msg("resolve cache write failed")
	}
}
