package grpc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type FetchFunc[T any] func(ctx context.Context) (T, error)

const (
	defaultFetchTimeout = 15 * time.Second
	defaultSetTimeout   = 5 * time.Second
	defaultDelTimeout   = 2 * time.Second
)

type cacheOptions struct {
	refreshAhead bool
}

type CacheOption func(*cacheOptions)

// WithRefreshAhead re-fetches the value in the background on every cache hit.
// Use it for keys whose source data can change while the entry is live.
func WithRefreshAhead() CacheOption {
	return func(o *cacheOptions) {
		o.refreshAhead = true
	}
}

// addTTLJitter adds up to ±15s random jitter to TTL to avoid mass expiration.
func addTTLJitter(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return ttl
	}
	jitter := time.Duration(rand.Intn(30)-15) * time.Second
	if ttl+jitter <= 0 {
		return ttl
	}
	return ttl + jitter
}

func storeInCache[T any](c Cacher, key string, value T, ttl time.Duration, logger *zap.Logger) {
	setCtx, cancel := context.WithTimeout(context.Background(), defaultSetTimeout)
	defer cancel()

	ttlWithJitter := addTTLJitter(ttl)
	if err := c.Set(setCtx, key, value, ttlWithJitter); err != nil {
		logger.Warn("failed to set cache", zap.String("key", key), zap.Error(err))
		return
	}
	logger.Debug("cache populated", zap.String("key", key), zap.Duration("ttl", ttlWithJitter))
}

func triggerBackgroundRefresh[T any](
	c Cacher,
	sf *singleflight.Group,
	key string,
	ttl time.Duration,
	logger *zap.Logger,
	fn FetchFunc[T],
) {
	go func() {
		time.Sleep(time.Duration(rand.Intn(1000)) * time.Millisecond)

		_, _, _ = sf.Do(key+":refresh", func() (any, error) {
			ctx, cancel := context.WithTimeout(context.Background(), defaultFetchTimeout)
			defer cancel()

			value, err := fn(ctx)
			if err != nil {
				logger.Warn("background refresh failed", zap.String("key", key), zap.Error(err))
				return nil, err
			}
			storeInCache(c, key, value, ttl, logger)
			return value, nil
		})
	}()
}

// FindAndCache implements read-through caching with singleflight and optional refresh-ahead.
// A nil Cacher degrades to a singleflight-deduplicated fetch.
func FindAndCache[T any](
	ctx context.Context,
	c Cacher,
	sf *singleflight.Group,
	key string,
	ttl time.Duration,
	logger *zap.Logger,
	fn FetchFunc[T],
	opts ...CacheOption,
) (T, error) {
	var zero T
	if logger == nil {
		logger = zap.NewNop()
	}

	var o cacheOptions
	for _, opt := range opts {
		opt(&o)
	}

	if c != nil {
		var cached T
		err := c.Get(ctx, key, &cached)
		switch {
		case err == nil:
			logger.Debug("cache hit", zap.String("key", key))
			if o.refreshAhead {
				triggerBackgroundRefresh(c, sf, key, ttl, logger, fn)
			}
			return cached, nil

		case errors.Is(err, redis.Nil):
			logger.Debug("cache miss", zap.String("key", key))

		default:
			logger.Warn("cache get error (treating as miss)", zap.String("key", key), zap.Error(err))
		}
	}

	v, err, shared := sf.Do(key, func() (any, error) {
		value, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		if c != nil {
			go storeInCache(c, key, value, ttl, logger)
		}
		return value, nil
	})
	if err != nil {
		return zero, err
	}

	value, ok := v.(T)
	if !ok {
		logger.Error("singleflight type mismatch", zap.String("key", key))
		return zero, fmt.Errorf("type mismatch for key %q", key)
	}

	if shared {
		logger.Debug("singleflight shared result", zap.String("key", key))
	}

	return value, nil
}

// invalidate drops keys from the cache. Failures are logged and otherwise ignored;
// the entries age out with their TTL.
func invalidate(ctx context.Context, c Cacher, logger *zap.Logger, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}

	delCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultDelTimeout)
	defer cancel()

	if err := c.Delete(delCtx, keys...); err != nil {
		logger.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
