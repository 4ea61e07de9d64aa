package geocoding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prefeitura-rio/app-adulto-mayor/internal/logging"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/observability"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/redisclient"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/utils"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CachedGeocoder memoizes successful lookups in Redis. Coordinates are
// rounded to five decimals (about one metre) to form the key.
type CachedGeocoder struct {
	next   ReverseGeocoder
	redis  *redisclient.Client
	ttl    time.Duration
	logger *logging.SafeLogger
}

// NewCachedGeocoder wraps next with a Redis cache
func NewCachedGeocoder(next ReverseGeocoder, client *redisclient.Client, ttl time.Duration) *CachedGeocoder {
	return &CachedGeocoder{
		next:   next,
		redis:  client,
		ttl:    ttl,
		logger: logging.Named("geocoding"),
	}
}

func cacheKey(lat, lng float64) string {
	return fmt.Sprintf("geocode:reverse:%.5f:%.5f", lat, lng)
}

// Reverse serves from cache when possible. Cache errors fall through to the
// wrapped geocoder.
func (c *CachedGeocoder) Reverse(ctx context.Context, lat, lng float64) (string, error) {
	key := cacheKey(lat, lng)

	getCtx, span := utils.TraceCacheGet(ctx, key)
	cached, err := c.redis.Get(getCtx, key).Result()
	span.End()
	switch {
	case err == nil:
		observability.CacheHits.WithLabelValues("geocode_hit").Inc()
		c.logger.Debug("geocode cache hit", zap.String("key", key))
		return cached, nil
	case errors.Is(err, redis.Nil):
		observability.CacheHits.WithLabelValues("geocode_miss").Inc()
	default:
		c.logger.Warn("geocode cache read failed", zap.Error(err))
	}

	address, err := c.next.Reverse(ctx, lat, lng)
	if err != nil {
		return "", err
	}

	setCtx, span := utils.TraceCacheSet(ctx, key, c.ttl)
	if err := c.redis.Set(setCtx, key, address, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to cache geocode result", zap.Error(err), zap.String("key", key))
	}
	span.End()

	return address, nil
}
