package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/healthtracker/internal/telemetry/metrics"
	"github.com/2beens/healthtracker/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

const keyPrefix = "health-stats||"

// StatsCache keeps derived stats per user in a redis hash, one field per
// kind of stats. A write to any of the user's records drops the whole hash.
type StatsCache struct {
	redisClient    *redis.Client
	ttl            time.Duration
	metricsManager *metrics.Manager
}

func NewStatsCache(redisClient *redis.Client, ttl time.Duration, metricsManager *metrics.Manager) *StatsCache {
	return &StatsCache{
		redisClient:    redisClient,
		ttl:            ttl,
		metricsManager: metricsManager,
	}
}

func Key(userID uuid.UUID) string {
	return keyPrefix + userID.String()
}

// Get unmarshals the cached stats of the given kind into dest. It reports
// whether the stats were found.
func (c *StatsCache) Get(ctx context.Context, userID uuid.UUID, kind string, dest any) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.stats.get")
	span.SetAttributes(attribute.String("kind", kind))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	val, err := c.redisClient.HGet(ctx, Key(userID), kind).Result()
	if errors.Is(err, redis.Nil) {
		c.count("miss")
		return false, nil
	}
	if err != nil {
		c.count("error")
		return false, fmt.Errorf("hget stats: %w", err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		c.count("error")
		return false, fmt.Errorf("unmarshal cached stats: %w", err)
	}
	c.count("hit")
	return true, nil
}

func (c *StatsCache) Set(ctx context.Context, userID uuid.UUID, kind string, value any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.stats.set")
	span.SetAttributes(attribute.String("kind", kind))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	key := Key(userID)
	if err := c.redisClient.HSet(ctx, key, kind, string(b)).Err(); err != nil {
		return fmt.Errorf("hset stats: %w", err)
	}
	if err := c.redisClient.Expire(ctx, key, c.ttl).Err(); err != nil {
		return fmt.Errorf("expire stats: %w", err)
	}
	return nil
}

func (c *StatsCache) Invalidate(ctx context.Context, userID uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.stats.invalidate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := c.redisClient.Del(ctx, Key(userID)).Err(); err != nil {
		return fmt.Errorf("del stats: %w", err)
	}
	return nil
}

func (c *StatsCache) count(result string) {
	if c.metricsManager != nil {
		c.metricsManager.CounterStatsCache.WithLabelValues(result).Inc()
	}
}
