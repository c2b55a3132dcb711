// Package redis caches catalog listings in Redis.
package redis

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"foodorder/internal/core/application/usecases/queries"

	"github.com/redis/go-redis/v9"
)

// RestaurantsCache is a read-through cache for the restaurant catalog.
// Cache failures degrade to database reads; they are logged, never returned.
type RestaurantsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRestaurantsCache creates a catalog cache with the given TTL.
func NewRestaurantsCache(client *redis.Client, ttl time.Duration) *RestaurantsCache {
	return &RestaurantsCache{client: client, ttl: ttl}
}

func key(city string) string {
	if city == "" {
		return "restaurants:all"
	}
	return "restaurants:city:" + city
}

// Get returns the cached listing for the city filter, if present.
func (c *RestaurantsCache) Get(ctx context.Context, city string) ([]queries.GetRestaurantsQueryResponse, bool) {
	payload, err := c.client.Get(ctx, key(city)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("restaurants cache read failed", "city", city, "error", err)
		}
		return nil, false
	}

	var rows []queries.GetRestaurantsQueryResponse
	if err := json.Unmarshal(payload, &rows); err != nil {
		slog.Warn("restaurants cache entry is corrupt", "city", city, "error", err)
		return nil, false
	}

	return rows, true
}

// Set stores the listing for the city filter.
func (c *RestaurantsCache) Set(ctx context.Context, city string, rows []queries.GetRestaurantsQueryResponse) {
	payload, err := json.Marshal(rows)
	if err != nil {
		slog.Warn("restaurants cache marshal failed", "city", city, "error", err)
		return
	}

	if err := c.client.Set(ctx, key(city), payload, c.ttl).Err(); err != nil {
		slog.Warn("restaurants cache write failed", "city", city, "error", err)
	}
}
