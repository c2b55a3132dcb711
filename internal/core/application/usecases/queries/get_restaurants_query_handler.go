package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RestaurantsCache caches catalog listings keyed by the city filter.
// The catalog changes rarely and is read on every menu visit, so listings are
// served from the cache when present. Implementations decide the TTL.
type RestaurantsCache interface {
	Get(ctx context.Context, city string) ([]GetRestaurantsQueryResponse, bool)
	Set(ctx context.Context, city string, rows []GetRestaurantsQueryResponse)
}

// GetRestaurantsQueryHandler retrieves the restaurant catalog.
// Reads through the cache when one is configured.
type GetRestaurantsQueryHandler struct {
	db    *gorm.DB
	cache RestaurantsCache
}

// NewGetRestaurantsQueryHandler creates a handler for catalog queries.
// The cache may be nil when caching is disabled.
func NewGetRestaurantsQueryHandler(db *gorm.DB, cache RestaurantsCache) GetRestaurantsQueryHandler {
	return GetRestaurantsQueryHandler{db: db, cache: cache}
}

// Handle executes the query, sorted by restaurant name for stable output.
func (h GetRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantsQuery,
) ([]GetRestaurantsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if h.cache != nil {
		if rows, ok := h.cache.Get(ctx, query.City()); ok {
			return rows, nil
		}
	}

	restaurants := make([]GetRestaurantsQueryResponse, 0)

	sql := `
		SELECT
			id,
			name,
			food_type,
			city,
			address
		FROM restaurants
	`
	args := []any{}
	if query.City() != "" {
		sql += ` WHERE city = ?`
		args = append(args, query.City())
	}
	sql += ` ORDER BY name`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetRestaurantsQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Name, &resp.FoodType, &resp.City, &resp.Address); err != nil {
			return nil, err
		}

		restaurantID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = restaurantID
		restaurants = append(restaurants, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if h.cache != nil {
		h.cache.Set(ctx, query.City(), restaurants)
	}

	return restaurants, nil
}
