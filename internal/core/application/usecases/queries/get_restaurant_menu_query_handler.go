package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRestaurantMenuQueryHandler retrieves a restaurant's menu from the database.
type GetRestaurantMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantMenuQueryHandler creates a handler for menu queries.
func NewGetRestaurantMenuQueryHandler(db *gorm.DB) GetRestaurantMenuQueryHandler {
	return GetRestaurantMenuQueryHandler{db: db}
}

// Handle executes the query, sorted by food name. An unknown restaurant id
// yields an empty menu, not an error.
func (h GetRestaurantMenuQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantMenuQuery,
) ([]GetRestaurantMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	foods := make([]GetRestaurantMenuQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price_cents
		FROM foods
		WHERE restaurant_id = ?
		ORDER BY name
	`, query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetRestaurantMenuQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Name, &resp.PriceCents); err != nil {
			return nil, err
		}

		foodID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = foodID
		foods = append(foods, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return foods, nil
}
