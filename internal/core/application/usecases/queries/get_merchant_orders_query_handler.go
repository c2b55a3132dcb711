package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMerchantOrdersQueryHandler retrieves the orders placed against a
// merchant's restaurant. The order's restaurant is derived through its food
// set, so the listing joins orders to the merchant's foods.
type GetMerchantOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetMerchantOrdersQueryHandler creates a handler for merchant order listings.
func NewGetMerchantOrdersQueryHandler(db *gorm.DB) GetMerchantOrdersQueryHandler {
	return GetMerchantOrdersQueryHandler{db: db}
}

// Handle executes the query, newest orders first.
func (h GetMerchantOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetMerchantOrdersQuery,
) ([]GetMerchantOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetMerchantOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT
			o.id,
			o.note,
			o.accepted,
			o.cancelled,
			o.delivered,
			o.created_at,
			o.time_to_deliver
		FROM orders o
		JOIN order_foods ofd ON ofd.order_id = o.id
		JOIN foods f ON f.id = ofd.food_id
		JOIN restaurants r ON r.id = f.restaurant_id
		WHERE r.merchant_id = ? AND `+query.Filter().condition()+`
		ORDER BY o.created_at DESC
	`, query.Actor().ID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetMerchantOrdersQueryResponse
		var id uuid.UUID
		var accepted, cancelled, delivered bool

		err = rows.Scan(&id, &resp.Note, &accepted, &cancelled, &delivered,
			&resp.CreatedAt, &resp.TimeToDeliver)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.StatusFromFlags(accepted, cancelled, delivered)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
