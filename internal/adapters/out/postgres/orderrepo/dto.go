// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The lifecycle flags are stored as-is; status is derived, never persisted.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID *uuid.UUID `gorm:"type:uuid;index"`
	Note       string     `gorm:"type:varchar(1024)"`

	Accepted  bool
	Cancelled bool
	Delivered bool

	CreatedAt   time.Time
	AcceptedAt  *time.Time
	CancelledAt *time.Time
	DeliveredAt *time.Time

	TimeToDeliver int

	Foods []OrderFoodDTO `gorm:"-"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderFoodDTO is one row of the order-to-food association. The food set is
// fixed at placement and never updated afterwards.
type OrderFoodDTO struct {
	OrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	FoodID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName specifies the database table name for order food associations.
func (OrderFoodDTO) TableName() string {
	return "order_foods"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	var customerID *uuid.UUID
	if id := o.CustomerID(); id != nil {
		raw := id.Bytes()
		customerID = &raw
	}

	dto := OrderDTO{
		ID:            o.ID().Bytes(),
		CustomerID:    customerID,
		Note:          o.Note(),
		Accepted:      o.IsAccepted(),
		Cancelled:     o.IsCancelled(),
		Delivered:     o.IsDelivered(),
		CreatedAt:     o.CreatedAt(),
		AcceptedAt:    o.AcceptedAt(),
		CancelledAt:   o.CancelledAt(),
		DeliveredAt:   o.DeliveredAt(),
		TimeToDeliver: o.TimeToDeliver(),
	}

	for _, foodID := range o.FoodIDs() {
		dto.Foods = append(dto.Foods, OrderFoodDTO{
			OrderID: dto.ID,
			FoodID:  foodID.Bytes(),
		})
	}

	return dto
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder,
// which re-validates that the stored state is reachable.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, customerErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if customerErr != nil {
			return nil, customerErr
		}

		customerID = &cID
	}

	foodIDs := make([]kernel.UUID, 0, len(dto.Foods))
	for _, food := range dto.Foods {
		foodID, foodErr := kernel.UUIDFromBytes(food.FoodID[:])
		if foodErr != nil {
			return nil, foodErr
		}
		foodIDs = append(foodIDs, foodID)
	}

	return order.RestoreOrder(
		id,
		customerID,
		foodIDs,
		dto.Note,
		dto.Accepted, dto.Cancelled, dto.Delivered,
		dto.CreatedAt,
		dto.AcceptedAt, dto.CancelledAt, dto.DeliveredAt,
		dto.TimeToDeliver,
	)
}
