package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves the actor's own orders, narrowed by a
// status filter. Customers only ever see orders they placed; the actor id is
// part of the query itself.
type GetCustomerOrdersQuery struct {
	actor  account.Actor
	filter StatusFilter

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for the actor's order history.
func NewGetCustomerOrdersQuery(actor account.Actor, filter StatusFilter) (GetCustomerOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}
	if err := filter.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return GetCustomerOrdersQuery{
		actor:  actor,
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// Actor returns the customer whose orders are listed.
func (q GetCustomerOrdersQuery) Actor() account.Actor {
	return q.actor
}

// Filter returns the status filter.
func (q GetCustomerOrdersQuery) Filter() StatusFilter {
	return q.filter
}

// GetCustomerOrdersQueryResponse is one order-history row.
type GetCustomerOrdersQueryResponse struct {
	ID            kernel.UUID
	Status        order.Status
	Note          string
	CreatedAt     time.Time
	TimeToDeliver int
}
