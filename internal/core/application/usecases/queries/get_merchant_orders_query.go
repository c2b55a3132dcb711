package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrGetMerchantOrdersQueryIsNotConstructed = errors.New(
	"GetMerchantOrdersQuery must be created via NewGetMerchantOrdersQuery constructor",
)

// GetMerchantOrdersQuery retrieves the orders placed against the actor's
// restaurant, narrowed by a status filter. Only merchants may run it.
type GetMerchantOrdersQuery struct {
	actor  account.Actor
	filter StatusFilter

	guard guard.ConstructorGuard
}

// NewGetMerchantOrdersQuery creates a query for a merchant's incoming orders.
func NewGetMerchantOrdersQuery(actor account.Actor, filter StatusFilter) (GetMerchantOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetMerchantOrdersQuery{}, err
	}
	if !actor.IsMerchant() {
		return GetMerchantOrdersQuery{}, errs.NewForbiddenError("list merchant orders", actor.ID().String())
	}
	if err := filter.Validate(); err != nil {
		return GetMerchantOrdersQuery{}, err
	}

	return GetMerchantOrdersQuery{
		actor:  actor,
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMerchantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetMerchantOrdersQueryIsNotConstructed)
}

// Actor returns the merchant whose incoming orders are listed.
func (q GetMerchantOrdersQuery) Actor() account.Actor {
	return q.actor
}

// Filter returns the status filter.
func (q GetMerchantOrdersQuery) Filter() StatusFilter {
	return q.filter
}

// GetMerchantOrdersQueryResponse is one incoming-order row.
type GetMerchantOrdersQueryResponse struct {
	ID            kernel.UUID
	Status        order.Status
	Note          string
	CreatedAt     time.Time
	TimeToDeliver int
}
