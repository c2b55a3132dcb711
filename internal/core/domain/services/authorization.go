package services

import (
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/restaurant"
	"foodorder/internal/pkg/errs"
)

// OwnsRestaurant reports whether the actor is the merchant owning the
// restaurant. Ownership is the id match alone; a staff account that created a
// restaurant manages it without carrying the merchant profile flag.
func OwnsRestaurant(actor account.Actor, r *restaurant.Restaurant) bool {
	return r.MerchantID().IsEqual(actor.ID())
}

// OwnsFood reports whether the actor owns the restaurant the food belongs to.
func OwnsFood(actor account.Actor, r *restaurant.Restaurant, f *restaurant.Food) bool {
	return OwnsRestaurant(actor, r) && f.RestaurantID().IsEqual(r.ID())
}

// IsOrderCustomer reports whether the actor is the customer who placed the
// order. False when the customer reference has been detached.
func IsOrderCustomer(actor account.Actor, o *order.Order) bool {
	return o.CustomerID() != nil && o.CustomerID().IsEqual(actor.ID())
}

// IsOrderMerchant reports whether the actor owns the restaurant the order was
// placed against. orderRestaurant must be the restaurant derived from the
// order's food set.
func IsOrderMerchant(actor account.Actor, orderRestaurant *restaurant.Restaurant) bool {
	return OwnsRestaurant(actor, orderRestaurant)
}

// AuthorizeMerchant guards merchant-only operations such as creating a
// restaurant or managing its menu. Staff accounts pass regardless of their
// merchant flag; ownership checks stay strict, so staff can open a restaurant
// of their own but not touch anyone else's.
func AuthorizeMerchant(operation string, actor account.Actor) error {
	if !actor.IsMerchant() && !actor.IsStaff() {
		return errs.NewForbiddenError(operation, actor.ID().String())
	}
	return nil
}

// AuthorizeRestaurantOwner guards operations on a specific restaurant and
// its menu.
func AuthorizeRestaurantOwner(operation string, actor account.Actor, r *restaurant.Restaurant) error {
	if !OwnsRestaurant(actor, r) {
		return errs.NewForbiddenError(operation, actor.ID().String())
	}
	return nil
}

// AuthorizeOrderCustomer guards customer-side order transitions: cancelling
// an unaccepted order and confirming delivery.
func AuthorizeOrderCustomer(operation string, actor account.Actor, o *order.Order) error {
	if !IsOrderCustomer(actor, o) {
		return errs.NewForbiddenError(operation, actor.ID().String())
	}
	return nil
}

// AuthorizeOrderMerchant guards merchant-side order transitions: accepting
// and cancelling orders placed against the merchant's restaurant.
func AuthorizeOrderMerchant(operation string, actor account.Actor, orderRestaurant *restaurant.Restaurant) error {
	if !IsOrderMerchant(actor, orderRestaurant) {
		return errs.NewForbiddenError(operation, actor.ID().String())
	}
	return nil
}
