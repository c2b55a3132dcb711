package http

import (
	"time"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewRestaurant is the request body for restaurant registration.
type NewRestaurant struct {
	Name     string   `json:"name"`
	FoodType string   `json:"food_type"`
	City     string   `json:"city"`
	Address  string   `json:"address"`
	Lat      *float64 `json:"lat,omitempty"`
	Long     *float64 `json:"long,omitempty"`
	OpenMin  *int     `json:"open_minute,omitempty"`
	CloseMin *int     `json:"close_minute,omitempty"`
}

// Restaurant is one catalog listing row.
type Restaurant struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	FoodType string `json:"food_type"`
	City     string `json:"city"`
	Address  string `json:"address"`
}

// NewFood is the request body for adding a menu item.
type NewFood struct {
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	PriceCents   int64  `json:"price_cents"`
}

// UpdateFood is the request body for renaming or repricing a menu item.
type UpdateFood struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

// Food is one menu row.
type Food struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

// NewOrder is the request body for placing an order.
type NewOrder struct {
	FoodIDs []string `json:"food_ids"`
	Note    string   `json:"note,omitempty"`
}

// AcceptOrder is the request body for the merchant's acceptance.
type AcceptOrder struct {
	TimeToDeliver int `json:"time_to_deliver"`
}

// Order is one order-listing row. Status is the derived lifecycle state.
type Order struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"`
	Note          string    `json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	TimeToDeliver int       `json:"time_to_deliver"`
}

// Created is returned from resource-creating endpoints.
type Created struct {
	ID string `json:"id"`
}
