// Package restaurantrepo provides data transfer objects and mapping functions
// for catalog persistence: restaurants and their menus.
package restaurantrepo

import (
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for persisting restaurants.
// The unique index on MerchantID enforces the one-restaurant-per-merchant
// rule at the storage level as well.
type RestaurantDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Name       string
	FoodType   string
	City       string `gorm:"index"`
	Address    string

	Lat  *float64
	Long *float64

	OpenMinute  *int
	CloseMinute *int
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// FoodDTO represents the database structure for persisting menu items.
type FoodDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	PriceCents   int64
}

// TableName specifies the database table name for food entities.
func (FoodDTO) TableName() string {
	return "foods"
}

func fromDomain(r *restaurant.Restaurant) RestaurantDTO {
	dto := RestaurantDTO{
		ID:         r.ID().Bytes(),
		MerchantID: r.MerchantID().Bytes(),
		Name:       r.Name(),
		FoodType:   r.FoodType(),
		City:       r.City(),
		Address:    r.Address(),
	}

	if geo := r.Geo(); geo != nil {
		dto.Lat = &geo.Lat
		dto.Long = &geo.Long
	}
	if hours := r.Hours(); hours != nil {
		dto.OpenMinute = &hours.OpenMinute
		dto.CloseMinute = &hours.CloseMinute
	}

	return dto
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	var geo *restaurant.Geo
	if dto.Lat != nil && dto.Long != nil {
		geo = &restaurant.Geo{Lat: *dto.Lat, Long: *dto.Long}
	}

	var hours *restaurant.Hours
	if dto.OpenMinute != nil && dto.CloseMinute != nil {
		hours = &restaurant.Hours{OpenMinute: *dto.OpenMinute, CloseMinute: *dto.CloseMinute}
	}

	return restaurant.RestoreRestaurant(id, merchantID,
		dto.Name, dto.FoodType, dto.City, dto.Address, geo, hours)
}

func foodFromDomain(f *restaurant.Food) FoodDTO {
	return FoodDTO{
		ID:           f.ID().Bytes(),
		RestaurantID: f.RestaurantID().Bytes(),
		Name:         f.Name(),
		PriceCents:   f.Price().Cents(),
	}
}

func foodToDomain(dto FoodDTO) (*restaurant.Food, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	price, err := restaurant.NewPrice(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreFood(id, restaurantID, dto.Name, price)
}
