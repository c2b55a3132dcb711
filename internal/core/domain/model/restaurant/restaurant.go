package restaurant

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was not
// created through the NewRestaurant factory method.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Geo is an optional pair of geographic coordinates for a restaurant.
type Geo struct {
	Lat  float64
	Long float64
}

// Hours is an optional opening window, expressed as minutes since midnight.
type Hours struct {
	OpenMinute  int
	CloseMinute int
}

const minutesPerDay = 24 * 60

// Restaurant is the catalog entity owned by a single merchant.
//
// Invariants:
//   - Must have a valid unique identifier and a valid owning merchant id
//   - Name, food type, city and address must be non-empty
//   - Coordinates, when present, must be within valid geographic ranges
//   - Opening hours, when present, must be valid minutes of the day
//
// The merchant relation is one-to-one: the create-restaurant use case rejects
// a second restaurant for the same merchant.
type Restaurant struct {
	id         kernel.UUID
	merchantID kernel.UUID
	name       string
	foodType   string
	city       string
	address    string
	geo        *Geo
	hours      *Hours

	isConstructed bool
}

// NewRestaurant creates a validated Restaurant owned by the given merchant.
// geo and hours are optional and may be nil.
func NewRestaurant(
	id kernel.UUID,
	merchantID kernel.UUID,
	name, foodType, city, address string,
	geo *Geo,
	hours *Hours,
) (*Restaurant, error) {
	r := &Restaurant{
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setMerchantID(merchantID),
		r.setName(name),
		r.setFoodType(foodType),
		r.setCity(city),
		r.setAddress(address),
		r.setGeo(geo),
		r.setHours(hours),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Restaurant was constructed via NewRestaurant.
// Called when reconstructing restaurants from persistence.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// IsEqual compares two restaurants by identifier.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// MerchantID returns the id of the owning merchant.
func (r *Restaurant) MerchantID() kernel.UUID {
	return r.merchantID
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// FoodType returns the restaurant's food category.
func (r *Restaurant) FoodType() string {
	return r.foodType
}

// City returns the city the restaurant operates in.
func (r *Restaurant) City() string {
	return r.city
}

// Address returns the restaurant's street address.
func (r *Restaurant) Address() string {
	return r.address
}

// Geo returns the restaurant's coordinates, or nil when not set.
func (r *Restaurant) Geo() *Geo {
	return r.geo
}

// Hours returns the restaurant's opening window, or nil when not set.
func (r *Restaurant) Hours() *Hours {
	return r.hours
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("merchant", err)
	}
	r.merchantID = merchantID
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Restaurant) setFoodType(foodType string) error {
	if foodType == "" {
		return errs.NewValueIsRequiredError("foodType")
	}
	r.foodType = foodType
	return nil
}

func (r *Restaurant) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	r.city = city
	return nil
}

func (r *Restaurant) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	r.address = address
	return nil
}

func (r *Restaurant) setGeo(geo *Geo) error {
	if geo == nil {
		return nil
	}
	if geo.Lat < -90 || geo.Lat > 90 {
		return errs.NewValueIsOutOfRangeError("lat", geo.Lat, -90, 90)
	}
	if geo.Long < -180 || geo.Long > 180 {
		return errs.NewValueIsOutOfRangeError("long", geo.Long, -180, 180)
	}
	copied := *geo
	r.geo = &copied
	return nil
}

func (r *Restaurant) setHours(hours *Hours) error {
	if hours == nil {
		return nil
	}
	if hours.OpenMinute < 0 || hours.OpenMinute >= minutesPerDay {
		return errs.NewValueIsOutOfRangeError("openMinute", hours.OpenMinute, 0, minutesPerDay-1)
	}
	if hours.CloseMinute < 0 || hours.CloseMinute >= minutesPerDay {
		return errs.NewValueIsOutOfRangeError("closeMinute", hours.CloseMinute, 0, minutesPerDay-1)
	}
	if hours.CloseMinute <= hours.OpenMinute {
		return errs.NewValueIsInvalidErrorWithCause("hours",
			fmt.Errorf("close minute %d is not after open minute %d", hours.CloseMinute, hours.OpenMinute))
	}
	copied := *hours
	r.hours = &copied
	return nil
}

// RestoreRestaurant reconstructs a Restaurant from persistence, running the
// same validation as NewRestaurant.
func RestoreRestaurant(
	id kernel.UUID,
	merchantID kernel.UUID,
	name, foodType, city, address string,
	geo *Geo,
	hours *Hours,
) (*Restaurant, error) {
	return NewRestaurant(id, merchantID, name, foodType, city, address, geo, hours)
}
