package restaurantrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/restaurant"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRestaurantRepository implements RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRestaurantRepository creates a new GORM catalog repository.
func NewGormRestaurantRepository(db *gorm.DB, tracker aggregateTracker) *GormRestaurantRepository {
	return &GormRestaurantRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new restaurant to the database.
func (r *GormRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing restaurant to the database.
func (r *GormRestaurantRepository) Update(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RestaurantDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a restaurant by ID.
func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByMerchant retrieves the merchant's restaurant. The merchant relation is
// one-to-one, backed by the unique index on merchant_id.
func (r *GormRestaurantRepository) GetByMerchant(ctx context.Context, merchantID kernel.UUID) (*restaurant.Restaurant, error) {
	if err := merchantID.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "merchant_id = ?", merchantID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("merchant restaurant", merchantID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AddFood saves a new menu item to the database.
func (r *GormRestaurantRepository) AddFood(ctx context.Context, food *restaurant.Food) error {
	if err := food.Validate(); err != nil {
		return err
	}

	dto := foodFromDomain(food)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpdateFood saves an existing menu item to the database.
func (r *GormRestaurantRepository) UpdateFood(ctx context.Context, food *restaurant.Food) error {
	if err := food.Validate(); err != nil {
		return err
	}

	dto := foodFromDomain(food)
	result := r.db.WithContext(ctx).Model(&FoodDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// GetFood retrieves a menu item by ID.
func (r *GormRestaurantRepository) GetFood(ctx context.Context, id kernel.UUID) (*restaurant.Food, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FoodDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("food", id.String())
		}
		return nil, err
	}

	return foodToDomain(dto)
}

// GetFoods retrieves the menu items with the given IDs. Every id must
// resolve; a missing one fails the whole lookup so an order can never be
// placed against a half-loaded food set.
func (r *GormRestaurantRepository) GetFoods(ctx context.Context, ids []kernel.UUID) ([]*restaurant.Food, error) {
	if len(ids) == 0 {
		return nil, errs.NewValueIsRequiredError("foodIDs")
	}

	raw := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw[i] = id.Bytes()
	}

	var dtos []FoodDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]FoodDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
	}

	foods := make([]*restaurant.Food, 0, len(ids))
	for _, id := range ids {
		dto, ok := byID[id.Bytes()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("food", id.String())
		}

		food, err := foodToDomain(dto)
		if err != nil {
			return nil, err
		}
		foods = append(foods, food)
	}

	return foods, nil
}
