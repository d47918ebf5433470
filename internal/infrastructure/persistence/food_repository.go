package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/foodcourt/storefront/internal/domain/catalog"
	"github.com/foodcourt/storefront/internal/domain/shared"
)

// GormFoodRepository implements catalog.FoodRepository using GORM
type GormFoodRepository struct {
	db *gorm.DB
}

// NewGormFoodRepository creates a new GormFoodRepository
func NewGormFoodRepository(db *gorm.DB) *GormFoodRepository {
	return &GormFoodRepository{db: db}
}

// FindByID finds a food item by its ID
func (r *GormFoodRepository) FindByID(ctx context.Context, id uint) (*catalog.Food, error) {
	var food catalog.Food
	if err := r.db.WithContext(ctx).First(&food, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &food, nil
}

// FindByIDs finds all food items matching the given IDs
func (r *GormFoodRepository) FindByIDs(ctx context.Context, ids []uint) ([]catalog.Food, error) {
	var foods []catalog.Food
	if len(ids) == 0 {
		return foods, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// FindAll returns all food items ordered by creation time
func (r *GormFoodRepository) FindAll(ctx context.Context) ([]catalog.Food, error) {
	var foods []catalog.Food
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// Save creates or updates a food item
func (r *GormFoodRepository) Save(ctx context.Context, food *catalog.Food) error {
	return r.db.WithContext(ctx).Save(food).Error
}

// Delete removes a food item
func (r *GormFoodRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Food{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ catalog.FoodRepository = (*GormFoodRepository)(nil)
