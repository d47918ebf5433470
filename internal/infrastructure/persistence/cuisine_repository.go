package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/foodcourt/storefront/internal/domain/catalog"
	"github.com/foodcourt/storefront/internal/domain/shared"
)

// GormCuisineRepository implements catalog.CuisineRepository using GORM
type GormCuisineRepository struct {
	db *gorm.DB
}

// NewGormCuisineRepository creates a new GormCuisineRepository
func NewGormCuisineRepository(db *gorm.DB) *GormCuisineRepository {
	return &GormCuisineRepository{db: db}
}

// FindByID finds a cuisine by its ID
func (r *GormCuisineRepository) FindByID(ctx context.Context, id uint) (*catalog.Cuisine, error) {
	var cuisine catalog.Cuisine
	if err := r.db.WithContext(ctx).First(&cuisine, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &cuisine, nil
}

// FindAll returns all cuisines ordered by name
func (r *GormCuisineRepository) FindAll(ctx context.Context) ([]catalog.Cuisine, error) {
	var cuisines []catalog.Cuisine
	if err := r.db.WithContext(ctx).Order("name asc").Find(&cuisines).Error; err != nil {
		return nil, err
	}
	return cuisines, nil
}

// FindAllWithActiveFoods preloads each cuisine's active foods for the menu
func (r *GormCuisineRepository) FindAllWithActiveFoods(ctx context.Context) ([]catalog.Cuisine, error) {
	var cuisines []catalog.Cuisine
	err := r.db.WithContext(ctx).
		Preload("Foods", "status = ?", catalog.FoodStatusActive).
		Order("name asc").
		Find(&cuisines).Error
	if err != nil {
		return nil, err
	}
	return cuisines, nil
}

// ExistsByName checks whether a cuisine with the given name exists
func (r *GormCuisineRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalog.Cuisine{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a cuisine
func (r *GormCuisineRepository) Save(ctx context.Context, cuisine *catalog.Cuisine) error {
	return r.db.WithContext(ctx).Save(cuisine).Error
}

var _ catalog.CuisineRepository = (*GormCuisineRepository)(nil)
