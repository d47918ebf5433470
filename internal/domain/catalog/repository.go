package catalog

import "context"

// FoodRepository defines persistence operations for food items
type FoodRepository interface {
	FindByID(ctx context.Context, id uint) (*Food, error)
	FindByIDs(ctx context.Context, ids []uint) ([]Food, error)
	FindAll(ctx context.Context) ([]Food, error)
	Save(ctx context.Context, food *Food) error
	Delete(ctx context.Context, id uint) error
}

// CuisineRepository defines persistence operations for cuisines
type CuisineRepository interface {
	FindByID(ctx context.Context, id uint) (*Cuisine, error)
	FindAll(ctx context.Context) ([]Cuisine, error)
	// FindAllWithActiveFoods preloads each cuisine's active foods for the
	// public menu payload.
	FindAllWithActiveFoods(ctx context.Context) ([]Cuisine, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Save(ctx context.Context, cuisine *Cuisine) error
}
