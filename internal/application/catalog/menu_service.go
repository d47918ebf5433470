package catalog

import (
	"context"

	"github.com/foodcourt/storefront/internal/domain/catalog"
)

// MenuService builds the public cuisine-grouped menu payload
type MenuService struct {
	cuisineRepo catalog.CuisineRepository
}

// NewMenuService creates a new MenuService
func NewMenuService(cuisineRepo catalog.CuisineRepository) *MenuService {
	return &MenuService{cuisineRepo: cuisineRepo}
}

// CuisinesWithFood returns every cuisine with its active foods, with the
// cuisine name denormalized onto each food for the storefront.
func (s *MenuService) CuisinesWithFood(ctx context.Context) ([]CuisineWithFoodsResponse, error) {
	cuisines, err := s.cuisineRepo.FindAllWithActiveFoods(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]CuisineWithFoodsResponse, 0, len(cuisines))
	for i := range cuisines {
		c := &cuisines[i]
		foods := make([]FoodResponse, 0, len(c.Foods))
		for j := range c.Foods {
			foods = append(foods, ToFoodResponse(&c.Foods[j], c.Name))
		}
		out = append(out, CuisineWithFoodsResponse{
			ID:    c.ID,
			Name:  c.Name,
			Foods: foods,
		})
	}
	return out, nil
}
