package catalog

import (
	"context"

	"github.com/foodcourt/storefront/internal/domain/catalog"
	"github.com/foodcourt/storefront/internal/domain/shared"
)

// CuisineService handles admin cuisine management
type CuisineService struct {
	cuisineRepo catalog.CuisineRepository
}

// NewCuisineService creates a new CuisineService
func NewCuisineService(cuisineRepo catalog.CuisineRepository) *CuisineService {
	return &CuisineService{cuisineRepo: cuisineRepo}
}

// List returns all cuisines
func (s *CuisineService) List(ctx context.Context) ([]CuisineResponse, error) {
	cuisines, err := s.cuisineRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CuisineResponse, 0, len(cuisines))
	for i := range cuisines {
		out = append(out, ToCuisineResponse(&cuisines[i]))
	}
	return out, nil
}

// Create validates and stores a new cuisine
func (s *CuisineService) Create(ctx context.Context, req CreateCuisineRequest) (*CuisineResponse, error) {
	exists, err := s.cuisineRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Cuisine with this name already exists")
	}

	cuisine, err := catalog.NewCuisine(req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.cuisineRepo.Save(ctx, cuisine); err != nil {
		return nil, err
	}

	resp := ToCuisineResponse(cuisine)
	return &resp, nil
}
