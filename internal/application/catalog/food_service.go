package catalog

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/foodcourt/storefront/internal/domain/catalog"
	"github.com/foodcourt/storefront/internal/domain/shared"
)

// FoodService handles admin food management
type FoodService struct {
	foodRepo    catalog.FoodRepository
	cuisineRepo catalog.CuisineRepository
}

// NewFoodService creates a new FoodService
func NewFoodService(foodRepo catalog.FoodRepository, cuisineRepo catalog.CuisineRepository) *FoodService {
	return &FoodService{foodRepo: foodRepo, cuisineRepo: cuisineRepo}
}

// List returns all food items with their cuisine names
func (s *FoodService) List(ctx context.Context) ([]FoodResponse, error) {
	foods, err := s.foodRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	cuisines, err := s.cuisineRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[uint]string, len(cuisines))
	for i := range cuisines {
		names[cuisines[i].ID] = cuisines[i].Name
	}

	out := make([]FoodResponse, 0, len(foods))
	for i := range foods {
		out = append(out, ToFoodResponse(&foods[i], names[foods[i].CuisineID]))
	}
	return out, nil
}

// Create validates and stores a new food item
func (s *FoodService) Create(ctx context.Context, req CreateFoodRequest) (*FoodResponse, error) {
	cuisine, err := s.cuisineRepo.FindByID(ctx, req.CuisineID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_CUISINE", "Cuisine not found")
		}
		return nil, err
	}

	price, discountPrice, vat, err := parsePrices(req.Price, req.DiscountPrice, req.VATPercentage)
	if err != nil {
		return nil, err
	}

	food, err := catalog.NewFood(req.Name, cuisine.ID, price, discountPrice, vat, req.StockQuantity)
	if err != nil {
		return nil, err
	}
	food.Description = req.Description
	food.Image = req.Image
	food.Date = req.Date
	if req.Status == string(catalog.FoodStatusInactive) {
		food.Status = catalog.FoodStatusInactive
	}

	if err := s.foodRepo.Save(ctx, food); err != nil {
		return nil, err
	}

	resp := ToFoodResponse(food, cuisine.Name)
	return &resp, nil
}

// Update overwrites an existing food item
func (s *FoodService) Update(ctx context.Context, id uint, req UpdateFoodRequest) (*FoodResponse, error) {
	food, err := s.foodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cuisine, err := s.cuisineRepo.FindByID(ctx, req.CuisineID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_CUISINE", "Cuisine not found")
		}
		return nil, err
	}

	price, discountPrice, vat, err := parsePrices(req.Price, req.DiscountPrice, req.VATPercentage)
	if err != nil {
		return nil, err
	}
	if req.StockQuantity < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock quantity cannot be negative")
	}

	food.Name = req.Name
	food.Description = req.Description
	food.Price = price
	food.DiscountPrice = discountPrice
	food.VATPercentage = vat
	food.StockQuantity = req.StockQuantity
	food.CuisineID = cuisine.ID
	food.Image = req.Image
	food.Date = req.Date
	if req.Status != "" {
		food.Status = catalog.FoodStatus(req.Status)
	}

	if err := s.foodRepo.Save(ctx, food); err != nil {
		return nil, err
	}

	resp := ToFoodResponse(food, cuisine.Name)
	return &resp, nil
}

// Delete removes a food item
func (s *FoodService) Delete(ctx context.Context, id uint) error {
	return s.foodRepo.Delete(ctx, id)
}

// ToggleStatus flips a food item between active and inactive
func (s *FoodService) ToggleStatus(ctx context.Context, id uint) (*FoodResponse, error) {
	food, err := s.foodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	food.ToggleStatus()
	if err := s.foodRepo.Save(ctx, food); err != nil {
		return nil, err
	}
	resp := ToFoodResponse(food, "")
	return &resp, nil
}

// parsePrices parses the string-typed price fields; the console sends them
// as strings and ambient numeric coercion is never trusted.
func parsePrices(price, discountPrice, vat string) (decimal.Decimal, decimal.Decimal, decimal.Decimal, error) {
	p, err := decimal.NewFromString(price)
	if err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, shared.NewDomainError("INVALID_PRICE", "Price must be a decimal number")
	}
	d, err := decimal.NewFromString(discountPrice)
	if err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, shared.NewDomainError("INVALID_PRICE", "Discount price must be a decimal number")
	}
	v, err := decimal.NewFromString(vat)
	if err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, shared.NewDomainError("INVALID_PRICE", "VAT percentage must be a decimal number")
	}
	return p, d, v, nil
}
