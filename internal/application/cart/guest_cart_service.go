package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/foodcourt/storefront/internal/domain/cart"
	"github.com/foodcourt/storefront/internal/domain/catalog"
	"github.com/foodcourt/storefront/internal/domain/shared"
)

// GuestCartService handles the server-held guest cart
type GuestCartService struct {
	cartRepo cart.GuestCartRepository
	foodRepo catalog.FoodRepository
}

// NewGuestCartService creates a new GuestCartService
func NewGuestCartService(cartRepo cart.GuestCartRepository, foodRepo catalog.FoodRepository) *GuestCartService {
	return &GuestCartService{cartRepo: cartRepo, foodRepo: foodRepo}
}

// Get returns the cart lines for a token. Unknown tokens are not an error
// worth distinguishing to the storefront; the repository's not-found is
// propagated and mapped at the HTTP boundary.
func (s *GuestCartService) Get(ctx context.Context, token string) ([]CartItemResponse, error) {
	c, err := s.cartRepo.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return ToCartItemResponses(c), nil
}

// SetItem applies the full desired state of one line: the requested
// quantity replaces whatever the cart held before, 0 removes the line.
// The line price snapshots the food's current sell price.
func (s *GuestCartService) SetItem(ctx context.Context, req UpdateCartRequest) ([]CartItemResponse, error) {
	if req.Quantity == nil || *req.Quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	quantity := *req.Quantity

	food, err := s.foodRepo.FindByID(ctx, req.FoodID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Food item not found")
		}
		return nil, err
	}
	if quantity > 0 && !food.IsActive() {
		return nil, shared.NewDomainError("INVALID_STATE", "Food item is not available")
	}
	if quantity > 0 && !food.HasStock(quantity) {
		return nil, shared.NewDomainError("INSUFFICIENT_STOCK",
			fmt.Sprintf("Only %d in stock.", food.StockQuantity))
	}

	c, err := s.cartRepo.FindOrCreateByToken(ctx, req.CartToken)
	if err != nil {
		return nil, err
	}
	if err := c.SetItem(food.ID, food.Name, quantity, food.SellPrice(), food.Image); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	return ToCartItemResponses(c), nil
}
