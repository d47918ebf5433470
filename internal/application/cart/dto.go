package cart

import (
	"github.com/shopspring/decimal"

	"github.com/foodcourt/storefront/internal/domain/cart"
)

// CartItemResponse is the wire representation of one cart line
type CartItemResponse struct {
	FoodID    uint            `json:"food_id"`
	FoodName  string          `json:"food_name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	ItemTotal decimal.Decimal `json:"item_total"`
}

// UpdateCartRequest carries the full desired state of one line.
// Quantity 0 removes the line.
type UpdateCartRequest struct {
	FoodID    uint   `json:"food_id" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"required"`
	CartToken string `json:"cart_token" binding:"required"`
}

// ToCartItemResponses converts the cart's lines to their wire form
func ToCartItemResponses(c *cart.GuestCart) []CartItemResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	for i := range c.Items {
		it := &c.Items[i]
		items = append(items, CartItemResponse{
			FoodID:    it.FoodID,
			FoodName:  it.FoodName,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Image:     it.Image,
			ItemTotal: it.ItemTotal(),
		})
	}
	return items
}
