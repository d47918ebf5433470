package order

import (
	"github.com/shopspring/decimal"

	"github.com/foodcourt/storefront/internal/domain/order"
)

// PlaceOrderItemRequest is one cart line submitted with an order. Prices
// arrive as strings and are re-validated against the catalog server side.
type PlaceOrderItemRequest struct {
	FoodID       uint   `json:"food_id" binding:"required"`
	FoodName     string `json:"food_name"`
	Quantity     int    `json:"quantity" binding:"required,min=1"`
	PriceAtOrder string `json:"price_at_order"`
	Image        string `json:"image"`
}

// PlaceOrderRequest is the checkout submission payload
type PlaceOrderRequest struct {
	GuestCartToken  string                  `json:"guest_cart_token" binding:"required"`
	CustomerName    string                  `json:"customer_name" binding:"required"`
	DeliveryAddress string                  `json:"delivery_address" binding:"required"`
	PhoneNumber     string                  `json:"phone_number" binding:"required"`
	OrderNotes      string                  `json:"order_notes"`
	Items           []PlaceOrderItemRequest `json:"items" binding:"required,min=1,dive"`
	TotalAmount     string                  `json:"total_amount"`
	PaymentMethod   string                  `json:"payment_method"`
}

// PlaceOrderResponse reports a successfully placed order
type PlaceOrderResponse struct {
	OrderID uint `json:"order_id"`
}

// OrderItemResponse is one line of a stored order
type OrderItemResponse struct {
	FoodID       uint            `json:"food_id"`
	FoodName     string          `json:"food_name"`
	Quantity     int             `json:"quantity"`
	PriceAtOrder decimal.Decimal `json:"price_at_order"`
	Image        string          `json:"image"`
}

// OrderResponse is the admin-facing view of a stored order
type OrderResponse struct {
	ID              uint                `json:"id"`
	CustomerName    string              `json:"customer_name"`
	DeliveryAddress string              `json:"delivery_address"`
	PhoneNumber     string              `json:"phone_number"`
	OrderNotes      string              `json:"order_notes,omitempty"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	PaymentMethod   string              `json:"payment_method"`
	Status          string              `json:"status"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       string              `json:"created_at"`
}

// ToOrderResponse converts an order aggregate to its response form
func ToOrderResponse(o *order.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			FoodID:       it.FoodID,
			FoodName:     it.FoodName,
			Quantity:     it.Quantity,
			PriceAtOrder: it.PriceAtOrder,
			Image:        it.Image,
		})
	}
	return &OrderResponse{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		DeliveryAddress: o.DeliveryAddress,
		PhoneNumber:     o.PhoneNumber,
		OrderNotes:      o.OrderNotes,
		TotalAmount:     o.TotalAmount,
		PaymentMethod:   o.PaymentMethod,
		Status:          string(o.Status),
		Items:           items,
		CreatedAt:       o.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
