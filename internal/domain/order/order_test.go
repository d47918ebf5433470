package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodcourt/storefront/internal/domain/shared"
)

func validInput() NewOrderInput {
	return NewOrderInput{
		GuestCartToken:  "guest-token",
		CustomerName:    "Jordan Lee",
		DeliveryAddress: "12 Market Street",
		PhoneNumber:     "01700000000",
		TotalAmount:     decimal.RequireFromString("260.00"),
		Items: []OrderItem{
			{FoodID: 1, FoodName: "Biryani", Quantity: 2, PriceAtOrder: decimal.NewFromInt(105)},
			{FoodID: 2, FoodName: "Sushi", Quantity: 1, PriceAtOrder: decimal.NewFromInt(50)},
		},
	}
}

func TestNewOrder_Success(t *testing.T) {
	o, err := NewOrder(validInput())

	require.NoError(t, err)
	assert.Equal(t, OrderStatusPending, o.Status)
	assert.Equal(t, PaymentMethodCashOnDelivery, o.PaymentMethod)
	assert.Len(t, o.Items, 2)
}

func TestNewOrder_MissingDeliveryDetails(t *testing.T) {
	for _, mutate := range []func(*NewOrderInput){
		func(in *NewOrderInput) { in.CustomerName = "  " },
		func(in *NewOrderInput) { in.DeliveryAddress = "" },
		func(in *NewOrderInput) { in.PhoneNumber = "" },
	} {
		in := validInput()
		mutate(&in)
		_, err := NewOrder(in)
		assert.Error(t, err)
	}
}

func TestNewOrder_EmptyItems(t *testing.T) {
	in := validInput()
	in.Items = nil

	_, err := NewOrder(in)
	assert.ErrorIs(t, err, shared.ErrEmptyCart)
}

func TestNewOrder_NonPositiveQuantity(t *testing.T) {
	in := validInput()
	in.Items[0].Quantity = 0

	_, err := NewOrder(in)
	assert.Error(t, err)
}

func TestOrder_ItemsTotal(t *testing.T) {
	o, err := NewOrder(validInput())
	require.NoError(t, err)

	assert.Equal(t, "260.00", o.ItemsTotal().StringFixed(2))
}
