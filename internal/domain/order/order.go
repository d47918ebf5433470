package order

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/foodcourt/storefront/internal/domain/shared"
)

// PaymentMethodCashOnDelivery is the only supported payment method
const PaymentMethodCashOnDelivery = "Cash on Delivery"

// OrderStatus represents the fulfilment state of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is an immutable snapshot of a checkout: customer details plus the
// cart lines as they were priced at the time the order was placed.
type Order struct {
	shared.BaseEntity
	GuestCartToken  string          `gorm:"type:varchar(100);not null;index"`
	CustomerName    string          `gorm:"type:varchar(200);not null"`
	DeliveryAddress string          `gorm:"type:text;not null"`
	PhoneNumber     string          `gorm:"type:varchar(50);not null"`
	OrderNotes      string          `gorm:"type:text"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	PaymentMethod   string          `gorm:"type:varchar(50);not null"`
	Status          OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one snapshotted line of an order
type OrderItem struct {
	shared.BaseEntity
	OrderID      uint            `gorm:"not null;index"`
	FoodID       uint            `gorm:"not null"`
	FoodName     string          `gorm:"type:varchar(200);not null"`
	Quantity     int             `gorm:"not null"`
	PriceAtOrder decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Image        string          `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// NewOrderInput carries everything needed to construct an order
type NewOrderInput struct {
	GuestCartToken  string
	CustomerName    string
	DeliveryAddress string
	PhoneNumber     string
	OrderNotes      string
	TotalAmount     decimal.Decimal
	Items           []OrderItem
}

// NewOrder validates and constructs an order. Orders are immutable after
// creation from the storefront's perspective.
func NewOrder(in NewOrderInput) (*Order, error) {
	if strings.TrimSpace(in.CustomerName) == "" ||
		strings.TrimSpace(in.DeliveryAddress) == "" ||
		strings.TrimSpace(in.PhoneNumber) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer name, address and phone are required")
	}
	if len(in.Items) == 0 {
		return nil, shared.ErrEmptyCart
	}
	for i := range in.Items {
		if in.Items[i].Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Order line quantity must be positive")
		}
	}

	return &Order{
		GuestCartToken:  in.GuestCartToken,
		CustomerName:    strings.TrimSpace(in.CustomerName),
		DeliveryAddress: strings.TrimSpace(in.DeliveryAddress),
		PhoneNumber:     strings.TrimSpace(in.PhoneNumber),
		OrderNotes:      in.OrderNotes,
		TotalAmount:     in.TotalAmount,
		PaymentMethod:   PaymentMethodCashOnDelivery,
		Status:          OrderStatusPending,
		Items:           in.Items,
	}, nil
}

// ItemsTotal sums the snapshotted line totals at full precision
func (o *Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Items {
		line := o.Items[i].PriceAtOrder.Mul(decimal.NewFromInt(int64(o.Items[i].Quantity)))
		total = total.Add(line)
	}
	return total
}
