package cart

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/foodcourt/storefront/internal/domain/shared"
)

// GuestCart is the server-held cart keyed by an anonymous browser token.
// It is the durable owner of the line collection; clients treat their copy
// as a cache rebuilt after every mutation.
type GuestCart struct {
	shared.BaseEntity
	Token string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	Items []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (GuestCart) TableName() string {
	return "guest_carts"
}

// CartItem is one food's quantity entry within a guest cart.
// Price snapshots the food's sell price at the time the line was last set.
type CartItem struct {
	shared.BaseEntity
	CartID   uint            `gorm:"not null;index"`
	FoodID   uint            `gorm:"not null;index"`
	FoodName string          `gorm:"type:varchar(200);not null"`
	Quantity int             `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Image    string          `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (CartItem) TableName() string {
	return "guest_cart_items"
}

// ItemTotal returns quantity times the snapshotted unit price
func (i *CartItem) ItemTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// NewGuestCart creates an empty cart for the given token
func NewGuestCart(token string) (*GuestCart, error) {
	if strings.TrimSpace(token) == "" {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Cart token cannot be empty")
	}
	return &GuestCart{Token: token}, nil
}

// FindItem returns the line for the given food, or nil if absent
func (c *GuestCart) FindItem(foodID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].FoodID == foodID {
			return &c.Items[i]
		}
	}
	return nil
}

// SetItem replaces the full desired state of one line. Quantity 0 removes
// the line; any other quantity overwrites it along with the price snapshot.
func (c *GuestCart) SetItem(foodID uint, foodName string, quantity int, price decimal.Decimal, image string) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}

	if quantity == 0 {
		for i := range c.Items {
			if c.Items[i].FoodID == foodID {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
				break
			}
		}
		c.UpdatedAt = time.Now()
		return nil
	}

	if item := c.FindItem(foodID); item != nil {
		item.Quantity = quantity
		item.Price = price
		item.FoodName = foodName
		item.Image = image
		item.UpdatedAt = time.Now()
	} else {
		c.Items = append(c.Items, CartItem{
			CartID:   c.ID,
			FoodID:   foodID,
			FoodName: foodName,
			Quantity: quantity,
			Price:    price,
			Image:    image,
		})
	}
	c.UpdatedAt = time.Now()
	return nil
}

// IsEmpty reports whether the cart has no lines
func (c *GuestCart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Subtotal sums the line totals at full precision
func (c *GuestCart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for i := range c.Items {
		total = total.Add(c.Items[i].ItemTotal())
	}
	return total
}
