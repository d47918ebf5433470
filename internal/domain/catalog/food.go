package catalog

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/foodcourt/storefront/internal/domain/shared"
)

// FoodStatus represents the visibility of a food item on the storefront
type FoodStatus string

const (
	FoodStatusActive   FoodStatus = "active"
	FoodStatusInactive FoodStatus = "inactive"
)

// Food represents a single menu item belonging to a cuisine.
// Prices are kept as decimals; discount price is the sell base and the
// VAT-inclusive sell price is derived, never stored.
type Food struct {
	shared.BaseEntity
	Name          string          `gorm:"type:varchar(200);not null"`
	Description   string          `gorm:"type:text"`
	Price         decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	DiscountPrice decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	VATPercentage decimal.Decimal `gorm:"type:decimal(8,2);not null;default:0"`
	StockQuantity int             `gorm:"not null;default:0"`
	CuisineID     uint            `gorm:"not null;index"`
	Image         string          `gorm:"type:varchar(500)"`
	Date          string          `gorm:"type:varchar(50)"`
	Status        FoodStatus      `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Food) TableName() string {
	return "foods"
}

// NewFood creates a new food item
func NewFood(name string, cuisineID uint, price, discountPrice, vatPercentage decimal.Decimal, stockQuantity int) (*Food, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Food name cannot be empty")
	}
	if cuisineID == 0 {
		return nil, shared.NewDomainError("INVALID_CUISINE", "Food must belong to a cuisine")
	}
	if price.IsNegative() || discountPrice.IsNegative() || vatPercentage.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Prices and VAT cannot be negative")
	}
	if stockQuantity < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock quantity cannot be negative")
	}

	return &Food{
		Name:          strings.TrimSpace(name),
		CuisineID:     cuisineID,
		Price:         price,
		DiscountPrice: discountPrice,
		VATPercentage: vatPercentage,
		StockQuantity: stockQuantity,
		Status:        FoodStatusActive,
	}, nil
}

// IsActive returns true if the food is visible on the storefront
func (f *Food) IsActive() bool {
	return f.Status == FoodStatusActive
}

// ToggleStatus flips the food between active and inactive
func (f *Food) ToggleStatus() {
	if f.Status == FoodStatusActive {
		f.Status = FoodStatusInactive
	} else {
		f.Status = FoodStatusActive
	}
	f.UpdatedAt = time.Now()
}

// SellPrice returns the VAT-inclusive price shown to customers,
// rounded to two decimal places
func (f *Food) SellPrice() decimal.Decimal {
	vat := f.DiscountPrice.Mul(f.VATPercentage).Div(decimal.NewFromInt(100))
	return f.DiscountPrice.Add(vat).Round(2)
}

// HasStock reports whether the requested quantity can be satisfied
func (f *Food) HasStock(quantity int) bool {
	return quantity <= f.StockQuantity
}

// ReduceStock decrements the stock after an order is placed
func (f *Food) ReduceStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if quantity > f.StockQuantity {
		return shared.ErrInsufficientStock
	}
	f.StockQuantity -= quantity
	f.UpdatedAt = time.Now()
	return nil
}
