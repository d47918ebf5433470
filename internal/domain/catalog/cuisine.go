package catalog

import (
	"strings"

	"github.com/foodcourt/storefront/internal/domain/shared"
)

// Cuisine groups food items on the menu (e.g. "Thai", "Italian")
type Cuisine struct {
	shared.BaseEntity
	Name  string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Foods []Food `gorm:"foreignKey:CuisineID"`
}

// TableName returns the table name for GORM
func (Cuisine) TableName() string {
	return "cuisines"
}

// NewCuisine creates a new cuisine
func NewCuisine(name string) (*Cuisine, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Cuisine name cannot be empty")
	}
	return &Cuisine{Name: name}, nil
}
