package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/foodcourt/storefront/internal/domain/catalog"
)

// FoodResponse is the wire representation of a food item. Decimal fields
// serialize as quoted strings, which is what the storefront client parses.
type FoodResponse struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	DiscountPrice decimal.Decimal `json:"discount_price"`
	VATPercentage decimal.Decimal `json:"vat_percentage"`
	StockQuantity int             `json:"stock_quantity"`
	CuisineID     uint            `json:"cuisine_id"`
	CuisineName   string          `json:"cuisine_name,omitempty"`
	Image         string          `json:"image"`
	Date          string          `json:"date,omitempty"`
	Status        string          `json:"status"`
}

// CuisineResponse is the wire representation of a cuisine
type CuisineResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CuisineWithFoodsResponse is one group of the public menu payload
type CuisineWithFoodsResponse struct {
	ID    uint           `json:"id"`
	Name  string         `json:"name"`
	Foods []FoodResponse `json:"foods"`
}

// CreateFoodRequest carries admin input for creating a food item.
// Numeric fields arrive as strings from the console and are parsed
// explicitly.
type CreateFoodRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	Price         string `json:"price" binding:"required"`
	DiscountPrice string `json:"discount_price" binding:"required"`
	VATPercentage string `json:"vat_percentage" binding:"required"`
	StockQuantity int    `json:"stock_quantity" binding:"min=0"`
	CuisineID     uint   `json:"cuisine_id" binding:"required"`
	Image         string `json:"image"`
	Date          string `json:"date"`
	Status        string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// UpdateFoodRequest carries admin input for updating a food item
type UpdateFoodRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	Price         string `json:"price" binding:"required"`
	DiscountPrice string `json:"discount_price" binding:"required"`
	VATPercentage string `json:"vat_percentage" binding:"required"`
	StockQuantity int    `json:"stock_quantity" binding:"min=0"`
	CuisineID     uint   `json:"cuisine_id" binding:"required"`
	Image         string `json:"image"`
	Date          string `json:"date"`
	Status        string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// CreateCuisineRequest carries admin input for creating a cuisine
type CreateCuisineRequest struct {
	Name string `json:"name" binding:"required"`
}

// ToFoodResponse converts a domain food to its wire form
func ToFoodResponse(f *catalog.Food, cuisineName string) FoodResponse {
	return FoodResponse{
		ID:            f.ID,
		Name:          f.Name,
		Description:   f.Description,
		Price:         f.Price,
		DiscountPrice: f.DiscountPrice,
		VATPercentage: f.VATPercentage,
		StockQuantity: f.StockQuantity,
		CuisineID:     f.CuisineID,
		CuisineName:   cuisineName,
		Image:         f.Image,
		Date:          f.Date,
		Status:        string(f.Status),
	}
}

// ToCuisineResponse converts a domain cuisine to its wire form
func ToCuisineResponse(c *catalog.Cuisine) CuisineResponse {
	return CuisineResponse{ID: c.ID, Name: c.Name}
}
