// Package menu holds the storefront's read-only projection of the public
// menu: one fetch, then pure in-memory filtering. It is also the cart's
// source of truth for prices and known stock.
package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/foodcourt/storefront/storefront/api"
	"github.com/foodcourt/storefront/storefront/pricing"
)

// ErrNotLoaded is returned when the projection is read before a successful
// Load
var ErrNotLoaded = errors.New("menu: not loaded")

// Fetcher is the slice of the API client the projection needs
type Fetcher interface {
	CuisinesWithFood(ctx context.Context) ([]api.Cuisine, error)
}

// Food is a menu item with its prices interpreted. SellPrice is the
// display string and falls back to the not-available sentinel when the
// served price fields do not parse.
type Food struct {
	ID          uint
	Name        string
	Description string
	CuisineID   uint
	CuisineName string
	Image       string
	Stock       int
	UnitPrice   pricing.ParsedDecimal
	SellPrice   string
}

// Cuisine is one group of the projection
type Cuisine struct {
	ID    uint
	Name  string
	Foods []Food
}

// Projection is the fetched menu. Not safe for concurrent mutation; load
// once, then read.
type Projection struct {
	fetcher  Fetcher
	loaded   bool
	loadErr  error
	cuisines []Cuisine
	byID     map[uint]Food
}

// NewProjection creates an unloaded projection
func NewProjection(fetcher Fetcher) *Projection {
	return &Projection{fetcher: fetcher}
}

// Load fetches the menu once. A failed load is terminal for this
// projection; callers stop interacting until a fresh Load succeeds.
func (p *Projection) Load(ctx context.Context) error {
	groups, err := p.fetcher.CuisinesWithFood(ctx)
	if err != nil {
		p.loaded = false
		p.loadErr = fmt.Errorf("load menu: %w", err)
		return p.loadErr
	}

	cuisines := make([]Cuisine, 0, len(groups))
	byID := make(map[uint]Food)
	for _, g := range groups {
		foods := make([]Food, 0, len(g.Foods))
		for _, f := range g.Foods {
			food := projectFood(f)
			foods = append(foods, food)
			byID[food.ID] = food
		}
		cuisines = append(cuisines, Cuisine{ID: g.ID, Name: g.Name, Foods: foods})
	}

	p.cuisines = cuisines
	p.byID = byID
	p.loaded = true
	p.loadErr = nil
	return nil
}

func projectFood(f api.FoodItem) Food {
	food := Food{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		CuisineID:   f.CuisineID,
		CuisineName: f.CuisineName,
		Image:       f.Image,
		Stock:       f.StockQuantity,
		SellPrice:   pricing.SellPrice(f.DiscountPrice, f.VATPercentage),
	}
	d, errD := pricing.ParseDecimal(f.DiscountPrice)
	v, errV := pricing.ParseDecimal(f.VATPercentage)
	if errD == nil && errV == nil {
		if sell, ok := pricing.SellPriceDecimal(d, v); ok {
			food.UnitPrice = pricing.FromDecimal(sell)
		}
	}
	return food
}

// Loaded reports whether the last Load succeeded
func (p *Projection) Loaded() bool {
	return p.loaded
}

// Err returns the terminal error of the last failed Load
func (p *Projection) Err() error {
	return p.loadErr
}

// Cuisines returns the fetched groups
func (p *Projection) Cuisines() []Cuisine {
	out := make([]Cuisine, len(p.cuisines))
	copy(out, p.cuisines)
	return out
}

// FilterByCuisine returns the foods of one cuisine, or the flattened list
// when id is nil. An unknown id returns an empty slice.
func (p *Projection) FilterByCuisine(id *uint) []Food {
	if id == nil {
		var out []Food
		for _, c := range p.cuisines {
			out = append(out, c.Foods...)
		}
		if out == nil {
			out = []Food{}
		}
		return out
	}
	for _, c := range p.cuisines {
		if c.ID == *id {
			out := make([]Food, len(c.Foods))
			copy(out, c.Foods)
			return out
		}
	}
	return []Food{}
}

// FoodByID returns one food from the projection
func (p *Projection) FoodByID(id uint) (Food, bool) {
	f, ok := p.byID[id]
	return f, ok
}

// StockFor returns the last known stock for a food. Unknown foods report
// false; the cart treats that as a violation rather than guessing.
func (p *Projection) StockFor(foodID uint) (int, bool) {
	f, ok := p.byID[foodID]
	if !ok {
		return 0, false
	}
	return f.Stock, true
}

// FoodName returns a food's display name, empty when unknown
func (p *Projection) FoodName(foodID uint) string {
	return p.byID[foodID].Name
}

// FoodImage returns a food's image path, empty when unknown
func (p *Projection) FoodImage(foodID uint) string {
	return p.byID[foodID].Image
}

// PriceFor returns the freshest known unit price for a food
func (p *Projection) PriceFor(foodID uint) (pricing.ParsedDecimal, bool) {
	f, ok := p.byID[foodID]
	if !ok {
		return pricing.ParsedDecimal{}, false
	}
	return f.UnitPrice, true
}
