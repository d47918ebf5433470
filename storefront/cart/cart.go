// Package cart keeps the client's working copy of the server-held guest
// cart. The server owns the lines; this store sends full desired state for
// one line at a time and reconciles its copy only after the server accepts.
package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/foodcourt/storefront/storefront/api"
	"github.com/foodcourt/storefront/storefront/pricing"
	"github.com/foodcourt/storefront/storefront/session"
)

// ErrCartUnavailable wraps a failed cart fetch; the store falls back to an
// empty cart and the caller surfaces a warning instead of halting
var ErrCartUnavailable = errors.New("cart: server cart unavailable")

// ErrUnknownFood is returned when a mutation names a food the menu
// snapshot does not know
var ErrUnknownFood = errors.New("cart: food not in menu snapshot")

// ErrNegativeQuantity is returned for negative desired quantities
var ErrNegativeQuantity = errors.New("cart: quantity cannot be negative")

// StockViolation is returned when the desired quantity exceeds the last
// known stock. The cart is left unchanged.
type StockViolation struct {
	FoodID    uint
	Requested int
	Available int
}

// Error implements the error interface
func (e *StockViolation) Error() string {
	return fmt.Sprintf("Only %d in stock.", e.Available)
}

// Catalog is the menu snapshot the store checks quantities and prices
// against
type Catalog interface {
	StockFor(foodID uint) (int, bool)
	PriceFor(foodID uint) (pricing.ParsedDecimal, bool)
}

// Describer optionally enriches lines with display data. The menu
// projection satisfies it via FoodByID.
type Describer interface {
	FoodName(foodID uint) string
	FoodImage(foodID uint) string
}

// Syncer is the slice of the API client the store needs
type Syncer interface {
	GuestCart(ctx context.Context, token string) ([]api.CartItem, error)
	UpdateGuestCart(ctx context.Context, req api.UpdateCartRequest) error
}

// Line is one food's entry in the working copy
type Line struct {
	FoodID    uint
	FoodName  string
	Quantity  int
	UnitPrice pricing.ParsedDecimal
	Image     string
}

// Total returns quantity times unit price
func (l Line) Total() decimal.Decimal {
	return pricing.LineTotal(l.UnitPrice, l.Quantity)
}

// Store is the guest cart working copy. All mutations for the token are
// serialized through one mutex, so overlapping calls apply in order and a
// stale response can never overwrite a newer one.
type Store struct {
	mu       sync.Mutex
	syncer   Syncer
	catalog  Catalog
	identity *session.Identity
	lines    []Line
}

// NewStore creates a Store over the given collaborators
func NewStore(syncer Syncer, catalog Catalog, identity *session.Identity) *Store {
	return &Store{syncer: syncer, catalog: catalog, identity: identity}
}

// Load replaces the working copy with the server's lines for this token.
// Unknown tokens read as an empty cart. Any other failure also yields an
// empty cart but returns an ErrCartUnavailable warning the caller shows.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.identity.EnsureCartToken()
	if err != nil {
		return err
	}

	items, err := s.syncer.GuestCart(ctx, token)
	if err != nil {
		s.lines = nil
		if api.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrCartUnavailable, err)
	}

	lines := make([]Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, s.toLine(it))
	}
	s.lines = lines
	return nil
}

// toLine rebuilds one line, preferring the freshest known price from the
// menu snapshot over the server's stored snapshot
func (s *Store) toLine(it api.CartItem) Line {
	line := Line{
		FoodID:   it.FoodID,
		FoodName: it.FoodName,
		Quantity: it.Quantity,
		Image:    it.Image,
	}
	if price, ok := s.catalog.PriceFor(it.FoodID); ok {
		line.UnitPrice = price
	} else if parsed, err := pricing.ParseDecimal(it.Price); err == nil {
		line.UnitPrice = parsed
	}
	return line
}

// SetQuantity is the sole mutation path: it sends the full desired state
// of one line and reconciles the working copy only on success. Quantity 0
// removes the line. A desired quantity above the last known stock fails
// with StockViolation and changes nothing.
func (s *Store) SetQuantity(ctx context.Context, foodID uint, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setQuantityLocked(ctx, foodID, quantity)
}

func (s *Store) setQuantityLocked(ctx context.Context, foodID uint, quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	if quantity > 0 {
		stock, ok := s.catalog.StockFor(foodID)
		if !ok {
			return ErrUnknownFood
		}
		if quantity > stock {
			return &StockViolation{FoodID: foodID, Requested: quantity, Available: stock}
		}
	}

	token, err := s.identity.EnsureCartToken()
	if err != nil {
		return err
	}
	if err := s.syncer.UpdateGuestCart(ctx, api.UpdateCartRequest{
		FoodID:    foodID,
		Quantity:  quantity,
		CartToken: token,
	}); err != nil {
		return err
	}

	s.reconcile(foodID, quantity)
	return nil
}

func (s *Store) reconcile(foodID uint, quantity int) {
	idx := -1
	for i := range s.lines {
		if s.lines[i].FoodID == foodID {
			idx = i
			break
		}
	}

	if quantity == 0 {
		if idx >= 0 {
			s.lines = append(s.lines[:idx], s.lines[idx+1:]...)
		}
		return
	}

	price, _ := s.catalog.PriceFor(foodID)
	if idx >= 0 {
		s.lines[idx].Quantity = quantity
		s.lines[idx].UnitPrice = price
		return
	}

	line := Line{FoodID: foodID, Quantity: quantity, UnitPrice: price}
	if d, ok := s.catalog.(Describer); ok {
		line.FoodName = d.FoodName(foodID)
		line.Image = d.FoodImage(foodID)
	}
	s.lines = append(s.lines, line)
}

// Increment raises a line's quantity by one
func (s *Store) Increment(ctx context.Context, foodID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setQuantityLocked(ctx, foodID, s.quantityLocked(foodID)+1)
}

// Decrement lowers a line's quantity by one; at one it removes the line
func (s *Store) Decrement(ctx context.Context, foodID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current := s.quantityLocked(foodID)
	if current == 0 {
		return nil
	}
	return s.setQuantityLocked(ctx, foodID, current-1)
}

// Quantity returns the working copy's quantity for a food, 0 when absent
func (s *Store) Quantity(foodID uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quantityLocked(foodID)
}

func (s *Store) quantityLocked(foodID uint) int {
	for i := range s.lines {
		if s.lines[i].FoodID == foodID {
			return s.lines[i].Quantity
		}
	}
	return 0
}

// Lines returns a snapshot copy of the working copy
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// IsEmpty reports whether the working copy has no lines
func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}

// Total sums the line totals, rounded once at the end
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]pricing.Line, 0, len(s.lines))
	for _, l := range s.lines {
		lines = append(lines, pricing.Line{UnitPrice: l.UnitPrice, Quantity: l.Quantity})
	}
	return pricing.CartTotal(lines)
}

// TotalString renders the total at two decimal places
func (s *Store) TotalString() string {
	return pricing.FormatAmount(s.Total())
}

// Reset drops the working copy. Checkout calls this after the server has
// consumed the cart.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}
