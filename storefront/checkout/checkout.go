// Package checkout drives the order submission state machine. A flow
// reviews the current cart, submits it once, and carries the confirmed
// order's snapshot; any failure returns it to reviewing.
package checkout

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/foodcourt/storefront/storefront/api"
	"github.com/foodcourt/storefront/storefront/cart"
	"github.com/foodcourt/storefront/storefront/session"
)

// PaymentMethod is the only supported payment method
const PaymentMethod = "Cash on Delivery"

// State is the flow's position in the checkout state machine
type State int

const (
	// Reviewing is the initial state: the cart is editable, nothing sent
	Reviewing State = iota
	// Submitting means a request is in flight; further submissions are
	// rejected
	Submitting
	// Confirmed is terminal: the order exists and the flow carries its
	// snapshot
	Confirmed
)

// String returns the state's name
func (s State) String() string {
	switch s {
	case Reviewing:
		return "reviewing"
	case Submitting:
		return "submitting"
	case Confirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// ErrEmptyCart is returned when checkout is entered or submitted with no
// lines; the caller redirects back to the menu
var ErrEmptyCart = errors.New("checkout: cart is empty")

// ErrNotReviewing is returned when PlaceOrder is called outside the
// Reviewing state
var ErrNotReviewing = errors.New("checkout: submission already in progress or completed")

// ValidationError is a client-side rejection; nothing was sent
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

// Details are the delivery details the customer fills in
type Details struct {
	CustomerName    string
	DeliveryAddress string
	PhoneNumber     string
	OrderNotes      string
}

// Confirmation is the snapshot carried into the Confirmed state
type Confirmation struct {
	OrderID uint
	Details Details
	Lines   []cart.Line
	Total   string
}

// Submitter is the slice of the API client the flow needs
type Submitter interface {
	PlaceOrder(ctx context.Context, req api.PlaceOrderRequest) (*api.OrderPlaced, error)
}

// Flow is one checkout attempt over the current cart
type Flow struct {
	mu           sync.Mutex
	state        State
	cartStore    *cart.Store
	submitter    Submitter
	identity     *session.Identity
	confirmation *Confirmation
}

// NewFlow starts a checkout over the given cart. An empty cart cannot
// enter checkout.
func NewFlow(cartStore *cart.Store, submitter Submitter, identity *session.Identity) (*Flow, error) {
	if cartStore.IsEmpty() {
		return nil, ErrEmptyCart
	}
	return &Flow{
		state:     Reviewing,
		cartStore: cartStore,
		submitter: submitter,
		identity:  identity,
	}, nil
}

// State returns the flow's current state
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Confirmation returns the confirmed order's snapshot, only once Confirmed
func (f *Flow) Confirmation() (*Confirmation, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != Confirmed {
		return nil, false
	}
	return f.confirmation, true
}

// PlaceOrder validates the details and submits the cart once. Validation
// and server failures leave the flow in Reviewing with the cart intact;
// success clears the guest cart token and moves to Confirmed.
func (f *Flow) PlaceOrder(ctx context.Context, details Details) (*Confirmation, error) {
	f.mu.Lock()
	if f.state != Reviewing {
		f.mu.Unlock()
		return nil, ErrNotReviewing
	}

	if strings.TrimSpace(details.CustomerName) == "" ||
		strings.TrimSpace(details.DeliveryAddress) == "" ||
		strings.TrimSpace(details.PhoneNumber) == "" {
		f.mu.Unlock()
		return nil, &ValidationError{Message: "Please fill in all required delivery details."}
	}

	lines := f.cartStore.Lines()
	if len(lines) == 0 {
		f.mu.Unlock()
		return nil, ErrEmptyCart
	}

	payload := buildPayload(f.identity.CartToken(), details, lines, f.cartStore.TotalString())

	f.state = Submitting
	f.mu.Unlock()

	placed, err := f.submitter.PlaceOrder(ctx, payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = Reviewing
		return nil, err
	}

	// the server consumed the cart; forget the token so the next visit
	// starts fresh
	if clearErr := f.identity.ClearCartToken(); clearErr != nil {
		f.state = Reviewing
		return nil, clearErr
	}
	f.cartStore.Reset()

	f.confirmation = &Confirmation{
		OrderID: placed.OrderID,
		Details: details,
		Lines:   lines,
		Total:   payload.TotalAmount,
	}
	f.state = Confirmed
	return f.confirmation, nil
}

// buildPayload snapshots the cart lines into a submission. Prices are
// sent as captured at checkout time; the server recomputes them anyway.
func buildPayload(token string, details Details, lines []cart.Line, total string) api.PlaceOrderRequest {
	items := make([]api.PlaceOrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, api.PlaceOrderItem{
			FoodID:       line.FoodID,
			FoodName:     line.FoodName,
			Quantity:     line.Quantity,
			PriceAtOrder: line.UnitPrice.String(),
			Image:        line.Image,
		})
	}
	return api.PlaceOrderRequest{
		GuestCartToken:  token,
		CustomerName:    details.CustomerName,
		DeliveryAddress: details.DeliveryAddress,
		PhoneNumber:     details.PhoneNumber,
		OrderNotes:      details.OrderNotes,
		Items:           items,
		TotalAmount:     total,
		PaymentMethod:   PaymentMethod,
	}
}
