package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodcourt/storefront/storefront/api"
	"github.com/foodcourt/storefront/storefront/cart"
	"github.com/foodcourt/storefront/storefront/pricing"
	"github.com/foodcourt/storefront/storefront/session"
)

// stubSubmitter records submissions and can fail on demand
type stubSubmitter struct {
	mu       sync.Mutex
	err      error
	placed   *api.OrderPlaced
	requests []api.PlaceOrderRequest
}

func (s *stubSubmitter) PlaceOrder(_ context.Context, req api.PlaceOrderRequest) (*api.OrderPlaced, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	if s.err != nil {
		return nil, s.err
	}
	return s.placed, nil
}

type stubCatalog struct{}

func (stubCatalog) StockFor(uint) (int, bool) { return 10, true }
func (stubCatalog) PriceFor(foodID uint) (pricing.ParsedDecimal, bool) {
	if foodID == 2 {
		return pricing.MustParse("52.50"), true
	}
	return pricing.MustParse("105.00"), true
}
func (stubCatalog) FoodName(foodID uint) string {
	if foodID == 2 {
		return "Sushi"
	}
	return "Biryani"
}
func (stubCatalog) FoodImage(uint) string { return "biryani.jpg" }

type stubSyncer struct{}

func (stubSyncer) GuestCart(context.Context, string) ([]api.CartItem, error) { return nil, nil }
func (stubSyncer) UpdateGuestCart(context.Context, api.UpdateCartRequest) error {
	return nil
}

// filledCart returns a cart with two lines and the identity it belongs to
func filledCart(t *testing.T) (*cart.Store, *session.Identity) {
	t.Helper()
	identity := session.NewIdentity(session.NewMemoryStore())
	store := cart.NewStore(stubSyncer{}, stubCatalog{}, identity)
	require.NoError(t, store.SetQuantity(context.Background(), 1, 2))
	require.NoError(t, store.SetQuantity(context.Background(), 2, 3))
	return store, identity
}

func validDetails() Details {
	return Details{
		CustomerName:    "Ada Lovelace",
		DeliveryAddress: "12 Analytical Lane",
		PhoneNumber:     "555-0101",
		OrderNotes:      "Ring twice",
	}
}

func TestNewFlow_EmptyCart(t *testing.T) {
	identity := session.NewIdentity(session.NewMemoryStore())
	store := cart.NewStore(stubSyncer{}, stubCatalog{}, identity)

	flow, err := NewFlow(store, &stubSubmitter{}, identity)

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, flow)
}

func TestFlow_PlaceOrder_Success(t *testing.T) {
	store, identity := filledCart(t)
	token := identity.CartToken()
	require.NotEmpty(t, token)
	submitter := &stubSubmitter{placed: &api.OrderPlaced{Success: true, OrderID: 42}}

	flow, err := NewFlow(store, submitter, identity)
	require.NoError(t, err)

	conf, err := flow.PlaceOrder(context.Background(), validDetails())
	require.NoError(t, err)

	assert.Equal(t, Confirmed, flow.State())
	assert.Equal(t, uint(42), conf.OrderID)
	assert.Equal(t, "Ada Lovelace", conf.Details.CustomerName)
	assert.Len(t, conf.Lines, 2)
	// 2 * 105.00 + 3 * 52.50
	assert.Equal(t, "367.50", conf.Total)

	// the cart and its token are retired on success
	assert.True(t, store.IsEmpty())
	assert.Empty(t, identity.CartToken())

	require.Len(t, submitter.requests, 1)
	req := submitter.requests[0]
	assert.Equal(t, token, req.GuestCartToken)
	assert.Equal(t, PaymentMethod, req.PaymentMethod)
	assert.Equal(t, "367.50", req.TotalAmount)
	require.Len(t, req.Items, 2)
	assert.Equal(t, uint(1), req.Items[0].FoodID)
	assert.Equal(t, "Biryani", req.Items[0].FoodName)
	assert.Equal(t, 2, req.Items[0].Quantity)
	assert.Equal(t, "105.00", req.Items[0].PriceAtOrder)
	assert.Equal(t, "biryani.jpg", req.Items[0].Image)
}

func TestFlow_PlaceOrder_MissingDeliveryDetails(t *testing.T) {
	store, identity := filledCart(t)
	submitter := &stubSubmitter{placed: &api.OrderPlaced{Success: true, OrderID: 7}}
	flow, err := NewFlow(store, submitter, identity)
	require.NoError(t, err)

	details := validDetails()
	details.DeliveryAddress = "  "

	conf, err := flow.PlaceOrder(context.Background(), details)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Please fill in all required delivery details.", validationErr.Error())
	assert.Nil(t, conf)

	// nothing was sent and the cart is untouched
	assert.Empty(t, submitter.requests)
	assert.Equal(t, Reviewing, flow.State())
	assert.False(t, store.IsEmpty())
	assert.NotEmpty(t, identity.CartToken())
}

func TestFlow_PlaceOrder_ServerFailureReturnsToReviewing(t *testing.T) {
	store, identity := filledCart(t)
	serverErr := &api.APIError{StatusCode: 422, Message: "Only 1 in stock."}
	flow, err := NewFlow(store, &stubSubmitter{err: serverErr}, identity)
	require.NoError(t, err)

	conf, err := flow.PlaceOrder(context.Background(), validDetails())

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Only 1 in stock.", apiErr.Message)
	assert.Nil(t, conf)

	assert.Equal(t, Reviewing, flow.State())
	assert.False(t, store.IsEmpty())
	assert.NotEmpty(t, identity.CartToken())
}

func TestFlow_PlaceOrder_NetworkFailureAllowsRetry(t *testing.T) {
	store, identity := filledCart(t)
	submitter := &stubSubmitter{err: errors.New("connection refused")}
	flow, err := NewFlow(store, submitter, identity)
	require.NoError(t, err)

	_, err = flow.PlaceOrder(context.Background(), validDetails())
	require.Error(t, err)
	assert.Equal(t, Reviewing, flow.State())

	submitter.mu.Lock()
	submitter.err = nil
	submitter.placed = &api.OrderPlaced{Success: true, OrderID: 9}
	submitter.mu.Unlock()

	conf, err := flow.PlaceOrder(context.Background(), validDetails())
	require.NoError(t, err)
	assert.Equal(t, uint(9), conf.OrderID)
	assert.Equal(t, Confirmed, flow.State())
}

func TestFlow_PlaceOrder_RejectedAfterConfirmed(t *testing.T) {
	store, identity := filledCart(t)
	submitter := &stubSubmitter{placed: &api.OrderPlaced{Success: true, OrderID: 3}}
	flow, err := NewFlow(store, submitter, identity)
	require.NoError(t, err)

	_, err = flow.PlaceOrder(context.Background(), validDetails())
	require.NoError(t, err)

	_, err = flow.PlaceOrder(context.Background(), validDetails())
	assert.ErrorIs(t, err, ErrNotReviewing)
	assert.Len(t, submitter.requests, 1)
}

func TestFlow_Confirmation_OnlyWhenConfirmed(t *testing.T) {
	store, identity := filledCart(t)
	submitter := &stubSubmitter{placed: &api.OrderPlaced{Success: true, OrderID: 5}}
	flow, err := NewFlow(store, submitter, identity)
	require.NoError(t, err)

	_, ok := flow.Confirmation()
	assert.False(t, ok)

	_, err = flow.PlaceOrder(context.Background(), validDetails())
	require.NoError(t, err)

	conf, ok := flow.Confirmation()
	require.True(t, ok)
	assert.Equal(t, uint(5), conf.OrderID)
}
