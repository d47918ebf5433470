package cart

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodcourt/storefront/storefront/api"
	"github.com/foodcourt/storefront/storefront/pricing"
	"github.com/foodcourt/storefront/storefront/session"
)

// stubCatalog is a fixed menu snapshot
type stubCatalog struct {
	stock  map[uint]int
	prices map[uint]pricing.ParsedDecimal
	names  map[uint]string
}

func (s *stubCatalog) StockFor(foodID uint) (int, bool) {
	v, ok := s.stock[foodID]
	return v, ok
}

func (s *stubCatalog) PriceFor(foodID uint) (pricing.ParsedDecimal, bool) {
	v, ok := s.prices[foodID]
	return v, ok
}

func (s *stubCatalog) FoodName(foodID uint) string { return s.names[foodID] }
func (s *stubCatalog) FoodImage(uint) string       { return "" }

// stubSyncer records mutations and can fail on demand
type stubSyncer struct {
	mu       sync.Mutex
	cart     []api.CartItem
	cartErr  error
	update   error
	requests []api.UpdateCartRequest
}

func (s *stubSyncer) GuestCart(_ context.Context, _ string) ([]api.CartItem, error) {
	if s.cartErr != nil {
		return nil, s.cartErr
	}
	return s.cart, nil
}

func (s *stubSyncer) UpdateGuestCart(_ context.Context, req api.UpdateCartRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.update != nil {
		return s.update
	}
	s.requests = append(s.requests, req)
	return nil
}

func testCatalog() *stubCatalog {
	return &stubCatalog{
		stock: map[uint]int{1: 10, 2: 3},
		prices: map[uint]pricing.ParsedDecimal{
			1: pricing.MustParse("105.00"),
			2: pricing.MustParse("52.50"),
		},
		names: map[uint]string{1: "Biryani", 2: "Sushi"},
	}
}

func newTestStore(syncer *stubSyncer) *Store {
	identity := session.NewIdentity(session.NewMemoryStore())
	return NewStore(syncer, testCatalog(), identity)
}

func TestStore_Load_RebuildsLines(t *testing.T) {
	syncer := &stubSyncer{cart: []api.CartItem{
		{FoodID: 1, FoodName: "Biryani", Quantity: 2, Price: "99.00"},
	}}
	store := newTestStore(syncer)

	require.NoError(t, store.Load(context.Background()))

	lines := store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	// the menu snapshot's price wins over the server's stored snapshot
	assert.Equal(t, "105.00", lines[0].UnitPrice.String())
}

func TestStore_Load_UnknownTokenIsEmptyCart(t *testing.T) {
	syncer := &stubSyncer{cartErr: &api.APIError{StatusCode: 404, Message: "Resource not found"}}
	store := newTestStore(syncer)

	require.NoError(t, store.Load(context.Background()))
	assert.True(t, store.IsEmpty())
}

func TestStore_Load_FailureFallsBackWithWarning(t *testing.T) {
	syncer := &stubSyncer{cartErr: &api.RequestError{Op: "GET", Err: errors.New("refused")}}
	store := newTestStore(syncer)

	err := store.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCartUnavailable)
	assert.True(t, store.IsEmpty())
}

func TestStore_SetQuantity_AddsLine(t *testing.T) {
	syncer := &stubSyncer{}
	store := newTestStore(syncer)

	require.NoError(t, store.SetQuantity(context.Background(), 1, 2))

	lines := store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Biryani", lines[0].FoodName)
	assert.Equal(t, 2, lines[0].Quantity)
	require.Len(t, syncer.requests, 1)
	assert.Equal(t, 2, syncer.requests[0].Quantity)
	assert.NotEmpty(t, syncer.requests[0].CartToken)
}

func TestStore_SetQuantity_ZeroRemovesLine(t *testing.T) {
	syncer := &stubSyncer{}
	store := newTestStore(syncer)
	require.NoError(t, store.SetQuantity(context.Background(), 1, 2))

	require.NoError(t, store.SetQuantity(context.Background(), 1, 0))

	assert.True(t, store.IsEmpty())
	assert.Equal(t, 0, store.Quantity(1))
}

func TestStore_SetQuantity_StockViolationLeavesCartUnchanged(t *testing.T) {
	syncer := &stubSyncer{}
	store := newTestStore(syncer)
	require.NoError(t, store.SetQuantity(context.Background(), 2, 2))

	err := store.SetQuantity(context.Background(), 2, 5)

	require.Error(t, err)
	var violation *StockViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, 3, violation.Available)
	assert.Equal(t, "Only 3 in stock.", violation.Error())
	assert.Equal(t, 2, store.Quantity(2))
	// the rejected mutation never reached the server
	require.Len(t, syncer.requests, 1)
}

func TestStore_SetQuantity_UnknownFood(t *testing.T) {
	store := newTestStore(&stubSyncer{})

	err := store.SetQuantity(context.Background(), 99, 1)
	assert.ErrorIs(t, err, ErrUnknownFood)
}

func TestStore_SetQuantity_NegativeQuantity(t *testing.T) {
	store := newTestStore(&stubSyncer{})

	err := store.SetQuantity(context.Background(), 1, -1)
	assert.ErrorIs(t, err, ErrNegativeQuantity)
}

func TestStore_SetQuantity_ServerFailureLeavesCartUnchanged(t *testing.T) {
	syncer := &stubSyncer{}
	store := newTestStore(syncer)
	require.NoError(t, store.SetQuantity(context.Background(), 1, 2))

	syncer.update = &api.APIError{StatusCode: 500, Message: "boom"}
	err := store.SetQuantity(context.Background(), 1, 5)

	require.Error(t, err)
	assert.Equal(t, 2, store.Quantity(1))
}

func TestStore_IncrementDecrement(t *testing.T) {
	store := newTestStore(&stubSyncer{})
	ctx := context.Background()

	require.NoError(t, store.Increment(ctx, 1))
	require.NoError(t, store.Increment(ctx, 1))
	assert.Equal(t, 2, store.Quantity(1))

	require.NoError(t, store.Decrement(ctx, 1))
	assert.Equal(t, 1, store.Quantity(1))

	// decrementing the last unit removes the line
	require.NoError(t, store.Decrement(ctx, 1))
	assert.True(t, store.IsEmpty())

	// decrementing an absent line is a no-op
	require.NoError(t, store.Decrement(ctx, 1))
}

func TestStore_Total(t *testing.T) {
	store := newTestStore(&stubSyncer{})
	ctx := context.Background()

	require.NoError(t, store.SetQuantity(ctx, 1, 2))
	require.NoError(t, store.SetQuantity(ctx, 2, 3))

	// 2*105.00 + 3*52.50
	assert.Equal(t, "367.50", store.TotalString())
}

func TestStore_SerializedMutations(t *testing.T) {
	syncer := &stubSyncer{}
	store := newTestStore(syncer)
	ctx := context.Background()

	var wg sync.WaitGroup
	for q := 1; q <= 8; q++ {
		wg.Add(1)
		go func(q int) {
			defer wg.Done()
			_ = store.SetQuantity(ctx, 1, q)
		}(q)
	}
	wg.Wait()

	// every accepted mutation reached the server exactly once, and the
	// working copy matches the last request that went out
	require.Len(t, syncer.requests, 8)
	last := syncer.requests[len(syncer.requests)-1]
	assert.Equal(t, last.Quantity, store.Quantity(1))
}
