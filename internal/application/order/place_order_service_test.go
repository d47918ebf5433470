package order

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/foodcourt/storefront/internal/domain/cart"
	"github.com/foodcourt/storefront/internal/domain/catalog"
	"github.com/foodcourt/storefront/internal/domain/order"
	"github.com/foodcourt/storefront/internal/domain/shared"
)

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindRecent(ctx context.Context, limit int) ([]order.Order, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

// MockFoodRepository is a mock implementation of catalog.FoodRepository
type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) FindByID(ctx context.Context, id uint) (*catalog.Food, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Food), args.Error(1)
}

func (m *MockFoodRepository) FindByIDs(ctx context.Context, ids []uint) ([]catalog.Food, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Food), args.Error(1)
}

func (m *MockFoodRepository) FindAll(ctx context.Context) ([]catalog.Food, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Food), args.Error(1)
}

func (m *MockFoodRepository) Save(ctx context.Context, food *catalog.Food) error {
	args := m.Called(ctx, food)
	return args.Error(0)
}

func (m *MockFoodRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockGuestCartRepository is a mock implementation of cart.GuestCartRepository
type MockGuestCartRepository struct {
	mock.Mock
}

func (m *MockGuestCartRepository) FindByToken(ctx context.Context, token string) (*cart.GuestCart, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.GuestCart), args.Error(1)
}

func (m *MockGuestCartRepository) FindOrCreateByToken(ctx context.Context, token string) (*cart.GuestCart, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.GuestCart), args.Error(1)
}

func (m *MockGuestCartRepository) Save(ctx context.Context, c *cart.GuestCart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockGuestCartRepository) DeleteByToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

const testToken = "guest-22222222-2222-2222-2222-222222222222"

func newTestFood(id uint, name string, discount int64, vat int64, stock int) catalog.Food {
	f := catalog.Food{
		Name:          name,
		DiscountPrice: decimal.NewFromInt(discount),
		VATPercentage: decimal.NewFromInt(vat),
		StockQuantity: stock,
		CuisineID:     1,
		Status:        catalog.FoodStatusActive,
	}
	f.ID = id
	return f
}

func newTestRequest() *PlaceOrderRequest {
	return &PlaceOrderRequest{
		GuestCartToken:  testToken,
		CustomerName:    "Jordan Lee",
		DeliveryAddress: "12 Market Street",
		PhoneNumber:     "01700000000",
		Items: []PlaceOrderItemRequest{
			{FoodID: 1, Quantity: 2},
			{FoodID: 2, Quantity: 1},
		},
	}
}

func TestPlaceOrderService_Place_Success(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockFoodRepo := new(MockFoodRepository)
	mockCartRepo := new(MockGuestCartRepository)
	service := NewPlaceOrderService(NewNoOpTransactionScope(mockOrderRepo, mockFoodRepo, mockCartRepo))

	ctx := context.Background()
	foods := []catalog.Food{
		newTestFood(1, "Biryani", 100, 5, 10),
		newTestFood(2, "Sushi", 50, 0, 4),
	}

	mockFoodRepo.On("FindByIDs", ctx, []uint{1, 2}).Return(foods, nil)
	mockFoodRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Food")).Return(nil).Twice()
	mockOrderRepo.On("Save", ctx, mock.AnythingOfType("*order.Order")).Run(func(args mock.Arguments) {
		o := args.Get(1).(*order.Order)
		o.ID = 7
		// 2 * 105.00 + 1 * 50.00
		assert.Equal(t, "260", o.TotalAmount.String())
		assert.Equal(t, order.PaymentMethodCashOnDelivery, o.PaymentMethod)
		assert.Equal(t, order.OrderStatusPending, o.Status)
	}).Return(nil)
	mockCartRepo.On("DeleteByToken", ctx, testToken).Return(nil)

	result, err := service.Place(ctx, newTestRequest())

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, uint(7), result.OrderID)
	mockOrderRepo.AssertExpectations(t)
	mockFoodRepo.AssertExpectations(t)
	mockCartRepo.AssertExpectations(t)
}

func TestPlaceOrderService_Place_ReducesStock(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockFoodRepo := new(MockFoodRepository)
	mockCartRepo := new(MockGuestCartRepository)
	service := NewPlaceOrderService(NewNoOpTransactionScope(mockOrderRepo, mockFoodRepo, mockCartRepo))

	ctx := context.Background()
	foods := []catalog.Food{newTestFood(1, "Biryani", 100, 5, 10)}

	var savedStock int
	mockFoodRepo.On("FindByIDs", ctx, []uint{1}).Return(foods, nil)
	mockFoodRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Food")).Run(func(args mock.Arguments) {
		savedStock = args.Get(1).(*catalog.Food).StockQuantity
	}).Return(nil)
	mockOrderRepo.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(nil)
	mockCartRepo.On("DeleteByToken", ctx, testToken).Return(nil)

	req := newTestRequest()
	req.Items = []PlaceOrderItemRequest{{FoodID: 1, Quantity: 4}}
	_, err := service.Place(ctx, req)

	assert.NoError(t, err)
	assert.Equal(t, 6, savedStock)
}

func TestPlaceOrderService_Place_InsufficientStock(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockFoodRepo := new(MockFoodRepository)
	mockCartRepo := new(MockGuestCartRepository)
	service := NewPlaceOrderService(NewNoOpTransactionScope(mockOrderRepo, mockFoodRepo, mockCartRepo))

	ctx := context.Background()
	foods := []catalog.Food{newTestFood(1, "Biryani", 100, 5, 1)}

	mockFoodRepo.On("FindByIDs", ctx, []uint{1}).Return(foods, nil)

	req := newTestRequest()
	req.Items = []PlaceOrderItemRequest{{FoodID: 1, Quantity: 3}}
	result, err := service.Place(ctx, req)

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
	assert.Equal(t, "Only 1 in stock.", domainErr.Message)
	mockOrderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	mockCartRepo.AssertNotCalled(t, "DeleteByToken", mock.Anything, mock.Anything)
}

func TestPlaceOrderService_Place_UnknownFood(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockFoodRepo := new(MockFoodRepository)
	mockCartRepo := new(MockGuestCartRepository)
	service := NewPlaceOrderService(NewNoOpTransactionScope(mockOrderRepo, mockFoodRepo, mockCartRepo))

	ctx := context.Background()
	mockFoodRepo.On("FindByIDs", ctx, []uint{1}).Return([]catalog.Food{}, nil)

	req := newTestRequest()
	req.Items = []PlaceOrderItemRequest{{FoodID: 1, Quantity: 1}}
	result, err := service.Place(ctx, req)

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestPlaceOrderService_Place_InactiveFood(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockFoodRepo := new(MockFoodRepository)
	mockCartRepo := new(MockGuestCartRepository)
	service := NewPlaceOrderService(NewNoOpTransactionScope(mockOrderRepo, mockFoodRepo, mockCartRepo))

	ctx := context.Background()
	food := newTestFood(1, "Biryani", 100, 5, 10)
	food.Status = catalog.FoodStatusInactive
	mockFoodRepo.On("FindByIDs", ctx, []uint{1}).Return([]catalog.Food{food}, nil)

	req := newTestRequest()
	req.Items = []PlaceOrderItemRequest{{FoodID: 1, Quantity: 1}}
	result, err := service.Place(ctx, req)

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}
