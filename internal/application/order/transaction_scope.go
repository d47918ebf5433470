package order

import (
	"context"

	"github.com/foodcourt/storefront/internal/domain/cart"
	"github.com/foodcourt/storefront/internal/domain/catalog"
	"github.com/foodcourt/storefront/internal/domain/order"
)

// TransactionScope provides transactional access to the repositories order
// placement touches. Stock decrement, order insert and cart retirement
// commit or roll back together.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides repositories bound to one transaction
type TransactionalRepositories interface {
	OrderRepo() order.OrderRepository
	FoodRepo() catalog.FoodRepository
	CartRepo() cart.GuestCartRepository
}

// NoOpTransactionScope runs the function without a surrounding transaction.
// Used by tests with mock repositories.
type NoOpTransactionScope struct {
	orderRepo order.OrderRepository
	foodRepo  catalog.FoodRepository
	cartRepo  cart.GuestCartRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(
	orderRepo order.OrderRepository,
	foodRepo catalog.FoodRepository,
	cartRepo cart.GuestCartRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{orderRepo: orderRepo, foodRepo: foodRepo, cartRepo: cartRepo}
}

// Execute runs fn directly against the wrapped repositories
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// OrderRepo returns the order repository
func (s *NoOpTransactionScope) OrderRepo() order.OrderRepository { return s.orderRepo }

// FoodRepo returns the food repository
func (s *NoOpTransactionScope) FoodRepo() catalog.FoodRepository { return s.foodRepo }

// CartRepo returns the guest cart repository
func (s *NoOpTransactionScope) CartRepo() cart.GuestCartRepository { return s.cartRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
