package persistence

import (
	"context"

	"gorm.io/gorm"

	apporder "github.com/foodcourt/storefront/internal/application/order"
	"github.com/foodcourt/storefront/internal/domain/cart"
	"github.com/foodcourt/storefront/internal/domain/catalog"
	"github.com/foodcourt/storefront/internal/domain/order"
)

// GormTransactionScope executes order placement inside a database transaction
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs fn with repositories bound to a single transaction. Any
// error rolls the whole transaction back.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos apporder.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) OrderRepo() order.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

func (r *gormTransactionalRepositories) FoodRepo() catalog.FoodRepository {
	return NewGormFoodRepository(r.tx)
}

func (r *gormTransactionalRepositories) CartRepo() cart.GuestCartRepository {
	return NewGormGuestCartRepository(r.tx)
}

var _ apporder.TransactionScope = (*GormTransactionScope)(nil)
