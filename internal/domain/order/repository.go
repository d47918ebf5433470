package order

import "context"

// OrderRepository defines persistence operations for orders
type OrderRepository interface {
	FindByID(ctx context.Context, id uint) (*Order, error)
	FindRecent(ctx context.Context, limit int) ([]Order, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, order *Order) error
}
