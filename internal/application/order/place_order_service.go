package order

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/foodcourt/storefront/internal/domain/order"
	"github.com/foodcourt/storefront/internal/domain/shared"
)

// PlaceOrderService turns a submitted cart into a stored order. Placement
// runs inside one transaction: stock is re-checked and decremented, the
// order is inserted and the guest cart is retired atomically.
type PlaceOrderService struct {
	txScope TransactionScope
}

// NewPlaceOrderService creates a new PlaceOrderService
func NewPlaceOrderService(txScope TransactionScope) *PlaceOrderService {
	return &PlaceOrderService{txScope: txScope}
}

// Place validates the submission against current catalog state and persists
// the order. Client-supplied prices and totals are ignored; the stored
// snapshot is priced from the catalog at placement time.
func (s *PlaceOrderService) Place(ctx context.Context, req *PlaceOrderRequest) (*PlaceOrderResponse, error) {
	var placed *order.Order

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		ids := make([]uint, 0, len(req.Items))
		for _, it := range req.Items {
			ids = append(ids, it.FoodID)
		}
		foods, err := repos.FoodRepo().FindByIDs(ctx, ids)
		if err != nil {
			return err
		}
		byID := make(map[uint]int, len(foods))
		for i := range foods {
			byID[foods[i].ID] = i
		}

		items := make([]order.OrderItem, 0, len(req.Items))
		total := decimal.Zero
		for _, it := range req.Items {
			idx, ok := byID[it.FoodID]
			if !ok {
				return shared.NewDomainError("NOT_FOUND", fmt.Sprintf("Food %d is no longer available", it.FoodID))
			}
			food := &foods[idx]
			if !food.IsActive() {
				return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("%s is no longer available", food.Name))
			}
			if err := food.ReduceStock(it.Quantity); err != nil {
				return shared.NewDomainError("INSUFFICIENT_STOCK", fmt.Sprintf("Only %d in stock.", food.StockQuantity))
			}
			price := food.SellPrice()
			items = append(items, order.OrderItem{
				FoodID:       food.ID,
				FoodName:     food.Name,
				Quantity:     it.Quantity,
				PriceAtOrder: price,
				Image:        food.Image,
			})
			total = total.Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}

		o, err := order.NewOrder(order.NewOrderInput{
			GuestCartToken:  req.GuestCartToken,
			CustomerName:    req.CustomerName,
			DeliveryAddress: req.DeliveryAddress,
			PhoneNumber:     req.PhoneNumber,
			OrderNotes:      req.OrderNotes,
			TotalAmount:     total.Round(2),
			Items:           items,
		})
		if err != nil {
			return err
		}

		for i := range foods {
			if err := repos.FoodRepo().Save(ctx, &foods[i]); err != nil {
				return err
			}
		}
		if err := repos.OrderRepo().Save(ctx, o); err != nil {
			return err
		}
		if err := repos.CartRepo().DeleteByToken(ctx, req.GuestCartToken); err != nil {
			return err
		}
		placed = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &PlaceOrderResponse{OrderID: placed.ID}, nil
}
