package dashboard

import (
	"context"

	apporder "github.com/foodcourt/storefront/internal/application/order"
	"github.com/foodcourt/storefront/internal/domain/catalog"
	"github.com/foodcourt/storefront/internal/domain/order"
)

const recentOrderLimit = 10

// Stats is the admin dashboard summary
type Stats struct {
	TotalFoods    int                       `json:"total_foods"`
	ActiveFoods   int                       `json:"active_foods"`
	TotalCuisines int                       `json:"total_cuisines"`
	TotalOrders   int64                     `json:"total_orders"`
	RecentOrders  []*apporder.OrderResponse `json:"recent_orders"`
}

// DashboardService aggregates catalog and order figures for the admin console
type DashboardService struct {
	foodRepo    catalog.FoodRepository
	cuisineRepo catalog.CuisineRepository
	orderRepo   order.OrderRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(foodRepo catalog.FoodRepository, cuisineRepo catalog.CuisineRepository, orderRepo order.OrderRepository) *DashboardService {
	return &DashboardService{foodRepo: foodRepo, cuisineRepo: cuisineRepo, orderRepo: orderRepo}
}

// Stats collects the dashboard summary
func (s *DashboardService) Stats(ctx context.Context) (*Stats, error) {
	foods, err := s.foodRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	active := 0
	for i := range foods {
		if foods[i].IsActive() {
			active++
		}
	}

	cuisines, err := s.cuisineRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	orderCount, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.orderRepo.FindRecent(ctx, recentOrderLimit)
	if err != nil {
		return nil, err
	}
	recentResponses := make([]*apporder.OrderResponse, 0, len(recent))
	for i := range recent {
		recentResponses = append(recentResponses, apporder.ToOrderResponse(&recent[i]))
	}

	return &Stats{
		TotalFoods:    len(foods),
		ActiveFoods:   active,
		TotalCuisines: len(cuisines),
		TotalOrders:   orderCount,
		RecentOrders:  recentResponses,
	}, nil
}
