// Package integration exercises the storefront end to end: the SDK talks
// to the real HTTP server backed by an in-memory SQLite database.
package integration

import (
	"context"
	"fmt"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcart "github.com/foodcourt/storefront/internal/application/cart"
	appcatalog "github.com/foodcourt/storefront/internal/application/catalog"
	appdashboard "github.com/foodcourt/storefront/internal/application/dashboard"
	appidentity "github.com/foodcourt/storefront/internal/application/identity"
	apporder "github.com/foodcourt/storefront/internal/application/order"
	"github.com/foodcourt/storefront/internal/domain/catalog"
	"github.com/foodcourt/storefront/internal/infrastructure/auth"
	"github.com/foodcourt/storefront/internal/infrastructure/config"
	"github.com/foodcourt/storefront/internal/infrastructure/persistence"
	"github.com/foodcourt/storefront/internal/interfaces/http/handler"
	"github.com/foodcourt/storefront/internal/interfaces/http/middleware"
	"github.com/foodcourt/storefront/internal/interfaces/http/router"
	"github.com/foodcourt/storefront/storefront/api"
	"github.com/foodcourt/storefront/storefront/cart"
	"github.com/foodcourt/storefront/storefront/checkout"
	"github.com/foodcourt/storefront/storefront/menu"
	"github.com/foodcourt/storefront/storefront/session"
)

var testCounter atomic.Uint64

// TestServer is the full storefront stack over SQLite
type TestServer struct {
	HTTP        *httptest.Server
	DB          *persistence.Database
	CuisineRepo *persistence.GormCuisineRepository
	FoodRepo    *persistence.GormFoodRepository
}

// NewTestServer wires repositories, services, handlers and the router the
// same way cmd/server does
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := persistence.NewSQLiteDatabase()
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	cuisineRepo := persistence.NewGormCuisineRepository(db.DB)
	foodRepo := persistence.NewGormFoodRepository(db.DB)
	cartRepo := persistence.NewGormGuestCartRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:     "integration-test-secret-0123456789",
		Expiration: time.Hour,
		Issuer:     "storefront-test",
	})
	blacklist := auth.NewInMemoryTokenBlacklist()

	menuHandler := handler.NewMenuHandler(appcatalog.NewMenuService(cuisineRepo))
	cartHandler := handler.NewCartHandler(appcart.NewGuestCartService(cartRepo, foodRepo))
	orderHandler := handler.NewOrderHandler(apporder.NewPlaceOrderService(txScope))
	authHandler := handler.NewAuthHandler(appidentity.NewAuthService(userRepo, jwtService, blacklist))
	foodHandler := handler.NewFoodHandler(appcatalog.NewFoodService(foodRepo, cuisineRepo))
	cuisineHandler := handler.NewCuisineHandler(appcatalog.NewCuisineService(cuisineRepo))
	dashboardHandler := handler.NewDashboardHandler(
		appdashboard.NewDashboardService(foodRepo, cuisineRepo, orderRepo))

	engine := gin.New()
	r := router.NewRouter(engine)
	r.Public(
		menuHandler,
		cartHandler,
		orderHandler,
		router.RegistrarFunc(authHandler.RegisterPublicRoutes),
	)
	r.WithAuthMiddleware(middleware.JWTAuth(jwtService, blacklist))
	r.Protected(
		foodHandler,
		cuisineHandler,
		dashboardHandler,
		router.RegistrarFunc(authHandler.RegisterProtectedRoutes),
	)
	r.Setup()

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	return &TestServer{
		HTTP:        srv,
		DB:          db,
		CuisineRepo: cuisineRepo,
		FoodRepo:    foodRepo,
	}
}

// NewClient creates an SDK client against the test server with its own
// session state
func (ts *TestServer) NewClient(t *testing.T) (*api.Client, *session.Identity) {
	t.Helper()
	identity := session.NewIdentity(session.NewMemoryStore())
	client := api.NewClient(api.Config{
		BaseURL:  ts.HTTP.URL,
		Identity: identity,
	})
	return client, identity
}

// SeedCuisine inserts a cuisine with two foods and returns it with IDs set.
// Names are uniqued because the SQLite cache is shared within the process.
func (ts *TestServer) SeedCuisine(t *testing.T) (*catalog.Cuisine, []*catalog.Food) {
	t.Helper()
	ctx := context.Background()
	n := testCounter.Add(1)

	cuisine, err := catalog.NewCuisine(fmt.Sprintf("Cuisine %d", n))
	require.NoError(t, err)
	require.NoError(t, ts.CuisineRepo.Save(ctx, cuisine))

	first, err := catalog.NewFood(fmt.Sprintf("Biryani %d", n), cuisine.ID,
		decimal.NewFromInt(110), decimal.NewFromInt(100), decimal.NewFromInt(5), 10)
	require.NoError(t, err)
	second, err := catalog.NewFood(fmt.Sprintf("Sushi %d", n), cuisine.ID,
		decimal.NewFromInt(60), decimal.NewFromInt(50), decimal.NewFromInt(5), 3)
	require.NoError(t, err)
	require.NoError(t, ts.FoodRepo.Save(ctx, first))
	require.NoError(t, ts.FoodRepo.Save(ctx, second))

	return cuisine, []*catalog.Food{first, second}
}

func TestGuestOrderingFlow(t *testing.T) {
	ts := NewTestServer(t)
	client, identity := ts.NewClient(t)
	cuisine, foods := ts.SeedCuisine(t)
	ctx := context.Background()

	// Browse the menu; sell price is discount price plus VAT
	projection := menu.NewProjection(client)
	require.NoError(t, projection.Load(ctx))

	shown := projection.FilterByCuisine(&cuisine.ID)
	require.Len(t, shown, 2)
	first, ok := projection.FoodByID(foods[0].ID)
	require.True(t, ok)
	assert.Equal(t, "105.00", first.SellPrice)
	second, ok := projection.FoodByID(foods[1].ID)
	require.True(t, ok)
	assert.Equal(t, "52.50", second.SellPrice)

	// Build a cart; mutations round-trip through the server
	store := cart.NewStore(client, projection, identity)
	require.NoError(t, store.Load(ctx))
	require.NoError(t, store.SetQuantity(ctx, foods[0].ID, 2))
	require.NoError(t, store.SetQuantity(ctx, foods[1].ID, 3))
	assert.Equal(t, "367.50", store.TotalString())

	// Over-stock is refused before anything reaches the server
	err := store.SetQuantity(ctx, foods[1].ID, 4)
	var violation *cart.StockViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, "Only 3 in stock.", violation.Error())

	// The server holds the same cart under the token
	token := identity.CartToken()
	serverLines, err := client.GuestCart(ctx, token)
	require.NoError(t, err)
	assert.Len(t, serverLines, 2)

	// Place the order
	flow, err := checkout.NewFlow(store, client, identity)
	require.NoError(t, err)
	conf, err := flow.PlaceOrder(ctx, checkout.Details{
		CustomerName:    "Ada Lovelace",
		DeliveryAddress: "12 Analytical Lane",
		PhoneNumber:     "555-0101",
	})
	require.NoError(t, err)
	assert.NotZero(t, conf.OrderID)
	assert.Equal(t, "367.50", conf.Total)
	assert.Empty(t, identity.CartToken())

	// Stock was decremented and the server-side cart is gone
	refreshed, err := ts.FoodRepo.FindByID(ctx, foods[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 8, refreshed.StockQuantity)

	_, err = client.GuestCart(ctx, token)
	assert.True(t, api.IsNotFound(err))
}

func TestCheckoutInsufficientStock(t *testing.T) {
	ts := NewTestServer(t)
	client, identity := ts.NewClient(t)
	_, foods := ts.SeedCuisine(t)
	ctx := context.Background()

	projection := menu.NewProjection(client)
	require.NoError(t, projection.Load(ctx))

	store := cart.NewStore(client, projection, identity)
	require.NoError(t, store.Load(ctx))
	require.NoError(t, store.SetQuantity(ctx, foods[1].ID, 3))

	// Someone else buys the stock out from under the cart
	depleted, err := ts.FoodRepo.FindByID(ctx, foods[1].ID)
	require.NoError(t, err)
	depleted.StockQuantity = 1
	require.NoError(t, ts.FoodRepo.Save(ctx, depleted))

	flow, err := checkout.NewFlow(store, client, identity)
	require.NoError(t, err)
	_, err = flow.PlaceOrder(ctx, checkout.Details{
		CustomerName:    "Ada Lovelace",
		DeliveryAddress: "12 Analytical Lane",
		PhoneNumber:     "555-0101",
	})

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 422, apiErr.StatusCode)
	assert.Equal(t, "Only 1 in stock.", apiErr.Message)

	// Nothing was consumed: the flow is back in reviewing and the cart
	// token survives for another attempt
	assert.Equal(t, checkout.Reviewing, flow.State())
	assert.NotEmpty(t, identity.CartToken())
}

func TestAdminConsoleFlow(t *testing.T) {
	ts := NewTestServer(t)
	client, _ := ts.NewClient(t)
	ctx := context.Background()
	n := testCounter.Add(1)
	email := fmt.Sprintf("admin%d@example.com", n)

	// Admin calls without a session are rejected
	_, err := client.Dashboard(ctx)
	assert.True(t, api.IsUnauthorized(err))

	resp, err := client.Register(ctx, api.RegisterRequest{
		Name:     "Admin",
		Email:    email,
		Password: "changeme123",
	})
	require.NoError(t, err)
	assert.Equal(t, email, resp.User.Email)

	created, err := client.CreateCuisine(ctx, api.CreateCuisineRequest{
		Name: fmt.Sprintf("Fusion %d", n),
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	food, err := client.CreateFood(ctx, api.FoodInput{
		Name:          fmt.Sprintf("Dumplings %d", n),
		Price:         "8.00",
		DiscountPrice: "7.50",
		VATPercentage: "5",
		StockQuantity: 12,
		CuisineID:     created.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "active", food.Status)

	toggled, err := client.ToggleFoodStatus(ctx, food.ID)
	require.NoError(t, err)
	assert.Equal(t, "inactive", toggled.Status)

	stats, err := client.Dashboard(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.TotalFoods, 1)

	// Logout revokes the token server-side; the next admin call fails and
	// the client drops its stale session
	require.NoError(t, client.Logout(ctx))
	_, err = client.Dashboard(ctx)
	assert.True(t, api.IsUnauthorized(err))
}
