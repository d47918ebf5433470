package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appcart "github.com/foodcourt/storefront/internal/application/cart"
	appcatalog "github.com/foodcourt/storefront/internal/application/catalog"
	appdashboard "github.com/foodcourt/storefront/internal/application/dashboard"
	appidentity "github.com/foodcourt/storefront/internal/application/identity"
	apporder "github.com/foodcourt/storefront/internal/application/order"
	"github.com/foodcourt/storefront/internal/infrastructure/auth"
	"github.com/foodcourt/storefront/internal/infrastructure/config"
	"github.com/foodcourt/storefront/internal/infrastructure/logger"
	"github.com/foodcourt/storefront/internal/infrastructure/persistence"
	"github.com/foodcourt/storefront/internal/interfaces/http/handler"
	"github.com/foodcourt/storefront/internal/interfaces/http/middleware"
	"github.com/foodcourt/storefront/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = log.Sync()
	}()

	log.Info("starting storefront server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database", zap.Error(err))
		}
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}
	log.Info("database ready")

	// Redis keeps revoked admin tokens across restarts; without it the
	// blacklist is process-local.
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		blacklist = redisBlacklist
		log.Info("token blacklist backed by redis", zap.String("addr", cfg.Redis.Addr()))
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		log.Warn("redis disabled, token blacklist is in-memory only")
	}

	// Repositories
	cuisineRepo := persistence.NewGormCuisineRepository(db.DB)
	foodRepo := persistence.NewGormFoodRepository(db.DB)
	cartRepo := persistence.NewGormGuestCartRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Services
	jwtService := auth.NewJWTService(cfg.JWT)
	menuService := appcatalog.NewMenuService(cuisineRepo)
	foodService := appcatalog.NewFoodService(foodRepo, cuisineRepo)
	cuisineService := appcatalog.NewCuisineService(cuisineRepo)
	cartService := appcart.NewGuestCartService(cartRepo, foodRepo)
	placeOrderService := apporder.NewPlaceOrderService(txScope)
	authService := appidentity.NewAuthService(userRepo, jwtService, blacklist)
	dashboardService := appdashboard.NewDashboardService(foodRepo, cuisineRepo, orderRepo)

	// Handlers
	menuHandler := handler.NewMenuHandler(menuService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(placeOrderService)
	authHandler := handler.NewAuthHandler(authService)
	foodHandler := handler.NewFoodHandler(foodService)
	cuisineHandler := handler.NewCuisineHandler(cuisineService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORSWithOrigins(cfg.HTTP.CORSAllowOrigins),
	)

	engine.GET("/api/health", healthHandler(db))

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

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("forced shutdown", zap.Error(err))
	}
	log.Info("server exited")
}

func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"time":   time.Now().Format(time.RFC3339),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}
