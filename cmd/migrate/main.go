// Command migrate creates the storefront schema and optionally seeds it
// with a sample menu and an admin account for local development.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/foodcourt/storefront/internal/domain/catalog"
	"github.com/foodcourt/storefront/internal/domain/identity"
	"github.com/foodcourt/storefront/internal/infrastructure/config"
	"github.com/foodcourt/storefront/internal/infrastructure/logger"
	"github.com/foodcourt/storefront/internal/infrastructure/persistence"
)

func main() {
	var (
		seed     bool
		logLevel string
	)
	flag.BoolVar(&seed, "seed", false, "seed a sample menu and admin account after migrating")
	flag.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	log := logger.New(&logger.Config{Level: logLevel, Format: "console", Output: "stdout"})
	defer func() {
		_ = log.Sync()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
	log.Info("schema migrated")

	if !seed {
		return
	}
	if err := seedData(context.Background(), db, log); err != nil {
		log.Error("seeding failed", zap.Error(err))
		os.Exit(1)
	}
	log.Info("sample data seeded")
}

type seedFood struct {
	name          string
	description   string
	price         string
	discountPrice string
	vat           string
	stock         int
	image         string
}

var sampleMenu = map[string][]seedFood{
	"Italian": {
		{"Margherita Pizza", "Tomato, mozzarella and basil", "12.00", "10.50", "5", 25, "margherita.jpg"},
		{"Spaghetti Carbonara", "Guanciale, egg and pecorino", "14.00", "13.25", "5", 18, "carbonara.jpg"},
	},
	"Japanese": {
		{"Salmon Nigiri Set", "Eight pieces with wasabi", "18.00", "16.00", "7.5", 12, "nigiri.jpg"},
		{"Tonkotsu Ramen", "Pork broth, chashu and egg", "13.50", "13.50", "7.5", 20, "ramen.jpg"},
	},
	"Indian": {
		{"Chicken Biryani", "Basmati rice with saffron", "11.00", "9.75", "5", 30, "biryani.jpg"},
		{"Paneer Tikka", "Char-grilled cottage cheese", "9.50", "9.00", "5", 16, "tikka.jpg"},
	},
}

func seedData(ctx context.Context, db *persistence.Database, log *zap.Logger) error {
	cuisineRepo := persistence.NewGormCuisineRepository(db.DB)
	foodRepo := persistence.NewGormFoodRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	for cuisineName, foods := range sampleMenu {
		exists, err := cuisineRepo.ExistsByName(ctx, cuisineName)
		if err != nil {
			return err
		}
		if exists {
			log.Debug("cuisine already present, skipping", zap.String("cuisine", cuisineName))
			continue
		}

		cuisine, err := catalog.NewCuisine(cuisineName)
		if err != nil {
			return err
		}
		if err := cuisineRepo.Save(ctx, cuisine); err != nil {
			return err
		}

		for _, f := range foods {
			food, err := catalog.NewFood(
				f.name,
				cuisine.ID,
				decimal.RequireFromString(f.price),
				decimal.RequireFromString(f.discountPrice),
				decimal.RequireFromString(f.vat),
				f.stock,
			)
			if err != nil {
				return err
			}
			food.Description = f.description
			food.Image = f.image
			if err := foodRepo.Save(ctx, food); err != nil {
				return err
			}
		}
		log.Info("seeded cuisine", zap.String("cuisine", cuisineName), zap.Int("foods", len(foods)))
	}

	exists, err := userRepo.ExistsByEmail(ctx, "admin@example.com")
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	admin, err := identity.NewUser("Admin", "admin@example.com", "changeme123")
	if err != nil {
		return err
	}
	log.Warn("created default admin account, change its password", zap.String("email", admin.Email))
	return userRepo.Save(ctx, admin)
}
