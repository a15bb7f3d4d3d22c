package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"brandreview/internal/handlers"
	"brandreview/internal/middleware"
	"brandreview/internal/models"
	"brandreview/internal/repositories"
	"brandreview/internal/services"
	"brandreview/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("STORAGE_DRIVER", "memory")
	viper.SetDefault("SQLITE_PATH", "brandreview.db")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("JWT_SECRET", "dev_jwt_secret")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables event publishing
	viper.SetDefault("ADMIN_PASSWORD", "admin@3251")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	// --- Storage variant selection ---
	store, err := newStore(viper.GetString("STORAGE_DRIVER"))
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// --- Optional RabbitMQ client ---
	var mqClient *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, event publishing disabled")
	}

	// --- Idempotent seeding ---
	// Seeding failures are logged but never prevent the server from
	// serving traffic.
	if err := store.CreateDefaultCategories(); err != nil {
		log.Printf("Warning: failed to seed default categories: %v", err)
	}
	if err := store.CreateAdminUser(viper.GetString("ADMIN_PASSWORD"), services.HashPassword); err != nil {
		log.Printf("Warning: failed to seed admin user: %v", err)
	}

	// --- Services ---
	authService := services.NewAuthService(store.Users, viper.GetString("JWT_SECRET"))
	categoryService := services.NewCategoryService(store.Categories)
	brandService := services.NewBrandService(store.Brands, store.Categories, store.Reviews)
	reviewService := services.NewReviewService(store.Reviews, mqClient)
	contactService := services.NewContactService(store.ContactMessages, mqClient)

	// --- Handlers & middleware ---
	authHandler := handlers.NewAuthHandler(authService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	brandHandler := handlers.NewBrandHandler(brandService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	contactHandler := handlers.NewContactHandler(contactService)

	authRequired := middleware.AuthRequired(authService)
	adminRequired := middleware.AdminRequired(authService)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())

	api := app.Group("/api")
	authHandler.RegisterRoutes(api)
	categoryHandler.RegisterRoutes(api, authRequired, adminRequired)
	brandHandler.RegisterRoutes(api, authRequired)
	reviewHandler.RegisterRoutes(api, authRequired)
	contactHandler.RegisterRoutes(api, authRequired, adminRequired)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	})

	// --- Start HTTP server with graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on %s", appPort)
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// newStore picks the storage variant from configuration: "memory" for
// the ephemeral development backend, "sqlite" or "postgres" for the
// relational one.
func newStore(driver string) (*repositories.Store, error) {
	switch driver {
	case "memory":
		log.Println("Using in-memory storage (development only)")
		return repositories.NewMemoryStore(), nil
	case "sqlite", "postgres":
		db, err := openDatabase(driver)
		if err != nil {
			return nil, err
		}
		return repositories.NewGormStore(db), nil
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
	}
}

// openDatabase opens the relational backend and migrates the schema.
// TranslateError turns driver duplicate-key errors into
// gorm.ErrDuplicatedKey so the repositories can surface conflicts.
func openDatabase(driver string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dsn := viper.GetString("DATABASE_URL")
		if dsn == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(viper.GetString("SQLITE_PATH"))
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Brand{},
		&models.Review{},
		&models.ContactMessage{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}
