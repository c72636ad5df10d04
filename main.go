package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"renewkart/internal/handlers"
	"renewkart/internal/middleware"
	"renewkart/internal/models"
	"renewkart/internal/repositories"
	"renewkart/internal/seed"
	"renewkart/internal/services"
	"renewkart/pkg/rabbitmq"
)

func main() {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("JWT_SECRET", "dev-secret-change-me")
	viper.SetDefault("DATABASE_DRIVER", "memory")
	viper.SetDefault("DATABASE_DSN", "renewkart.db")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("REDIS_ADDR", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	jwtSecret := viper.GetString("JWT_SECRET")

	// --- Repositories ---
	productRepo, userRepo, orderRepo, err := buildRepositories(
		viper.GetString("DATABASE_DRIVER"),
		viper.GetString("DATABASE_DSN"),
	)
	if err != nil {
		log.Fatalf("Failed to initialize repositories: %v", err)
	}

	// --- Cart store: Redis when configured, in-memory otherwise ---
	var cartStore repositories.CartStore
	if addr := viper.GetString("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		cartStore = repositories.NewRedisCartStore(client)
		log.Printf("Using Redis cart store at %s", addr)
	} else {
		cartStore = repositories.NewMemoryCartStore()
	}

	// --- RabbitMQ: optional; without a URL order events are disabled ---
	var mqClient *rabbitmq.Client
	var publisher services.OrderEventPublisher
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient
	} else {
		log.Println("RABBITMQ_URL not set, order events disabled")
	}

	// --- Services ---
	catalogService := services.NewCatalogService(productRepo)
	authService := services.NewAuthService(userRepo, jwtSecret)
	orderService := services.NewOrderService(orderRepo, productRepo, publisher)
	cartService := services.NewCartService(cartStore, productRepo)

	app := newApp(catalogService, authService, orderService, cartService)

	// --- Order events consumer ---
	// Stands in for the fulfillment process: it receives order.created
	// events and logs them.
	if mqClient != nil {
		if err := mqClient.ConsumeOrderEvents(handleOrderEvent); err != nil {
			log.Printf("Failed to start order events consumer: %v", err)
		}
	}

	// --- Start HTTP server ---
	log.Printf("Starting server on %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// newApp assembles the Fiber app: public catalog and auth routes, plus
// order and cart routes behind JWT authentication.
func newApp(
	catalogService *services.CatalogService,
	authService *services.AuthService,
	orderService *services.OrderService,
	cartService *services.CartService,
) *fiber.App {
	app := fiber.New()
	app.Use(logger.New())

	api := app.Group("/api")

	handlers.NewProductHandler(catalogService).RegisterRoutes(api)
	handlers.NewAuthHandler(authService).RegisterRoutes(api)

	protected := api.Group("", middleware.AuthRequired(authService))
	handlers.NewOrderHandler(orderService).RegisterRoutes(protected)
	handlers.NewCartHandler(cartService).RegisterRoutes(protected)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app
}

// buildRepositories selects the storage backend. "memory" keeps everything
// in process (seeded on every start); "sqlite" and "postgres" persist via
// GORM and are seeded only when the catalog is empty.
func buildRepositories(driver, dsn string) (repositories.ProductRepository, repositories.UserRepository, repositories.OrderRepository, error) {
	switch driver {
	case "memory":
		productRepo := repositories.NewMemoryProductRepository()
		if err := seedCatalog(productRepo); err != nil {
			return nil, nil, nil, err
		}
		return productRepo, repositories.NewMemoryUserRepository(), repositories.NewMemoryOrderRepository(), nil

	case "sqlite", "postgres":
		var dialector gorm.Dialector
		if driver == "sqlite" {
			dialector = sqlite.Open(dsn)
		} else {
			dialector = postgres.Open(dsn)
		}
		db, err := gorm.Open(dialector, &gorm.Config{})
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
		}
		if err := db.AutoMigrate(&models.Product{}, &models.User{}, &models.Order{}); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to migrate database: %w", err)
		}

		productRepo := repositories.NewGORMProductRepository(db)
		var count int64
		if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
			return nil, nil, nil, fmt.Errorf("failed to count products: %w", err)
		}
		if count == 0 {
			if err := seedCatalog(productRepo); err != nil {
				return nil, nil, nil, err
			}
		}
		return productRepo, repositories.NewGORMUserRepository(db), repositories.NewGORMOrderRepository(db), nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown DATABASE_DRIVER %q", driver)
	}
}

// seedCatalog loads the fixed sample catalog into the product repository.
func seedCatalog(repo repositories.ProductRepository) error {
	for _, product := range seed.Products() {
		p := product
		if err := repo.Create(&p); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.Name, err)
		}
	}
	return nil
}

// handleOrderEvent processes one order event delivery.
func handleOrderEvent(msg amqp.Delivery) error {
	var event rabbitmq.OrderEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		// Unparseable messages are logged and acked; requeueing them
		// would loop forever.
		log.Printf("Dropping unparseable order event (tag %d): %v", msg.DeliveryTag, err)
		return nil
	}
	log.Printf("Order event %s: order %d for user %d, total %d, status %s",
		event.Type, event.OrderID, event.UserID, event.Total, event.Status)
	return nil
}
