// Package server contains the HTTP handlers and wiring for the store API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

const appName = "Storefront API"

type Server struct {
	config         *config.Config
	db             *gorm.DB
	app            *fiber.App
	userRepo       repository.UserRepository
	productRepo    repository.ProductRepository
	orderRepo      repository.OrderRepository
	userService    *service.UserService
	productService *service.ProductService
	orderService   *service.OrderService
}

// NewServer connects to the configured database and builds a Server on it.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return NewServerWithDeps(cfg, db)
}

// NewServerWithDeps builds a Server on an already opened database.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB) (*Server, error) {
	if db == nil {
		return nil, errors.New("server requires a database handle")
	}

	server := &Server{
		config:      cfg,
		db:          db,
		userRepo:    repository.NewUserRepository(db),
		productRepo: repository.NewProductRepository(db),
		orderRepo:   repository.NewOrderRepository(db),
	}
	server.userService = service.NewUserService(server.userRepo)
	server.productService = service.NewProductService(server.productRepo)
	server.orderService = service.NewOrderService(server.orderRepo)
	server.app = server.NewApp()

	return server, nil
}

// NewApp returns a Fiber app with the server's middleware and routes mounted.
func (s *Server) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      appName,
		ErrorHandler: ErrorHandler,
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// ErrorHandler renders errors that escape a handler. Fiber errors keep their
// status, and any 4xx carries a client error code. Anything else is a
// generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := models.CodeInternal
		switch {
		case fe.Code == fiber.StatusNotFound:
			code = models.CodeNotFound
		case fe.Code == fiber.StatusConflict:
			code = models.CodeConflict
		case fe.Code >= fiber.StatusBadRequest && fe.Code < fiber.StatusInternalServerError:
			code = models.CodeValidation
		}
		return c.Status(fe.Code).JSON(models.ErrorResponse{Error: fe.Message, Code: code})
	}

	middleware.Logger.ErrorContext(c.UserContext(), "unhandled error",
		slog.String("path", c.Path()),
		slog.String("error", err.Error()))
	return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
}

func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())

	app.Use(requestid.New())

	app.Use(middleware.ContextMiddleware())

	app.Use(helmet.New())

	app.Use(middleware.StructuredLogger())

	origins := "*"
	if s.config != nil && strings.TrimSpace(s.config.AllowedOrigins) != "" {
		origins = s.config.AllowedOrigins
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		MaxAge:       86400,
	}))
}

func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	users := app.Group("/users")
	users.Post("/", s.CreateUser)
	users.Get("/", s.GetUsers)
	users.Get("/:id", s.GetUser)
	users.Put("/:id", s.UpdateUser)
	users.Delete("/:id", s.DeleteUser)

	products := app.Group("/products")
	products.Post("/", s.CreateProduct)
	products.Get("/", s.GetProducts)
	products.Get("/:id", s.GetProduct)
	products.Put("/:id", s.UpdateProduct)
	products.Delete("/:id", s.DeleteProduct)

	orders := app.Group("/orders")
	orders.Post("/", s.CreateOrder)
	orders.Get("/", s.GetOrders)
	// Specific multi-segment routes before the generic /:id ones.
	orders.Get("/user/:userId", s.GetUserOrders)
	orders.Get("/:orderId/products", s.GetOrderProducts)
	orders.Post("/:orderId/add_product/:productId", s.AddProductToOrder)
	orders.Delete("/:orderId/remove_product/:productId", s.RemoveProductFromOrder)
	orders.Get("/:id", s.GetOrder)
	orders.Put("/:id", s.UpdateOrder)
	orders.Delete("/:id", s.DeleteOrder)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now().UTC(),
	})
}

// ReadinessCheck reports whether the database answers a ping.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	status := fiber.StatusOK
	overall := "healthy"
	if dbStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overall = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overall,
		"checks": fiber.Map{
			"database": dbStatus,
		},
		"time": time.Now().UTC(),
	})
}

// Start builds the app and blocks serving on the configured address.
func (s *Server) Start() error {
	addr := ":5000"
	if s.config != nil {
		addr = s.config.Addr()
	}
	middleware.Logger.Info("Server starting", slog.String("addr", addr))
	return s.app.Listen(addr)
}

// Shutdown stops accepting requests and closes the database pool.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
		}
	}
	if err := database.Close(s.db); err != nil {
		errs = append(errs, fmt.Errorf("close database: %w", err))
	}
	return errors.Join(errs...)
}
