package seed

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/repository"

	"gorm.io/gorm"
)

// Options controls how much data Run creates.
type Options struct {
	Users               int
	Products            int
	MaxOrdersPerUser    int
	MaxProductsPerOrder int
	Seed                int64
}

// DefaultOptions is a small but connected data set.
func DefaultOptions() Options {
	return Options{
		Users:               10,
		Products:            25,
		MaxOrdersPerUser:    3,
		MaxProductsPerOrder: 5,
	}
}

// Summary counts what Run created.
type Summary struct {
	Users    int
	Products int
	Orders   int
}

// Seeder writes factory output through the regular repositories.
type Seeder struct {
	db       *gorm.DB
	users    repository.UserRepository
	products repository.ProductRepository
	orders   repository.OrderRepository
}

func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{
		db:       db,
		users:    repository.NewUserRepository(db),
		products: repository.NewProductRepository(db),
		orders:   repository.NewOrderRepository(db),
	}
}

// ClearAll deletes every row from the store tables, join rows first.
func (s *Seeder) ClearAll(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.OrderProduct{},
			&models.Order{},
			&models.Product{},
			&models.User{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("clear %T: %w", model, err)
			}
		}
		return nil
	})
}

// Run creates users and products, then gives each user a random number of
// orders holding random products.
func (s *Seeder) Run(ctx context.Context, opts Options) (*Summary, error) {
	f := NewFactory(opts.Seed)
	summary := &Summary{}

	productIDs := make([]uint, 0, opts.Products)
	for i := 0; i < opts.Products; i++ {
		product := f.BuildProduct()
		if err := s.products.Create(ctx, product); err != nil {
			return summary, fmt.Errorf("create product: %w", err)
		}
		productIDs = append(productIDs, product.ID)
		summary.Products++
	}

	for i := 0; i < opts.Users; i++ {
		user := f.BuildUser()
		if err := s.users.Create(ctx, user); err != nil {
			return summary, fmt.Errorf("create user: %w", err)
		}
		summary.Users++

		orders := 0
		if opts.MaxOrdersPerUser > 0 {
			orders = f.faker.Number(0, opts.MaxOrdersPerUser)
		}
		for j := 0; j < orders; j++ {
			order := &models.Order{UserID: user.ID}
			picked := f.PickProducts(productIDs, opts.MaxProductsPerOrder)
			if err := s.orders.Create(ctx, order, picked); err != nil {
				return summary, fmt.Errorf("create order: %w", err)
			}
			summary.Orders++
		}
	}

	middleware.Logger.InfoContext(ctx, "Seed complete",
		slog.Int("users", summary.Users),
		slog.Int("products", summary.Products),
		slog.Int("orders", summary.Orders))
	return summary, nil
}
