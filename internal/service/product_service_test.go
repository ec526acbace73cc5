package service

import (
	"context"
	"testing"

	"storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestProductService_CreateProduct(t *testing.T) {
	t.Parallel()

	t.Run("zero price is allowed", func(t *testing.T) {
		t.Parallel()
		product, err := NewProductService(noopProductRepo()).CreateProduct(context.Background(), CreateProductInput{
			ProductName: "Sample",
			Price:       floatPtr(0),
		})
		require.NoError(t, err)
		assert.Equal(t, "Sample", product.ProductName)
		assert.Zero(t, product.Price)
	})

	tests := []struct {
		name string
		in   CreateProductInput
		msg  string
	}{
		{"missing name", CreateProductInput{Price: floatPtr(1)}, "product_name is required"},
		{"missing price", CreateProductInput{ProductName: "x"}, "price is required"},
		{"negative price", CreateProductInput{ProductName: "x", Price: floatPtr(-0.01)}, "price must be non-negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewProductService(noopProductRepo()).CreateProduct(context.Background(), tt.in)
			require.Error(t, err)
			assert.Equal(t, models.CodeValidation, models.ErrorCode(err))
			assert.Equal(t, tt.msg, err.Error())
		})
	}
}

func TestProductService_UpdateProduct(t *testing.T) {
	t.Parallel()

	t.Run("price only", func(t *testing.T) {
		t.Parallel()
		repo := noopProductRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Product, error) {
			return &models.Product{ID: id, ProductName: "Lamp", Price: 20}, nil
		}
		product, err := NewProductService(repo).UpdateProduct(context.Background(), 2, models.ProductPatch{Price: floatPtr(15)})
		require.NoError(t, err)
		assert.Equal(t, "Lamp", product.ProductName)
		assert.Equal(t, 15.0, product.Price)
	})

	t.Run("negative price rejected before lookup", func(t *testing.T) {
		t.Parallel()
		repo := noopProductRepo()
		repo.getByIDFn = func(context.Context, uint) (*models.Product, error) {
			t.Fatal("lookup must not run on invalid input")
			return nil, nil
		}
		_, err := NewProductService(repo).UpdateProduct(context.Background(), 2, models.ProductPatch{Price: floatPtr(-5)})
		assert.Equal(t, models.CodeValidation, models.ErrorCode(err))
	})

	t.Run("missing product", func(t *testing.T) {
		t.Parallel()
		repo := noopProductRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Product, error) {
			return nil, models.NewNotFoundError("Product", id)
		}
		_, err := NewProductService(repo).UpdateProduct(context.Background(), 8, models.ProductPatch{})
		assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
	})
}
