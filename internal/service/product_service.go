package service

import (
	"context"

	"storefront/internal/models"
	"storefront/internal/repository"
)

type ProductService struct {
	productRepo repository.ProductRepository
}

type CreateProductInput struct {
	ProductName string   `json:"product_name"`
	Price       *float64 `json:"price"`
}

func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

func (s *ProductService) CreateProduct(ctx context.Context, in CreateProductInput) (*models.Product, error) {
	name, err := requireText("product_name", in.ProductName)
	if err != nil {
		return nil, err
	}
	if err := checkPrice(in.Price); err != nil {
		return nil, err
	}

	product := &models.Product{ProductName: name, Price: *in.Price}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uint, patch models.ProductPatch) (*models.Product, error) {
	var err error
	if patch.ProductName, err = patchText("product_name", patch.ProductName); err != nil {
		return nil, err
	}
	if patch.Price != nil {
		if err := checkPrice(patch.Price); err != nil {
			return nil, err
		}
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(product)
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes the product; orders that held it keep their other
// products.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	return s.productRepo.Delete(ctx, id)
}
