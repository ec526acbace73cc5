package service

import (
	"context"

	"storefront/internal/models"
	"storefront/internal/repository"
)

type OrderService struct {
	orderRepo repository.OrderRepository
}

type CreateOrderInput struct {
	UserID     uint   `json:"user_id"`
	ProductIDs []uint `json:"product_ids"`
}

func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// CreateOrder stores a new order for an existing user and returns it with
// its user and products loaded.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	if in.UserID == 0 {
		return nil, models.NewValidationError("user_id is required")
	}

	order := &models.Order{UserID: in.UserID}
	if err := s.orderRepo.Create(ctx, order, in.ProductIDs); err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(ctx, order.ID)
}

func (s *OrderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *OrderService) ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	if filter.UserID != nil {
		return s.orderRepo.ListByUser(ctx, *filter.UserID)
	}
	return s.orderRepo.List(ctx, filter)
}

func (s *OrderService) ListOrdersByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

// UpdateOrder replaces the product set when the patch carries one. An empty
// patch only confirms the order exists.
func (s *OrderService) UpdateOrder(ctx context.Context, id uint, patch models.OrderPatch) (*models.Order, error) {
	if patch.ProductIDs != nil {
		if err := s.orderRepo.ReplaceProducts(ctx, id, *patch.ProductIDs); err != nil {
			return nil, err
		}
	}
	return s.orderRepo.GetByID(ctx, id)
}

func (s *OrderService) DeleteOrder(ctx context.Context, id uint) error {
	return s.orderRepo.Delete(ctx, id)
}

// AddProduct attaches a product and returns the order's products afterwards.
func (s *OrderService) AddProduct(ctx context.Context, orderID, productID uint) ([]models.Product, error) {
	if err := s.orderRepo.AddProduct(ctx, orderID, productID); err != nil {
		return nil, err
	}
	return s.orderRepo.ListProducts(ctx, orderID)
}

// RemoveProduct detaches a product and returns the remaining products.
func (s *OrderService) RemoveProduct(ctx context.Context, orderID, productID uint) ([]models.Product, error) {
	if err := s.orderRepo.RemoveProduct(ctx, orderID, productID); err != nil {
		return nil, err
	}
	return s.orderRepo.ListProducts(ctx, orderID)
}

func (s *OrderService) ListProducts(ctx context.Context, orderID uint) ([]models.Product, error) {
	return s.orderRepo.ListProducts(ctx, orderID)
}
