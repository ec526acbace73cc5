package service

import (
	"context"

	"storefront/internal/models"
)

type userRepoStub struct {
	createFn  func(context.Context, *models.User) error
	getByIDFn func(context.Context, uint) (*models.User, error)
	listFn    func(context.Context) ([]models.User, error)
	updateFn  func(context.Context, *models.User) error
	deleteFn  func(context.Context, uint) error
}

func (s *userRepoStub) Create(ctx context.Context, u *models.User) error { return s.createFn(ctx, u) }
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) { return s.listFn(ctx) }
func (s *userRepoStub) Update(ctx context.Context, u *models.User) error { return s.updateFn(ctx, u) }
func (s *userRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn: func(_ context.Context, u *models.User) error {
			u.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
		listFn:   func(context.Context) ([]models.User, error) { return []models.User{}, nil },
		updateFn: func(context.Context, *models.User) error { return nil },
		deleteFn: func(context.Context, uint) error { return nil },
	}
}

type productRepoStub struct {
	createFn  func(context.Context, *models.Product) error
	getByIDFn func(context.Context, uint) (*models.Product, error)
	listFn    func(context.Context) ([]models.Product, error)
	updateFn  func(context.Context, *models.Product) error
	deleteFn  func(context.Context, uint) error
}

func (s *productRepoStub) Create(ctx context.Context, p *models.Product) error {
	return s.createFn(ctx, p)
}
func (s *productRepoStub) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	return s.getByIDFn(ctx, id)
}
func (s *productRepoStub) List(ctx context.Context) ([]models.Product, error) { return s.listFn(ctx) }
func (s *productRepoStub) Update(ctx context.Context, p *models.Product) error {
	return s.updateFn(ctx, p)
}
func (s *productRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }

func noopProductRepo() *productRepoStub {
	return &productRepoStub{
		createFn: func(_ context.Context, p *models.Product) error {
			p.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Product, error) {
			return &models.Product{ID: id}, nil
		},
		listFn:   func(context.Context) ([]models.Product, error) { return []models.Product{}, nil },
		updateFn: func(context.Context, *models.Product) error { return nil },
		deleteFn: func(context.Context, uint) error { return nil },
	}
}

type orderRepoStub struct {
	createFn          func(context.Context, *models.Order, []uint) error
	getByIDFn         func(context.Context, uint) (*models.Order, error)
	listFn            func(context.Context, models.OrderFilter) ([]models.Order, error)
	listByUserFn      func(context.Context, uint) ([]models.Order, error)
	deleteFn          func(context.Context, uint) error
	addProductFn      func(context.Context, uint, uint) error
	removeProductFn   func(context.Context, uint, uint) error
	listProductsFn    func(context.Context, uint) ([]models.Product, error)
	replaceProductsFn func(context.Context, uint, []uint) error
}

func (s *orderRepoStub) Create(ctx context.Context, o *models.Order, ids []uint) error {
	return s.createFn(ctx, o, ids)
}
func (s *orderRepoStub) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	return s.getByIDFn(ctx, id)
}
func (s *orderRepoStub) List(ctx context.Context, f models.OrderFilter) ([]models.Order, error) {
	return s.listFn(ctx, f)
}
func (s *orderRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *orderRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }
func (s *orderRepoStub) AddProduct(ctx context.Context, orderID, productID uint) error {
	return s.addProductFn(ctx, orderID, productID)
}
func (s *orderRepoStub) RemoveProduct(ctx context.Context, orderID, productID uint) error {
	return s.removeProductFn(ctx, orderID, productID)
}
func (s *orderRepoStub) ListProducts(ctx context.Context, orderID uint) ([]models.Product, error) {
	return s.listProductsFn(ctx, orderID)
}
func (s *orderRepoStub) ReplaceProducts(ctx context.Context, orderID uint, ids []uint) error {
	return s.replaceProductsFn(ctx, orderID, ids)
}

func noopOrderRepo() *orderRepoStub {
	return &orderRepoStub{
		createFn: func(_ context.Context, o *models.Order, _ []uint) error {
			o.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Order, error) {
			return &models.Order{ID: id}, nil
		},
		listFn:            func(context.Context, models.OrderFilter) ([]models.Order, error) { return []models.Order{}, nil },
		listByUserFn:      func(context.Context, uint) ([]models.Order, error) { return []models.Order{}, nil },
		deleteFn:          func(context.Context, uint) error { return nil },
		addProductFn:      func(context.Context, uint, uint) error { return nil },
		removeProductFn:   func(context.Context, uint, uint) error { return nil },
		listProductsFn:    func(context.Context, uint) ([]models.Product, error) { return []models.Product{}, nil },
		replaceProductsFn: func(context.Context, uint, []uint) error { return nil },
	}
}
