package repository

import (
	"context"
	"errors"

	"storefront/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderRepository defines persistence operations for orders and their
// order_product associations.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order, productIDs []uint) error
	GetByID(ctx context.Context, id uint) (*models.Order, error)
	List(ctx context.Context, filter models.OrderFilter) ([]models.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Order, error)
	Delete(ctx context.Context, id uint) error
	AddProduct(ctx context.Context, orderID, productID uint) error
	RemoveProduct(ctx context.Context, orderID, productID uint) error
	ListProducts(ctx context.Context, orderID uint) ([]models.Product, error)
	ReplaceProducts(ctx context.Context, orderID uint, productIDs []uint) error
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository returns a new OrderRepository implementation.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func productsByID(db *gorm.DB) *gorm.DB {
	return db.Order("products.id")
}

func (r *orderRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("User").
		Preload("Products", productsByID)
}

// Create checks the owning user and every product, then writes the order
// and its join rows in the same transaction.
func (r *orderRepository) Create(ctx context.Context, order *models.Order, productIDs []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.User{}, "User", order.UserID); err != nil {
			return err
		}
		ids, err := ensureProducts(tx, productIDs)
		if err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			if isForeignKeyError(err) {
				return models.NewNotFoundError("User", order.UserID)
			}
			return err
		}
		return linkProducts(tx, order.ID, ids)
	})
	return wrapDBError(err)
}

func (r *orderRepository) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.withRelations(ctx).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Order", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	query := r.withRelations(ctx)
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	orders := []models.Order{}
	if err := query.Order("id").Find(&orders).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return orders, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	if err := ensureExists(r.db.WithContext(ctx), &models.User{}, "User", userID); err != nil {
		return nil, err
	}
	return r.List(ctx, models.OrderFilter{UserID: &userID})
}

func (r *orderRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Order{}, "Order", id); err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderProduct{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, id).Error
	})
	return wrapDBError(err)
}

// AddProduct attaches a product to an order. Attaching an already attached
// product leaves the single existing row in place.
func (r *orderRepository) AddProduct(ctx context.Context, orderID, productID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Order{}, "Order", orderID); err != nil {
			return err
		}
		if err := ensureExists(tx, &models.Product{}, "Product", productID); err != nil {
			return err
		}
		return linkProducts(tx, orderID, []uint{productID})
	})
	return wrapDBError(err)
}

func (r *orderRepository) RemoveProduct(ctx context.Context, orderID, productID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Order{}, "Order", orderID); err != nil {
			return err
		}

		res := tx.Where("order_id = ? AND product_id = ?", orderID, productID).
			Delete(&models.OrderProduct{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotAssociatedError(orderID, productID)
		}
		return nil
	})
	return wrapDBError(err)
}

func (r *orderRepository) ListProducts(ctx context.Context, orderID uint) ([]models.Product, error) {
	db := r.db.WithContext(ctx)
	if err := ensureExists(db, &models.Order{}, "Order", orderID); err != nil {
		return nil, err
	}

	products := []models.Product{}
	err := db.
		Joins("JOIN order_product ON order_product.product_id = products.id").
		Where("order_product.order_id = ?", orderID).
		Order("products.id").
		Find(&products).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return products, nil
}

// ReplaceProducts swaps the order's whole product set for productIDs.
func (r *orderRepository) ReplaceProducts(ctx context.Context, orderID uint, productIDs []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Order{}, "Order", orderID); err != nil {
			return err
		}
		ids, err := ensureProducts(tx, productIDs)
		if err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderProduct{}).Error; err != nil {
			return err
		}
		return linkProducts(tx, orderID, ids)
	})
	return wrapDBError(err)
}

// ensureProducts collapses duplicate ids and fails with NotFound on the
// first id that has no product row.
func ensureProducts(tx *gorm.DB, productIDs []uint) ([]uint, error) {
	ids := uniqueIDs(productIDs)
	if len(ids) == 0 {
		return nil, nil
	}

	var found []uint
	if err := tx.Model(&models.Product{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if len(found) == len(ids) {
		return ids, nil
	}

	present := make(map[uint]bool, len(found))
	for _, id := range found {
		present[id] = true
	}
	for _, id := range ids {
		if !present[id] {
			return nil, models.NewNotFoundError("Product", id)
		}
	}
	return ids, nil
}

func linkProducts(tx *gorm.DB, orderID uint, productIDs []uint) error {
	if len(productIDs) == 0 {
		return nil
	}
	links := make([]models.OrderProduct, 0, len(productIDs))
	for _, pid := range productIDs {
		links = append(links, models.OrderProduct{OrderID: orderID, ProductID: pid})
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
