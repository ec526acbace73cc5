package database

import (
	"storefront/internal/models"

	"gorm.io/gorm"
)

// PersistentModels returns the authoritative set of schema-managed GORM models.
// The order_product join table is created through the Order.Products relation.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Product{},
		&models.Order{},
	}
}

// SetupJoinTables binds both sides of the order/product relation to the
// OrderProduct join model.
func SetupJoinTables(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Order{}, "Products", &models.OrderProduct{}); err != nil {
		return err
	}
	return db.SetupJoinTable(&models.Product{}, "Orders", &models.OrderProduct{})
}
