package models

import (
	"time"

	"gorm.io/gorm"
)

// Order belongs to exactly one user and holds any number of products.
type Order struct {
	ID        uint      `gorm:"primaryKey"`
	OrderDate time.Time `gorm:"not null"`
	UserID    uint      `gorm:"not null;index"`
	User      User      `gorm:"foreignKey:UserID"`
	Products  []Product `gorm:"many2many:order_product;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string {
	return "orders"
}

// BeforeCreate stamps the order date in UTC when the caller left it unset.
func (o *Order) BeforeCreate(_ *gorm.DB) error {
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now().UTC()
	}
	return nil
}

// OrderProduct is the order_product join row. The (order_id, product_id)
// pair is its identity.
type OrderProduct struct {
	OrderID   uint `gorm:"primaryKey;autoIncrement:false"`
	ProductID uint `gorm:"primaryKey;autoIncrement:false"`
}

func (OrderProduct) TableName() string {
	return "order_product"
}

// OrderPatch is the update payload for an order. Orders have no mutable
// scalar fields; when ProductIDs is non-nil it replaces the product set.
type OrderPatch struct {
	ProductIDs *[]uint `json:"product_ids"`
}

// OrderFilter narrows an order listing.
type OrderFilter struct {
	UserID *uint
}
