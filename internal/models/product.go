package models

// Product is a catalogue item. It joins orders through order_product.
type Product struct {
	ID          uint    `gorm:"primaryKey"`
	ProductName string  `gorm:"size:100;not null"`
	Price       float64 `gorm:"not null"`
	Orders      []Order `gorm:"many2many:order_product;constraint:OnDelete:CASCADE"`
}

func (Product) TableName() string {
	return "products"
}

// ProductPatch holds the fields of a partial product update.
type ProductPatch struct {
	ProductName *string  `json:"product_name"`
	Price       *float64 `json:"price"`
}

// Apply copies every present field onto p.
func (pp ProductPatch) Apply(p *Product) {
	if pp.ProductName != nil {
		p.ProductName = *pp.ProductName
	}
	if pp.Price != nil {
		p.Price = *pp.Price
	}
}
