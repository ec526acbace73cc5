package models

// User is a customer account. Deleting a user deletes its orders.
type User struct {
	ID      uint    `gorm:"primaryKey"`
	Name    string  `gorm:"size:100;not null"`
	Address string  `gorm:"size:200;not null"`
	Email   string  `gorm:"size:200;not null;uniqueIndex"`
	Orders  []Order `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName pins the table name used by the SQL migrations.
func (User) TableName() string {
	return "users"
}

// UserPatch holds the fields of a partial user update. Nil fields are left
// untouched.
type UserPatch struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Email   *string `json:"email"`
}

// Apply copies every present field onto u.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
}
