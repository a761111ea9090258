package domain

import "time"

type Supplier struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id" form:"id"`
	SupplierName  string    `gorm:"index" json:"supplier_name" form:"supplier_name"`
	ContactPerson string    `json:"contact_person" form:"contact_person"`
	Phone         string    `gorm:"size:50" json:"phone" form:"phone"`
	Email         string    `gorm:"size:100" json:"email" form:"email"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Supplier) TableName() string {
	return "suppliers"
}
