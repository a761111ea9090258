package domain

import "time"

type Category struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id" form:"id"`
	CategoryName string    `gorm:"index" json:"category_name" form:"category_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Category) TableName() string {
	return "categories"
}

type Item struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id" form:"id"`
	ItemName     string    `gorm:"index" json:"item_name" form:"item_name"`
	Description  string    `gorm:"size:1024" json:"description" form:"description"`
	CategoryID   int64     `gorm:"index" json:"category_id" form:"category_id"`
	SupplierID   int64     `gorm:"index" json:"supplier_id" form:"supplier_id"`
	UnitPrice    float64   `json:"unit_price" form:"unit_price"`
	ReorderLevel int64     `json:"reorder_level" form:"reorder_level"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Item) TableName() string {
	return "items"
}

// Stock is one quantity record tied to an item; an item's total stock
// is the sum over all of its stock rows.
type Stock struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id" form:"id"`
	ItemID    int64     `gorm:"index" json:"item_id" form:"item_id"`
	Quantity  int64     `json:"quantity" form:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Stock) TableName() string {
	return "stock"
}
