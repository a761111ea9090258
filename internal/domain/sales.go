package domain

import "time"

// SalesOrderStatuses are the states offered by the sales edit form.
var SalesOrderStatuses = []string{
	OrderStatusPending,
	OrderStatusShipped,
	OrderStatusCancelled,
}

type Customer struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id" form:"id"`
	CustomerName string    `gorm:"index" json:"customer_name" form:"customer_name"`
	Phone        string    `gorm:"size:50" json:"phone" form:"phone"`
	Email        string    `gorm:"size:100" json:"email" form:"email"`
	Address      string    `gorm:"size:512" json:"address" form:"address"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Customer) TableName() string {
	return "customers"
}

type SalesOrder struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id" form:"id"`
	CustomerID      int64     `gorm:"index" json:"customer_id" form:"customer_id"`
	OrderDate       string    `gorm:"size:20" json:"order_date" form:"order_date"`
	Status          string    `gorm:"size:32" json:"status" form:"status"`
	ShippingAddress string    `gorm:"size:512" json:"shipping_address" form:"shipping_address"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName Specify table name
func (SalesOrder) TableName() string {
	return "sales_orders"
}

type SalesOrderDetail struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id" form:"id"`
	SoID         int64     `gorm:"index;column:so_id" json:"so_id" form:"so_id"`
	ItemID       int64     `gorm:"index" json:"item_id" form:"item_id"`
	QuantitySold int64     `json:"quantity_sold" form:"quantity_sold"`
	UnitPrice    float64   `json:"unit_price" form:"unit_price"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName Specify table name
func (SalesOrderDetail) TableName() string {
	return "sales_order_details"
}
