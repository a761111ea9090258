package domain

import "time"

// Order status values shared by purchase and sales orders.
const (
	OrderStatusPending   = "Pending"
	OrderStatusOrdered   = "Ordered"
	OrderStatusReceived  = "Received"
	OrderStatusShipped   = "Shipped"
	OrderStatusCancelled = "Cancelled"
)

// PurchaseOrderStatuses are the states offered by the order edit form.
var PurchaseOrderStatuses = []string{
	OrderStatusPending,
	OrderStatusOrdered,
	OrderStatusReceived,
	OrderStatusCancelled,
}

// PurchaseOrder dates are kept as ISO yyyy-mm-dd strings, which is
// exactly what HTML date inputs submit.
type PurchaseOrder struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement" json:"id" form:"id"`
	SupplierID           int64     `gorm:"index" json:"supplier_id" form:"supplier_id"`
	OrderDate            string    `gorm:"size:20" json:"order_date" form:"order_date"`
	Status               string    `gorm:"size:32" json:"status" form:"status"`
	ExpectedDeliveryDate string    `gorm:"size:20" json:"expected_delivery_date" form:"expected_delivery_date"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// TableName Specify table name
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

type PurchaseOrderDetail struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id" form:"id"`
	PoID            int64     `gorm:"index;column:po_id" json:"po_id" form:"po_id"`
	ItemID          int64     `gorm:"index" json:"item_id" form:"item_id"`
	QuantityOrdered int64     `json:"quantity_ordered" form:"quantity_ordered"`
	UnitCost        float64   `json:"unit_cost" form:"unit_cost"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName Specify table name
func (PurchaseOrderDetail) TableName() string {
	return "purchase_order_details"
}
