package repository

import (
	"time"

	"gorm.io/gorm"

	"stocktrack/internal/domain"
)

// OrderLineEdit carries the per-line values submitted by an order
// edit form, keyed by the detail row's own primary key.
type OrderLineEdit struct {
	Quantity int64
	Price    float64
}

// ListOrderLines returns the purchase-order list view, one row per
// detail line, oldest order first.
func ListOrderLines(db *gorm.DB) ([]domain.OrderLineRow, error) {
	var rows []domain.OrderLineRow
	err := db.Table("purchase_orders").
		Select("purchase_orders.id AS po_id, suppliers.supplier_name, " +
			"purchase_orders.order_date, purchase_orders.status, " +
			"purchase_orders.expected_delivery_date, " +
			"items.item_name, purchase_order_details.quantity_ordered").
		Joins("JOIN suppliers ON suppliers.id = purchase_orders.supplier_id").
		Joins("JOIN purchase_order_details ON purchase_order_details.po_id = purchase_orders.id").
		Joins("JOIN items ON items.id = purchase_order_details.item_id").
		Order("purchase_orders.id").
		Scan(&rows).Error
	return rows, err
}

// CreatePurchaseOrder inserts the order header and its single detail
// line as one transaction. The header's generated key is assigned to
// the detail before the second insert.
func CreatePurchaseOrder(db *gorm.DB, po *domain.PurchaseOrder, detail *domain.PurchaseOrderDetail) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(po).Error; err != nil {
			return err
		}
		detail.PoID = po.ID
		return tx.Create(detail).Error
	})
}

// UpdatePurchaseOrder overwrites the header fields and every listed
// detail line in one transaction.
func UpdatePurchaseOrder(db *gorm.DB, po *domain.PurchaseOrder, lines map[int64]OrderLineEdit) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&domain.PurchaseOrder{}).Where("id = ?", po.ID).
			Updates(map[string]interface{}{
				"supplier_id":            po.SupplierID,
				"order_date":             po.OrderDate,
				"expected_delivery_date": po.ExpectedDeliveryDate,
				"status":                 po.Status,
				"updated_at":             time.Now(),
			}).Error
		if err != nil {
			return err
		}
		for id, line := range lines {
			err := tx.Model(&domain.PurchaseOrderDetail{}).Where("id = ?", id).
				Updates(map[string]interface{}{
					"quantity_ordered": line.Quantity,
					"unit_cost":        line.Price,
					"updated_at":       time.Now(),
				}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// DeletePurchaseOrder removes the detail lines first, then the header.
// The store enforces no cascade, so the ordering here is load-bearing.
func DeletePurchaseOrder(db *gorm.DB, id int64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("po_id = ?", id).Delete(&domain.PurchaseOrderDetail{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.PurchaseOrder{}).Error
	})
}
