package repository

import (
	"time"

	"gorm.io/gorm"

	"stocktrack/internal/domain"
)

// ListSalesSummary returns one row per sales order with its line
// quantities and monetary value aggregated, newest order first.
func ListSalesSummary(db *gorm.DB) ([]domain.SalesSummaryRow, error) {
	var rows []domain.SalesSummaryRow
	err := db.Table("sales_orders").
		Select("sales_orders.id AS so_id, customers.customer_name, " +
			"sales_orders.order_date, sales_orders.status, " +
			"SUM(sales_order_details.quantity_sold) AS total_items, " +
			"SUM(sales_order_details.quantity_sold * sales_order_details.unit_price) AS total_value").
		Joins("JOIN customers ON customers.id = sales_orders.customer_id").
		Joins("JOIN sales_order_details ON sales_order_details.so_id = sales_orders.id").
		Group("sales_orders.id, customers.customer_name, sales_orders.order_date, sales_orders.status").
		Order("sales_orders.id DESC").
		Scan(&rows).Error
	return rows, err
}

// CreateSalesOrder inserts the order header and its single detail
// line as one transaction.
func CreateSalesOrder(db *gorm.DB, so *domain.SalesOrder, detail *domain.SalesOrderDetail) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(so).Error; err != nil {
			return err
		}
		detail.SoID = so.ID
		return tx.Create(detail).Error
	})
}

// UpdateSalesOrder overwrites the header fields and every listed
// detail line in one transaction.
func UpdateSalesOrder(db *gorm.DB, so *domain.SalesOrder, lines map[int64]OrderLineEdit) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&domain.SalesOrder{}).Where("id = ?", so.ID).
			Updates(map[string]interface{}{
				"customer_id":      so.CustomerID,
				"order_date":       so.OrderDate,
				"status":           so.Status,
				"shipping_address": so.ShippingAddress,
				"updated_at":       time.Now(),
			}).Error
		if err != nil {
			return err
		}
		for id, line := range lines {
			err := tx.Model(&domain.SalesOrderDetail{}).Where("id = ?", id).
				Updates(map[string]interface{}{
					"quantity_sold": line.Quantity,
					"unit_price":    line.Price,
					"updated_at":    time.Now(),
				}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteSalesOrder removes the detail lines first, then the header.
func DeleteSalesOrder(db *gorm.DB, id int64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("so_id = ?", id).Delete(&domain.SalesOrderDetail{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.SalesOrder{}).Error
	})
}
