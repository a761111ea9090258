package repository

import (
	"gorm.io/gorm"

	"stocktrack/internal/domain"
)

// CategoryStockReport sums stock per category across all of the
// category's items, zero-filled for categories without stock.
func CategoryStockReport(db *gorm.DB) ([]domain.CategoryStockRow, error) {
	var rows []domain.CategoryStockRow
	err := db.Table("categories").
		Select("categories.category_name, SUM(COALESCE(stock.quantity, 0)) AS total_stock").
		Joins("LEFT JOIN items ON items.category_id = categories.id").
		Joins("LEFT JOIN stock ON stock.item_id = items.id").
		Group("categories.id, categories.category_name").
		Order("categories.id").
		Scan(&rows).Error
	return rows, err
}

// LowStockReport lists items whose aggregated stock is strictly below
// their own reorder level.
func LowStockReport(db *gorm.DB) ([]domain.LowStockRow, error) {
	var rows []domain.LowStockRow
	err := db.Table("items").
		Select("items.item_name, SUM(COALESCE(stock.quantity, 0)) AS total_stock, items.reorder_level").
		Joins("LEFT JOIN stock ON stock.item_id = items.id").
		Group("items.id, items.item_name, items.reorder_level").
		Having("SUM(COALESCE(stock.quantity, 0)) < items.reorder_level").
		Order("items.id").
		Scan(&rows).Error
	return rows, err
}
