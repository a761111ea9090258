package repository

import (
	"strings"

	"gorm.io/gorm"

	"stocktrack/internal/domain"
)

// Stock status filter values accepted by the inventory list.
const (
	StockFilterInStock    = "in-stock"
	StockFilterLowStock   = "low-stock"
	StockFilterOutOfStock = "out-of-stock"
)

// InventoryFilter carries the optional /inventory query parameters.
// Search and Category are pushed into the SQL WHERE clause; Stock is
// applied afterwards over the grouped rows, see FilterByStockStatus.
type InventoryFilter struct {
	Search   string
	Category string
	Stock    string
}

// ListItemStock returns one row per item with the item's stock summed
// across all of its stock records, zero-filled for items without any.
func ListItemStock(db *gorm.DB, filter InventoryFilter) ([]domain.ItemStockRow, error) {
	q := db.Table("items").
		Select("items.id AS item_id, items.item_name, items.description, " +
			"categories.category_name, suppliers.supplier_name, " +
			"items.unit_price, items.reorder_level, " +
			"SUM(COALESCE(stock.quantity, 0)) AS total_stock").
		Joins("LEFT JOIN categories ON categories.id = items.category_id").
		Joins("LEFT JOIN suppliers ON suppliers.id = items.supplier_id").
		Joins("LEFT JOIN stock ON stock.item_id = items.id")

	if s := strings.TrimSpace(filter.Search); s != "" {
		if strings.EqualFold(db.Name(), "postgres") {
			q = q.Where("items.item_name ILIKE ? OR items.description ILIKE ?",
				"%"+s+"%", "%"+s+"%")
		} else {
			pattern := "%" + strings.ToLower(s) + "%"
			q = q.Where("LOWER(items.item_name) LIKE ? OR LOWER(items.description) LIKE ?",
				pattern, pattern)
		}
	}
	if cat := strings.TrimSpace(filter.Category); cat != "" {
		q = q.Where("categories.category_name = ?", cat)
	}

	var rows []domain.ItemStockRow
	err := q.Group("items.id, items.item_name, items.description, " +
		"categories.category_name, suppliers.supplier_name, " +
		"items.unit_price, items.reorder_level").
		Order("items.id").
		Scan(&rows).Error
	return rows, err
}

// FilterByStockStatus applies the stock-status filter over already
// grouped rows. The three statuses partition items with total >= 0:
// in-stock total > reorder, low-stock 0 < total <= reorder,
// out-of-stock total == 0. An empty status keeps every row.
func FilterByStockStatus(rows []domain.ItemStockRow, status string) []domain.ItemStockRow {
	if status == "" {
		return rows
	}
	filtered := make([]domain.ItemStockRow, 0, len(rows))
	for _, row := range rows {
		switch status {
		case StockFilterInStock:
			if row.TotalStock > row.ReorderLevel {
				filtered = append(filtered, row)
			}
		case StockFilterLowStock:
			if row.TotalStock > 0 && row.TotalStock <= row.ReorderLevel {
				filtered = append(filtered, row)
			}
		case StockFilterOutOfStock:
			if row.TotalStock == 0 {
				filtered = append(filtered, row)
			}
		}
	}
	return filtered
}
