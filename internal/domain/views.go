package domain

// Aggregated row shapes produced by the list and report queries.
// These are scan targets only and never migrated.

// ItemStockRow is one inventory list row with the item's stock summed
// across all of its stock records.
type ItemStockRow struct {
	ItemID       int64   `json:"item_id"`
	ItemName     string  `json:"item_name"`
	Description  string  `json:"description"`
	CategoryName string  `json:"category_name"`
	SupplierName string  `json:"supplier_name"`
	UnitPrice    float64 `json:"unit_price"`
	ReorderLevel int64   `json:"reorder_level"`
	TotalStock   int64   `json:"total_stock"`
}

// OrderLineRow is one purchase-order list row; orders with several
// detail lines produce one row per line.
type OrderLineRow struct {
	PoID                 int64  `json:"po_id"`
	SupplierName         string `json:"supplier_name"`
	OrderDate            string `json:"order_date"`
	Status               string `json:"status"`
	ExpectedDeliveryDate string `json:"expected_delivery_date"`
	ItemName             string `json:"item_name"`
	QuantityOrdered      int64  `json:"quantity_ordered"`
}

// SalesSummaryRow is one sales order with its lines aggregated.
type SalesSummaryRow struct {
	SoID         int64   `json:"so_id"`
	CustomerName string  `json:"customer_name"`
	OrderDate    string  `json:"order_date"`
	Status       string  `json:"status"`
	TotalItems   int64   `json:"total_items"`
	TotalValue   float64 `json:"total_value"`
}

// CategoryStockRow is the per-category stock report row.
type CategoryStockRow struct {
	CategoryName string `json:"category_name"`
	TotalStock   int64  `json:"total_stock"`
}

// LowStockRow is an item whose aggregated stock fell below its
// reorder level.
type LowStockRow struct {
	ItemName     string `json:"item_name"`
	TotalStock   int64  `json:"total_stock"`
	ReorderLevel int64  `json:"reorder_level"`
}
