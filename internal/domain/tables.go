package domain

var Tables = []interface{}{
	// System
	&User{},
	&OperationLog{},
	// Inventory
	&Supplier{},
	&Category{},
	&Item{},
	&Stock{},
	// Purchasing
	&PurchaseOrder{},
	&PurchaseOrderDetail{},
	// Sales
	&Customer{},
	&SalesOrder{},
	&SalesOrderDetail{},
}
