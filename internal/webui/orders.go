package webui

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"stocktrack/internal/domain"
	"stocktrack/internal/repository"
	"stocktrack/internal/webserver"
)

// registerOrderRoutes registers purchase order routes
func registerOrderRoutes(ws *webserver.WebServer) {
	ws.GET("/orders", listOrders)
	ws.GET("/orders/add", addOrderForm)
	ws.POST("/orders/add", addOrder)
	ws.GET("/orders/edit/:id", editOrderForm)
	ws.POST("/orders/edit/:id", editOrder)
	ws.POST("/orders/delete/:id", deleteOrder)
}

func listOrders(c echo.Context) error {
	rows, err := repository.ListOrderLines(GetDB(c))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "orders.html", echo.Map{
		"orders":  rows,
		"flashes": webserver.TakeFlashes(c),
	})
}

func addOrderForm(c echo.Context) error {
	db := GetDB(c)
	var suppliers []domain.Supplier
	if err := db.Order("id").Find(&suppliers).Error; err != nil {
		return err
	}
	var items []domain.Item
	if err := db.Order("id").Find(&items).Error; err != nil {
		return err
	}
	return c.Render(http.StatusOK, "order_add.html", echo.Map{
		"suppliers": suppliers,
		"items":     items,
		"flashes":   webserver.TakeFlashes(c),
	})
}

// addOrder creates the order header with today's date and Pending
// status plus its single detail line, committed together.
func addOrder(c echo.Context) error {
	supplierID, err := formInt64(c, "supplier_id")
	if err != nil {
		return err
	}
	itemID, err := formInt64(c, "item_id")
	if err != nil {
		return err
	}
	quantity, err := formInt64(c, "quantity_ordered")
	if err != nil {
		return err
	}
	unitCost, err := formFloat64(c, "unit_cost")
	if err != nil {
		return err
	}

	po := domain.PurchaseOrder{
		SupplierID:           supplierID,
		OrderDate:            time.Now().Format("2006-01-02"),
		Status:               domain.OrderStatusPending,
		ExpectedDeliveryDate: c.FormValue("expected_delivery_date"),
	}
	detail := domain.PurchaseOrderDetail{
		ItemID:          itemID,
		QuantityOrdered: quantity,
		UnitCost:        unitCost,
	}
	if err := repository.CreatePurchaseOrder(GetDB(c), &po, &detail); err != nil {
		return err
	}

	logOperation(c, "order_add", fmt.Sprintf("purchase order %d created", po.ID))
	webserver.SetFlash(c, "success", "Purchase order created!")
	return redirect(c, "/orders")
}

// editOrderForm renders the edit page. As with items, an unknown id
// renders zero-valued fields instead of redirecting.
func editOrderForm(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order ID")
	}

	db := GetDB(c)
	var po domain.PurchaseOrder
	db.Where("id = ?", id).First(&po)
	var details []domain.PurchaseOrderDetail
	if err := db.Where("po_id = ?", id).Order("id").Find(&details).Error; err != nil {
		return err
	}
	var suppliers []domain.Supplier
	if err := db.Order("id").Find(&suppliers).Error; err != nil {
		return err
	}

	return c.Render(http.StatusOK, "order_edit.html", echo.Map{
		"order":     &po,
		"details":   details,
		"suppliers": suppliers,
		"statuses":  domain.PurchaseOrderStatuses,
		"flashes":   webserver.TakeFlashes(c),
	})
}

// editOrder overwrites the header and every existing detail line from
// the submitted values. All fields are coerced before the transaction
// starts, so a malformed line leaves the order untouched.
func editOrder(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order ID")
	}

	supplierID, err := formInt64(c, "supplier_id")
	if err != nil {
		return err
	}

	db := GetDB(c)
	var details []domain.PurchaseOrderDetail
	if err := db.Where("po_id = ?", id).Find(&details).Error; err != nil {
		return err
	}

	lines := make(map[int64]repository.OrderLineEdit, len(details))
	for _, detail := range details {
		quantity, err := formInt64(c, fmt.Sprintf("quantity_%d", detail.ID))
		if err != nil {
			return err
		}
		unitCost, err := formFloat64(c, fmt.Sprintf("unit_cost_%d", detail.ID))
		if err != nil {
			return err
		}
		lines[detail.ID] = repository.OrderLineEdit{Quantity: quantity, Price: unitCost}
	}

	po := domain.PurchaseOrder{
		ID:                   id,
		SupplierID:           supplierID,
		OrderDate:            c.FormValue("order_date"),
		Status:               c.FormValue("status"),
		ExpectedDeliveryDate: c.FormValue("expected_delivery_date"),
	}
	if err := repository.UpdatePurchaseOrder(db, &po, lines); err != nil {
		return err
	}

	logOperation(c, "order_edit", fmt.Sprintf("purchase order %d updated", id))
	webserver.SetFlash(c, "success", "Purchase order updated!")
	return redirect(c, "/orders")
}

func deleteOrder(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order ID")
	}
	if err := repository.DeletePurchaseOrder(GetDB(c), id); err != nil {
		return err
	}
	logOperation(c, "order_delete", fmt.Sprintf("purchase order %d deleted", id))
	webserver.SetFlash(c, "success", "Purchase order deleted successfully!")
	return redirect(c, "/orders")
}
