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

// registerSalesOrderRoutes registers sales order routes
func registerSalesOrderRoutes(ws *webserver.WebServer) {
	ws.GET("/sales_orders", listSalesOrders)
	ws.GET("/sales_orders/add", addSalesOrderForm)
	ws.POST("/sales_orders/add", addSalesOrder)
	ws.GET("/sales_orders/edit/:id", editSalesOrderForm)
	ws.POST("/sales_orders/edit/:id", editSalesOrder)
	ws.POST("/sales_orders/delete/:id", deleteSalesOrder)
}

func listSalesOrders(c echo.Context) error {
	rows, err := repository.ListSalesSummary(GetDB(c))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "sales_orders.html", echo.Map{
		"sales":   rows,
		"flashes": webserver.TakeFlashes(c),
	})
}

func addSalesOrderForm(c echo.Context) error {
	db := GetDB(c)
	var customers []domain.Customer
	if err := db.Order("id").Find(&customers).Error; err != nil {
		return err
	}
	var items []domain.Item
	if err := db.Order("id").Find(&items).Error; err != nil {
		return err
	}
	return c.Render(http.StatusOK, "sales_add.html", echo.Map{
		"customers":    customers,
		"items":        items,
		"current_date": time.Now().Format("2006-01-02"),
		"flashes":      webserver.TakeFlashes(c),
	})
}

func addSalesOrder(c echo.Context) error {
	customerID, err := formInt64(c, "customer_id")
	if err != nil {
		return err
	}
	itemID, err := formInt64(c, "item_id")
	if err != nil {
		return err
	}
	quantity, err := formInt64(c, "quantity_sold")
	if err != nil {
		return err
	}
	unitPrice, err := formFloat64(c, "unit_price")
	if err != nil {
		return err
	}

	so := domain.SalesOrder{
		CustomerID:      customerID,
		OrderDate:       time.Now().Format("2006-01-02"),
		Status:          domain.OrderStatusPending,
		ShippingAddress: c.FormValue("shipping_address"),
	}
	detail := domain.SalesOrderDetail{
		ItemID:       itemID,
		QuantitySold: quantity,
		UnitPrice:    unitPrice,
	}
	if err := repository.CreateSalesOrder(GetDB(c), &so, &detail); err != nil {
		return err
	}

	logOperation(c, "sales_order_add", fmt.Sprintf("sales order %d created", so.ID))
	webserver.SetFlash(c, "success", "Sales order created!")
	return redirect(c, "/sales_orders")
}

func editSalesOrderForm(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid sales order ID")
	}

	db := GetDB(c)
	var so domain.SalesOrder
	db.Where("id = ?", id).First(&so)
	var details []domain.SalesOrderDetail
	if err := db.Where("so_id = ?", id).Order("id").Find(&details).Error; err != nil {
		return err
	}
	var customers []domain.Customer
	if err := db.Order("id").Find(&customers).Error; err != nil {
		return err
	}

	return c.Render(http.StatusOK, "sales_edit.html", echo.Map{
		"order":     &so,
		"details":   details,
		"customers": customers,
		"statuses":  domain.SalesOrderStatuses,
		"flashes":   webserver.TakeFlashes(c),
	})
}

func editSalesOrder(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid sales order ID")
	}

	customerID, err := formInt64(c, "customer_id")
	if err != nil {
		return err
	}

	db := GetDB(c)
	var details []domain.SalesOrderDetail
	if err := db.Where("so_id = ?", id).Find(&details).Error; err != nil {
		return err
	}

	lines := make(map[int64]repository.OrderLineEdit, len(details))
	for _, detail := range details {
		quantity, err := formInt64(c, fmt.Sprintf("quantity_%d", detail.ID))
		if err != nil {
			return err
		}
		unitPrice, err := formFloat64(c, fmt.Sprintf("unit_price_%d", detail.ID))
		if err != nil {
			return err
		}
		lines[detail.ID] = repository.OrderLineEdit{Quantity: quantity, Price: unitPrice}
	}

	so := domain.SalesOrder{
		ID:              id,
		CustomerID:      customerID,
		OrderDate:       c.FormValue("order_date"),
		Status:          c.FormValue("status"),
		ShippingAddress: c.FormValue("shipping_address"),
	}
	if err := repository.UpdateSalesOrder(db, &so, lines); err != nil {
		return err
	}

	logOperation(c, "sales_order_edit", fmt.Sprintf("sales order %d updated", id))
	webserver.SetFlash(c, "success", "Sales order updated!")
	return redirect(c, "/sales_orders")
}

func deleteSalesOrder(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid sales order ID")
	}
	if err := repository.DeleteSalesOrder(GetDB(c), id); err != nil {
		return err
	}
	logOperation(c, "sales_order_delete", fmt.Sprintf("sales order %d deleted", id))
	webserver.SetFlash(c, "success", "Sales order deleted successfully!")
	return redirect(c, "/sales_orders")
}
