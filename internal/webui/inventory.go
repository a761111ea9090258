package webui

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"stocktrack/internal/domain"
	"stocktrack/internal/repository"
	"stocktrack/internal/webserver"
)

// registerInventoryRoutes registers item list, form and delete routes
func registerInventoryRoutes(ws *webserver.WebServer) {
	ws.GET("/inventory", listInventory)
	ws.GET("/inventory/add", addItemForm)
	ws.POST("/inventory/add", addItem)
	ws.GET("/inventory/edit/:id", editItemForm)
	ws.POST("/inventory/edit/:id", editItem)
	ws.POST("/inventory/delete/:id", deleteItem)
}

func listInventory(c echo.Context) error {
	filter := repository.InventoryFilter{
		Search:   strings.TrimSpace(c.QueryParam("search")),
		Category: strings.TrimSpace(c.QueryParam("category")),
		Stock:    strings.TrimSpace(c.QueryParam("stock")),
	}

	rows, err := repository.ListItemStock(GetDB(c), filter)
	if err != nil {
		return err
	}
	rows = repository.FilterByStockStatus(rows, filter.Stock)

	return c.Render(http.StatusOK, "inventory.html", echo.Map{
		"items":    rows,
		"search":   filter.Search,
		"category": filter.Category,
		"stock":    filter.Stock,
		"flashes":  webserver.TakeFlashes(c),
	})
}

func renderItemForm(c echo.Context, title, action string, item *domain.Item) error {
	db := GetDB(c)
	var categories []domain.Category
	if err := db.Order("id").Find(&categories).Error; err != nil {
		return err
	}
	var suppliers []domain.Supplier
	if err := db.Order("id").Find(&suppliers).Error; err != nil {
		return err
	}
	return c.Render(http.StatusOK, "item_form.html", echo.Map{
		"title":      title,
		"action":     action,
		"item":       item,
		"categories": categories,
		"suppliers":  suppliers,
		"flashes":    webserver.TakeFlashes(c),
	})
}

func addItemForm(c echo.Context) error {
	return renderItemForm(c, "Add Item", "/inventory/add", &domain.Item{})
}

func addItem(c echo.Context) error {
	item, err := parseItemForm(c)
	if err != nil {
		return err
	}

	if err := GetDB(c).Create(item).Error; err != nil {
		return err
	}

	logOperation(c, "item_add", fmt.Sprintf("item %d created", item.ID))
	webserver.SetFlash(c, "success", "Item added successfully!")
	return redirect(c, "/inventory")
}

// editItemForm renders the edit page. An unknown id is not reported
// here: the page comes up with zero-valued fields, matching the
// historical behavior of this route.
func editItemForm(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item ID")
	}
	var item domain.Item
	GetDB(c).Where("id = ?", id).First(&item)
	return renderItemForm(c, "Edit Item", fmt.Sprintf("/inventory/edit/%d", id), &item)
}

func editItem(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item ID")
	}
	item, err := parseItemForm(c)
	if err != nil {
		return err
	}

	err = GetDB(c).Model(&domain.Item{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"item_name":     item.ItemName,
			"description":   item.Description,
			"category_id":   item.CategoryID,
			"supplier_id":   item.SupplierID,
			"unit_price":    item.UnitPrice,
			"reorder_level": item.ReorderLevel,
			"updated_at":    time.Now(),
		}).Error
	if err != nil {
		return err
	}

	logOperation(c, "item_edit", fmt.Sprintf("item %d updated", id))
	webserver.SetFlash(c, "success", "Item updated successfully!")
	return redirect(c, "/inventory")
}

func deleteItem(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item ID")
	}
	if err := GetDB(c).Where("id = ?", id).Delete(&domain.Item{}).Error; err != nil {
		return err
	}
	logOperation(c, "item_delete", fmt.Sprintf("item %d deleted", id))
	webserver.SetFlash(c, "success", "Item deleted successfully!")
	return redirect(c, "/inventory")
}

// parseItemForm coerces every submitted field before any statement
// runs; a malformed field aborts the whole request.
func parseItemForm(c echo.Context) (*domain.Item, error) {
	categoryID, err := formInt64(c, "category_id")
	if err != nil {
		return nil, err
	}
	supplierID, err := formInt64(c, "supplier_id")
	if err != nil {
		return nil, err
	}
	unitPrice, err := formFloat64(c, "unit_price")
	if err != nil {
		return nil, err
	}
	reorderLevel, err := formInt64(c, "reorder_level")
	if err != nil {
		return nil, err
	}
	if reorderLevel < 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "reorder level must be >= 0")
	}

	return &domain.Item{
		ItemName:     c.FormValue("item_name"),
		Description:  c.FormValue("description"),
		CategoryID:   categoryID,
		SupplierID:   supplierID,
		UnitPrice:    unitPrice,
		ReorderLevel: reorderLevel,
	}, nil
}
