package webui

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"stocktrack/internal/domain"
	"stocktrack/internal/webserver"
)

// registerSupplierRoutes registers supplier CRUD routes
func registerSupplierRoutes(ws *webserver.WebServer) {
	ws.GET("/suppliers", listSuppliers)
	ws.GET("/suppliers/add", addSupplierForm)
	ws.POST("/suppliers/add", addSupplier)
	ws.GET("/suppliers/edit/:id", editSupplierForm)
	ws.POST("/suppliers/edit/:id", editSupplier)
	ws.POST("/suppliers/delete/:id", deleteSupplier)
}

func listSuppliers(c echo.Context) error {
	var suppliers []domain.Supplier
	if err := GetDB(c).Order("id").Find(&suppliers).Error; err != nil {
		return err
	}
	return c.Render(http.StatusOK, "suppliers.html", echo.Map{
		"suppliers": suppliers,
		"flashes":   webserver.TakeFlashes(c),
	})
}

func addSupplierForm(c echo.Context) error {
	return c.Render(http.StatusOK, "supplier_form.html", echo.Map{
		"title":    "Add Supplier",
		"action":   "/suppliers/add",
		"supplier": &domain.Supplier{},
		"flashes":  webserver.TakeFlashes(c),
	})
}

func addSupplier(c echo.Context) error {
	name := strings.TrimSpace(c.FormValue("supplier_name"))
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "supplier name is required")
	}

	supplier := domain.Supplier{
		SupplierName:  name,
		ContactPerson: c.FormValue("contact_person"),
		Phone:         c.FormValue("phone"),
		Email:         c.FormValue("email"),
	}
	if err := GetDB(c).Create(&supplier).Error; err != nil {
		return err
	}

	logOperation(c, "supplier_add", fmt.Sprintf("supplier %d created", supplier.ID))
	webserver.SetFlash(c, "success", "New supplier added successfully!")
	return redirect(c, "/suppliers")
}

func editSupplierForm(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid supplier ID")
	}

	var supplier domain.Supplier
	if err := GetDB(c).Where("id = ?", id).First(&supplier).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		webserver.SetFlash(c, "danger", "Supplier not found.")
		return redirect(c, "/suppliers")
	} else if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "supplier_form.html", echo.Map{
		"title":    "Edit Supplier",
		"action":   fmt.Sprintf("/suppliers/edit/%d", id),
		"supplier": &supplier,
		"flashes":  webserver.TakeFlashes(c),
	})
}

func editSupplier(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid supplier ID")
	}

	var supplier domain.Supplier
	if err := GetDB(c).Where("id = ?", id).First(&supplier).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		webserver.SetFlash(c, "danger", "Supplier not found.")
		return redirect(c, "/suppliers")
	} else if err != nil {
		return err
	}

	name := strings.TrimSpace(c.FormValue("supplier_name"))
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "supplier name is required")
	}

	err = GetDB(c).Model(&domain.Supplier{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"supplier_name":  name,
			"contact_person": c.FormValue("contact_person"),
			"phone":          c.FormValue("phone"),
			"email":          c.FormValue("email"),
			"updated_at":     time.Now(),
		}).Error
	if err != nil {
		return err
	}

	logOperation(c, "supplier_edit", fmt.Sprintf("supplier %d updated", id))
	webserver.SetFlash(c, "success", "Supplier updated successfully!")
	return redirect(c, "/suppliers")
}

func deleteSupplier(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid supplier ID")
	}
	if err := GetDB(c).Where("id = ?", id).Delete(&domain.Supplier{}).Error; err != nil {
		return err
	}
	logOperation(c, "supplier_delete", fmt.Sprintf("supplier %d deleted", id))
	webserver.SetFlash(c, "success", "Supplier deleted successfully!")
	return redirect(c, "/suppliers")
}
