package webui

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"stocktrack/internal/repository"
	"stocktrack/internal/webserver"
)

// registerReportRoutes registers the read-only report pages
func registerReportRoutes(ws *webserver.WebServer) {
	ws.GET("/reports", reportsPage)
	ws.GET("/performance", performancePage)
}

func reportsPage(c echo.Context) error {
	rows, err := repository.CategoryStockReport(GetDB(c))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "reports.html", echo.Map{
		"report":  rows,
		"flashes": webserver.TakeFlashes(c),
	})
}

func performancePage(c echo.Context) error {
	db := GetDB(c)
	lowStock, err := repository.LowStockReport(db)
	if err != nil {
		return err
	}
	sales, err := repository.ListSalesSummary(db)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "performance.html", echo.Map{
		"low_stock": lowStock,
		"sales":     sales,
		"flashes":   webserver.TakeFlashes(c),
	})
}
