// Package webui holds the HTML-form route handlers. Every handler
// follows the same shape: read form or query parameters, run the
// statements, then redirect with a flash notice or render a page.
package webui

import (
	"stocktrack/internal/webserver"
)

// Register wires the canonical route set onto the web server.
func Register(ws *webserver.WebServer) {
	registerPageRoutes(ws)
	registerInventoryRoutes(ws)
	registerSupplierRoutes(ws)
	registerOrderRoutes(ws)
	registerSalesOrderRoutes(ws)
	registerUserRoutes(ws)
	registerReportRoutes(ws)
}
