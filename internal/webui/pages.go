package webui

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"stocktrack/internal/webserver"
)

// registerPageRoutes registers the static pages. Login and register
// render stub forms only; no session enforcement exists anywhere.
func registerPageRoutes(ws *webserver.WebServer) {
	ws.GET("/", indexPage)
	ws.GET("/login", loginPage)
	ws.GET("/register", registerPage)
}

func indexPage(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", echo.Map{
		"flashes": webserver.TakeFlashes(c),
	})
}

func loginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", echo.Map{})
}

func registerPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", echo.Map{})
}
