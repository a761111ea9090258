package webserver

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"stocktrack/internal/app"
)

// Context keys used by the handler packages.
const (
	ContextKeyDB  = "stocktrack_db"
	ContextKeyApp = "stocktrack_app"
)

type WebServer struct {
	app  *app.Application
	root *echo.Echo
}

func New(application *app.Application) *WebServer {
	ws := &WebServer{app: application, root: echo.New()}
	ws.root.HideBanner = true
	ws.root.HTTPErrorHandler = ws.errorHandler
	ws.root.Renderer = NewTemplateRenderer()

	ws.root.Use(middleware.Recover())
	ws.root.Use(session.Middleware(sessions.NewCookieStore([]byte(application.Config().Web.Secret))))
	ws.root.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ContextKeyDB, application.DB())
			c.Set(ContextKeyApp, application)
			return next(c)
		}
	})

	return ws
}

func (ws *WebServer) GET(path string, h echo.HandlerFunc) {
	ws.root.GET(path, h)
}

func (ws *WebServer) POST(path string, h echo.HandlerFunc) {
	ws.root.POST(path, h)
}

// ServeHTTP lets tests drive the server through httptest without
// binding a socket.
func (ws *WebServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws.root.ServeHTTP(w, r)
}

func (ws *WebServer) Start() error {
	cfg := ws.app.Config().Web
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	zap.S().Infof("starting web server on %s", addr)
	return ws.root.Start(addr)
}

// errorHandler renders the generic failure page. Coercion failures and
// store-level errors both land here; only the explicitly handled
// not-found paths bypass it via redirects.
func (ws *WebServer) errorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
	}

	zap.L().Error("request failed",
		zap.String("method", c.Request().Method),
		zap.String("path", c.Request().URL.Path),
		zap.Error(err))

	if c.Response().Committed {
		return
	}
	if rerr := c.Render(code, "error.html", echo.Map{"code": code}); rerr != nil {
		_ = c.String(code, http.StatusText(code))
	}
}
