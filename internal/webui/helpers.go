package webui

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"stocktrack/internal/domain"
	"stocktrack/internal/webserver"
)

func GetDB(c echo.Context) *gorm.DB {
	return c.Get(webserver.ContextKeyDB).(*gorm.DB)
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	return cast.ToInt64E(c.Param(name))
}

// Numeric form coercion. A missing or malformed field fails here,
// before any statement has run, and the request aborts to the generic
// error page.

func formInt64(c echo.Context, name string) (int64, error) {
	v, err := cast.ToInt64E(c.FormValue(name))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("invalid form field %q", name))
	}
	return v, nil
}

func formFloat64(c echo.Context, name string) (float64, error) {
	v, err := cast.ToFloat64E(c.FormValue(name))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("invalid form field %q", name))
	}
	return v, nil
}

// logOperation appends an audit row for a completed mutation.
func logOperation(c echo.Context, action, desc string) {
	err := GetDB(c).Create(&domain.OperationLog{
		OprIp:     c.RealIP(),
		OptAction: action,
		OptDesc:   desc,
		OptTime:   time.Now(),
	}).Error
	if err != nil {
		zap.L().Error("failed to write operation log", zap.String("action", action), zap.Error(err))
	}
}

func redirect(c echo.Context, target string) error {
	return c.Redirect(http.StatusFound, target)
}
