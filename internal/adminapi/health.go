package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tastedir/catalogd/internal/webserver"
)

func registerHealthRoutes() {
	webserver.PubGET("/health", health)
}

func health(c echo.Context) error {
	sqlDB, err := GetDB(c).DB()
	if err != nil || sqlDB.Ping() != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{"status": "degraded"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"status": "ok"})
}
