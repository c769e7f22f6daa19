package adminapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tastedir/catalogd/internal/app"
	"github.com/tastedir/catalogd/internal/catalog"
	"github.com/tastedir/catalogd/internal/media"
)

var (
	appCtx      app.AppContext
	srv         *catalog.Service
	mediaClient *media.Client
)

// Init wires the handlers to the application context and registers every
// route on the web server.
func Init(ctx app.AppContext) {
	appCtx = ctx
	srv = catalog.NewService(ctx.DB(), ctx.Bus())
	mediaClient = media.NewClient(ctx.Config().Media.Endpoint, ctx.Config().Media.Token)

	registerHealthRoutes()
	registerAuthRoutes()
	registerBusinessRoutes()
	registerProductRoutes()
	registerCategoryRoutes()
	registerTagRoutes()
	registerMediaRoutes()
}

// GetDB returns the shared database handle.
func GetDB(c echo.Context) *gorm.DB {
	return appCtx.DB()
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]interface{}{"error": message})
}

// handleError maps the service error taxonomy onto HTTP responses.
func handleError(c echo.Context, err error) error {
	var ve *catalog.ValidationError
	var nfe *catalog.NotFoundError
	var ue *media.UpstreamError
	switch {
	case errors.As(err, &ve):
		return fail(c, http.StatusBadRequest, ve.Message)
	case errors.As(err, &nfe):
		return fail(c, http.StatusNotFound, nfe.Error())
	case errors.As(err, &ue):
		return fail(c, http.StatusBadGateway, "Media upload failed")
	default:
		zap.L().Error("request failed",
			zap.String("path", c.Path()),
			zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Internal server error")
	}
}

// parseBusinessID reads the businessId query parameter; zero means missing
// or non-numeric.
func parseBusinessID(c echo.Context) int64 {
	raw := strings.TrimSpace(c.QueryParam("businessId"))
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

type idPayload struct {
	ID int64 `json:"id"`
}
