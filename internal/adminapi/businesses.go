package adminapi

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/tastedir/catalogd/internal/domain"
	"github.com/tastedir/catalogd/internal/webserver"
)

func registerBusinessRoutes() {
	webserver.ApiGET("/businesses", listBusinesses)
}

// listBusinesses returns the directory listings owned by the authenticated
// caller. This is the only read of the business tables; the catalog routes
// take businessId verbatim from the request.
func listBusinesses(c echo.Context) error {
	ownerID := tokenOwnerID(c)
	if ownerID == 0 {
		return fail(c, http.StatusUnauthorized, "Invalid token")
	}

	var businesses []domain.Business
	err := GetDB(c).Where(`"BUSINESS_OWNER_ID" = ?`, ownerID).
		Order(`"BUSINESS_ID" DESC`).
		Find(&businesses).Error
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, businesses)
}

func tokenOwnerID(c echo.Context) int64 {
	token, valid := c.Get("user").(*jwt.Token)
	if !valid {
		return 0
	}
	claims, valid := token.Claims.(jwt.MapClaims)
	if !valid {
		return 0
	}
	return cast.ToInt64(claims["oid"])
}
