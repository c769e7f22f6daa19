package adminapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tastedir/catalogd/internal/domain"
	"github.com/tastedir/catalogd/internal/webserver"
	"github.com/tastedir/catalogd/pkg/common"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func registerAuthRoutes() {
	webserver.PubPOST("/auth/login", login)
}

// login verifies owner credentials and issues a bearer token for the /api
// surface. Session internals stay out of the catalog core; the token is an
// opaque identity as far as every other handler is concerned.
func login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse credentials")
	}
	payload.Username = strings.TrimSpace(payload.Username)
	if payload.Username == "" || payload.Password == "" {
		return fail(c, http.StatusBadRequest, "Missing credentials")
	}

	var owner domain.Owner
	err := GetDB(c).Where(`"USERNAME" = ?`, payload.Username).First(&owner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fail(c, http.StatusUnauthorized, "Invalid username or password")
	} else if err != nil {
		return handleError(c, err)
	}

	hashed := common.Sha256HashWithSalt(payload.Password, common.GetSecretSalt())
	if hashed != owner.Password {
		return fail(c, http.StatusUnauthorized, "Invalid username or password")
	}
	if owner.Status != common.ENABLED {
		return fail(c, http.StatusUnauthorized, "Account disabled")
	}

	ttl := appCtx.GetSettingsInt64Value("auth", "token_ttl_hours")
	if ttl <= 0 {
		ttl = 24
	}
	claims := jwt.MapClaims{
		"oid":      owner.ID,
		"username": owner.Username,
		"exp":      time.Now().Add(time.Duration(ttl) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(appCtx.Config().Web.JwtSecret))
	if err != nil {
		return handleError(c, err)
	}

	if err := GetDB(c).Model(&owner).Update("LAST_LOGIN", time.Now()).Error; err != nil {
		zap.L().Warn("failed to record last login", zap.Error(err))
	}

	return ok(c, map[string]interface{}{
		"token": signed,
		"owner": owner,
	})
}
