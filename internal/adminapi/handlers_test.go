package adminapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tastedir/catalogd/config"
	"github.com/tastedir/catalogd/internal/domain"
	"github.com/tastedir/catalogd/internal/webserver"
	"github.com/tastedir/catalogd/pkg/common"
)

type testAppCtx struct {
	db  *gorm.DB
	cfg *config.AppConfig
	bus EventBus.Bus
}

func (t *testAppCtx) DB() *gorm.DB                                  { return t.db }
func (t *testAppCtx) Config() *config.AppConfig                     { return t.cfg }
func (t *testAppCtx) GetSettingsStringValue(c, k string) string     { return "" }
func (t *testAppCtx) GetSettingsInt64Value(c, k string) int64       { return 0 }
func (t *testAppCtx) GetSettingsBoolValue(c, k string) bool         { return false }
func (t *testAppCtx) Scheduler() *cron.Cron                         { return nil }
func (t *testAppCtx) Bus() EventBus.Bus                             { return t.bus }
func (t *testAppCtx) MigrateDB(track bool) error                    { return nil }
func (t *testAppCtx) InitDb()                                       {}
func (t *testAppCtx) DropAll()                                      {}

func setupAPI(t *testing.T) (*echo.Echo, *gorm.DB, *config.AppConfig) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(domain.Tables...))

	cfg := new(config.AppConfig)
	*cfg = *config.DefaultAppConfig
	cfg.Web.JwtSecret = "test-secret"

	webserver.Init(cfg)
	Init(&testAppCtx{db: db, cfg: cfg, bus: EventBus.New()})

	return webserver.Echo(), db, cfg
}

func authToken(t *testing.T, cfg *config.AppConfig, ownerID int64) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"oid": ownerID,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(cfg.Web.JwtSecret))
	require.NoError(t, err)
	return signed
}

func doJSON(e *echo.Echo, method, target, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestApiRequiresToken(t *testing.T) {
	e, _, _ := setupAPI(t)
	rec := doJSON(e, http.MethodGet, "/api/products?businessId=7", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListProductsMissingBusinessID(t *testing.T) {
	e, _, cfg := setupAPI(t)
	token := authToken(t, cfg, 1)

	rec := doJSON(e, http.MethodGet, "/api/products", token, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Missing businessId", decodeBody(t, rec)["error"])

	rec = doJSON(e, http.MethodGet, "/api/products?businessId=abc", token, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductLifecycleOverHTTP(t *testing.T) {
	e, _, cfg := setupAPI(t)
	token := authToken(t, cfg, 1)

	rec := doJSON(e, http.MethodPost, "/api/tags", token, map[string]interface{}{
		"businessId": 7, "title": "spicy",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	tagID := int64(decodeBody(t, rec)["BUSINESS_PRODUCT_TAG_ID"].(float64))

	rec = doJSON(e, http.MethodPost, "/api/products", token, map[string]interface{}{
		"businessId":    7,
		"title":         "Cola",
		"product_price": 3.50,
		"tag_ids":       []int64{tagID},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	productID := int64(body["BUSINESS_PRODUCT_ID"].(float64))
	require.Equal(t, "Cola", body["TITLE"])
	require.Len(t, body["tags"], 1)

	rec = doJSON(e, http.MethodPut, "/api/products", token, map[string]interface{}{
		"id":              productID,
		"pic":             "https://x/img.png",
		"updateImageOnly": true,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	require.Equal(t, "https://x/img.png", body["PIC"])
	require.Equal(t, "Cola", body["TITLE"])
	require.Len(t, body["tags"], 1)

	rec = doJSON(e, http.MethodGet, "/api/products?businessId=7", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)

	rec = doJSON(e, http.MethodDelete, "/api/products", token, map[string]interface{}{"id": productID})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, decodeBody(t, rec)["success"])

	rec = doJSON(e, http.MethodDelete, "/api/products", token, map[string]interface{}{"id": productID})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProductMissingFields(t *testing.T) {
	e, _, cfg := setupAPI(t)
	token := authToken(t, cfg, 1)

	rec := doJSON(e, http.MethodPost, "/api/products", token, map[string]interface{}{
		"businessId": 7, "title": "Cola",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Missing required fields", decodeBody(t, rec)["error"])
}

func TestUpdateMissingID(t *testing.T) {
	e, _, cfg := setupAPI(t)
	token := authToken(t, cfg, 1)

	rec := doJSON(e, http.MethodPut, "/api/products", token, map[string]interface{}{"title": "X"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Missing product id", decodeBody(t, rec)["error"])

	rec = doJSON(e, http.MethodPut, "/api/categories", token, map[string]interface{}{"title": "X"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Missing category id", decodeBody(t, rec)["error"])

	rec = doJSON(e, http.MethodDelete, "/api/tags", token, map[string]interface{}{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Missing tag id", decodeBody(t, rec)["error"])
}

func TestCategoryCreateDefaultsStatus(t *testing.T) {
	e, _, cfg := setupAPI(t)
	token := authToken(t, cfg, 1)

	rec := doJSON(e, http.MethodPost, "/api/categories", token, map[string]interface{}{
		"businessId": 7, "title": "Drinks",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, float64(1), body["STATUS"])
	require.NotZero(t, body["BUSINESS_PRODUCT_CATEGORY_ID"])
}

func TestLoginAndBusinessLookup(t *testing.T) {
	e, db, _ := setupAPI(t)

	owner := domain.Owner{
		ID:       common.UUIDint64(),
		Username: "merchant",
		Password: common.Sha256HashWithSalt("secret", common.GetSecretSalt()),
		Status:   common.ENABLED,
	}
	require.NoError(t, db.Create(&owner).Error)
	require.NoError(t, db.Create(&domain.Business{OwnerID: owner.ID, Title: "Demo Eatery", Status: 1}).Error)

	rec := doJSON(e, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"username": "merchant", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"username": "merchant", "password": "secret",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	token, valid := decodeBody(t, rec)["token"].(string)
	require.True(t, valid)
	require.NotEmpty(t, token)

	rec = doJSON(e, http.MethodGet, "/api/businesses", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var businesses []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &businesses))
	require.Len(t, businesses, 1)
	require.Equal(t, "Demo Eatery", businesses[0]["TITLE"])
}

func TestProductExportCSV(t *testing.T) {
	e, _, cfg := setupAPI(t)
	token := authToken(t, cfg, 1)

	rec := doJSON(e, http.MethodPost, "/api/products", token, map[string]interface{}{
		"businessId": 7, "title": "Cola", "product_price": 3.50,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/products/export?businessId=7", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/csv")
	require.Contains(t, rec.Body.String(), "Cola")
}
