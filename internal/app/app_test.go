package app

import (
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tastedir/catalogd/config"
	"github.com/tastedir/catalogd/internal/catalog"
	"github.com/tastedir/catalogd/internal/domain"
)

func newTestApp(t *testing.T) *Application {
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
	return &Application{appConfig: cfg, gormDB: db}
}

func TestConfigManagerRoundTrip(t *testing.T) {
	a := newTestApp(t)
	cm := NewConfigManager(a)

	require.Equal(t, "", cm.GetString("catalog", "export_max_rows"))

	require.NoError(t, cm.SetValue("catalog", "export_max_rows", "100"))
	require.Equal(t, "100", cm.GetString("catalog", "export_max_rows"))
	require.Equal(t, int64(100), cm.GetInt64("catalog", "export_max_rows"))

	require.NoError(t, cm.SetValue("catalog", "export_max_rows", "250"))
	require.Equal(t, int64(250), cm.GetInt64("catalog", "export_max_rows"))

	var count int64
	a.gormDB.Model(&domain.SysConfig{}).
		Where("type = ? and name = ?", "catalog", "export_max_rows").
		Count(&count)
	require.Equal(t, int64(1), count)

	require.NoError(t, cm.SetValue("catalog", "orphan_sweep_enabled", "true"))
	require.True(t, cm.GetBool("catalog", "orphan_sweep_enabled"))
}

func TestConfigManagerRefreshPicksUpExternalWrites(t *testing.T) {
	a := newTestApp(t)
	cm := NewConfigManager(a)

	require.NoError(t, a.gormDB.Create(&domain.SysConfig{
		Type: "auth", Name: "token_ttl_hours", Value: "48",
	}).Error)

	cm.Refresh()
	require.Equal(t, int64(48), cm.GetInt64("auth", "token_ttl_hours"))
}

func TestCheckSettingsSeedsOnce(t *testing.T) {
	a := newTestApp(t)

	a.checkSettings()
	var count int64
	a.gormDB.Model(&domain.SysConfig{}).Count(&count)
	require.Equal(t, int64(len(defaultSettings)), count)

	// re-running must not duplicate rows
	a.checkSettings()
	a.gormDB.Model(&domain.SysConfig{}).Count(&count)
	require.Equal(t, int64(len(defaultSettings)), count)

	cm := NewConfigManager(a)
	require.Equal(t, int64(5000), cm.GetInt64("catalog", "export_max_rows"))
	require.True(t, cm.GetBool("catalog", "orphan_sweep_enabled"))
}

func TestCheckSuperAndDemoBusiness(t *testing.T) {
	a := newTestApp(t)

	a.checkSuper()
	a.checkSuper()
	var owners int64
	a.gormDB.Model(&domain.Owner{}).Count(&owners)
	require.Equal(t, int64(1), owners)

	a.checkDemoBusiness()
	a.checkDemoBusiness()
	var businesses int64
	a.gormDB.Model(&domain.Business{}).Count(&businesses)
	require.Equal(t, int64(1), businesses)
}

func TestSweepOrphanJoinRows(t *testing.T) {
	a := newTestApp(t)

	tag := domain.Tag{BusinessID: 7, Title: "spicy"}
	require.NoError(t, a.gormDB.Create(&tag).Error)
	product := domain.Product{BusinessID: 7, Title: "Cola", Price: 3.5, Status: 1}
	require.NoError(t, a.gormDB.Create(&product).Error)
	require.NoError(t, a.gormDB.Create(&domain.ProductTag{
		ProductID: product.ID, TagID: tag.ID,
	}).Error)

	// dangling rows: missing product, missing tag, missing category
	require.NoError(t, a.gormDB.Create(&domain.ProductTag{ProductID: 999999, TagID: tag.ID}).Error)
	require.NoError(t, a.gormDB.Create(&domain.ProductTag{ProductID: product.ID, TagID: 999999}).Error)
	require.NoError(t, a.gormDB.Create(&domain.CategoryTag{CategoryID: 999999, TagID: tag.ID}).Error)

	a.sweepOrphanJoinRows()

	var productLinks []domain.ProductTag
	require.NoError(t, a.gormDB.Find(&productLinks).Error)
	require.Len(t, productLinks, 1)
	require.Equal(t, product.ID, productLinks[0].ProductID)
	require.Equal(t, tag.ID, productLinks[0].TagID)

	var categoryLinks int64
	a.gormDB.Model(&domain.CategoryTag{}).Count(&categoryLinks)
	require.Zero(t, categoryLinks)
}

func TestAuditSubscriberWritesRows(t *testing.T) {
	a := newTestApp(t)
	a.bus = EventBus.New()
	a.subscribeAuditEvents()

	a.bus.Publish(catalog.TopicChanged, catalog.ChangeEvent{
		Entity: "product", Action: "create", ID: 42, BusinessID: 7,
	})

	var rows []domain.AuditLog
	require.NoError(t, a.gormDB.Find(&rows).Error)
	require.Len(t, rows, 1)
	require.Equal(t, "product", rows[0].Entity)
	require.Equal(t, "create", rows[0].Action)
	require.Equal(t, int64(42), rows[0].EntityID)
	require.Equal(t, int64(7), rows[0].BusinessID)
}
