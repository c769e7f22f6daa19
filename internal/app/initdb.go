package app

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tastedir/catalogd/internal/domain"
	"github.com/tastedir/catalogd/pkg/common"
)

func (a *Application) checkSuper() {
	const superUsername = "admin"
	const defaultPassword = "catalogd"

	hashedPassword := common.Sha256HashWithSalt(defaultPassword, common.GetSecretSalt())

	var owner domain.Owner
	err := a.gormDB.Where(`"USERNAME" = ?`, superUsername).First(&owner).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := a.gormDB.Create(&domain.Owner{
			ID:        common.UUIDint64(),
			Username:  superUsername,
			Password:  hashedPassword,
			Realname:  "administrator",
			Email:     "N/A",
			Status:    common.ENABLED,
			LastLogin: time.Now(),
		}).Error; err != nil {
			zap.L().Error("failed to create default super owner", zap.Error(err))
		} else {
			zap.L().Info("initialized default super owner account", zap.String("username", superUsername))
		}
	case err != nil:
		zap.L().Error("failed to query super owner", zap.Error(err))
	}
}

// checkDemoBusiness seeds one directory listing so a fresh install has a
// business to attach catalog entries to.
func (a *Application) checkDemoBusiness() {
	var count int64
	a.gormDB.Model(&domain.Business{}).Count(&count)
	if count > 0 {
		return
	}

	var owner domain.Owner
	if err := a.gormDB.Where(`"USERNAME" = ?`, "admin").First(&owner).Error; err != nil {
		return
	}

	biz := domain.Business{
		OwnerID: owner.ID,
		Title:   "Demo Eatery",
		Address: "1 Example Street",
		Status:  1,
	}
	if err := a.gormDB.Create(&biz).Error; err != nil {
		zap.L().Error("failed to create demo business", zap.Error(err))
	} else {
		zap.L().Info("initialized demo business", zap.Int64("business_id", biz.ID))
	}
}

type settingSchema struct {
	Key         string
	Default     string
	Description string
}

var defaultSettings = []settingSchema{
	{Key: "catalog.orphan_sweep_enabled", Default: "true", Description: "Daily sweep removing orphaned tag join rows"},
	{Key: "catalog.export_max_rows", Default: "5000", Description: "Row cap for CSV catalog exports"},
	{Key: "media.max_upload_mb", Default: "8", Description: "Per-file size limit for media uploads"},
	{Key: "auth.token_ttl_hours", Default: "24", Description: "Lifetime of issued login tokens"},
}

func (a *Application) checkSettings() {
	for sortid, schema := range defaultSettings {
		category, name := splitSettingKey(schema.Key)
		if category == "" {
			zap.L().Warn("invalid config key format", zap.String("key", schema.Key))
			continue
		}

		var count int64
		a.gormDB.Model(&domain.SysConfig{}).
			Where("type = ? and name = ?", category, name).
			Count(&count)

		if count == 0 {
			a.gormDB.Create(&domain.SysConfig{
				Sort:   sortid,
				Type:   category,
				Name:   name,
				Value:  schema.Default,
				Remark: schema.Description,
			})
			zap.L().Info("initialized config",
				zap.String("key", schema.Key),
				zap.String("default", schema.Default))
		}
	}
}

func splitSettingKey(key string) (category, name string) {
	for i := 0; i < len(key); i++ {
		if key[i] == '.' {
			return key[:i], key[i+1:]
		}
	}
	return "", key
}
