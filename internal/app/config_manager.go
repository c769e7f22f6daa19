package app

import (
	"sync"

	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/tastedir/catalogd/internal/domain"
)

// ConfigManager caches the sys_config table so hot paths never hit the
// database for a setting read. Refresh rebuilds the whole cache; the cron
// job calls it periodically and SetValue keeps it in step on writes.
type ConfigManager struct {
	app   *Application
	mu    sync.RWMutex
	cache map[string]string
}

func NewConfigManager(a *Application) *ConfigManager {
	cm := &ConfigManager{app: a, cache: make(map[string]string)}
	cm.Refresh()
	return cm
}

func settingKey(category, name string) string {
	return category + "." + name
}

// Refresh reloads every setting row into the cache.
func (cm *ConfigManager) Refresh() {
	var rows []domain.SysConfig
	if err := cm.app.gormDB.Find(&rows).Error; err != nil {
		zap.L().Error("failed to load settings", zap.Error(err))
		return
	}
	next := make(map[string]string, len(rows))
	for _, row := range rows {
		next[settingKey(row.Type, row.Name)] = row.Value
	}
	cm.mu.Lock()
	cm.cache = next
	cm.mu.Unlock()
}

func (cm *ConfigManager) GetString(category, name string) string {
	cm.mu.RLock()
	value, found := cm.cache[settingKey(category, name)]
	cm.mu.RUnlock()
	if found {
		return value
	}

	var row domain.SysConfig
	err := cm.app.gormDB.Where("type = ? and name = ?", category, name).First(&row).Error
	if err != nil {
		return ""
	}
	cm.mu.Lock()
	cm.cache[settingKey(category, name)] = row.Value
	cm.mu.Unlock()
	return row.Value
}

func (cm *ConfigManager) GetInt64(category, name string) int64 {
	return cast.ToInt64(cm.GetString(category, name))
}

func (cm *ConfigManager) GetBool(category, name string) bool {
	return cast.ToBool(cm.GetString(category, name))
}

// SetValue upserts one setting row and updates the cache.
func (cm *ConfigManager) SetValue(category, name, value string) error {
	var count int64
	cm.app.gormDB.Model(&domain.SysConfig{}).
		Where("type = ? and name = ?", category, name).
		Count(&count)
	var err error
	if count == 0 {
		err = cm.app.gormDB.Create(&domain.SysConfig{
			Type:  category,
			Name:  name,
			Value: value,
		}).Error
	} else {
		err = cm.app.gormDB.Model(&domain.SysConfig{}).
			Where("type = ? and name = ?", category, name).
			Update("value", value).Error
	}
	if err != nil {
		return err
	}
	cm.mu.Lock()
	cm.cache[settingKey(category, name)] = value
	cm.mu.Unlock()
	return nil
}
