package app

import (
	"go.uber.org/zap"

	"github.com/tastedir/catalogd/internal/catalog"
	"github.com/tastedir/catalogd/internal/domain"
	"github.com/tastedir/catalogd/pkg/common"
)

func (a *Application) subscribeAuditEvents() {
	if err := a.bus.Subscribe(catalog.TopicChanged, a.onCatalogChanged); err != nil {
		zap.L().Error("failed to subscribe catalog events", zap.Error(err))
	}
}

// onCatalogChanged persists one audit row per committed catalog mutation.
// Audit failures are logged and swallowed; they never affect the mutation.
func (a *Application) onCatalogChanged(evt catalog.ChangeEvent) {
	row := domain.AuditLog{
		ID:         common.UUIDint64(),
		BusinessID: evt.BusinessID,
		Entity:     evt.Entity,
		Action:     evt.Action,
		EntityID:   evt.ID,
	}
	if err := a.gormDB.Create(&row).Error; err != nil {
		zap.L().Error("failed to write audit log",
			zap.String("entity", evt.Entity),
			zap.String("action", evt.Action),
			zap.Int64("entity_id", evt.ID),
			zap.Error(err))
	}
}
