package app

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	if loc == nil {
		loc = time.Local
	}
	a.sched = cron.New(cron.WithParser(cronParser), cron.WithLocation(loc))

	_, err := a.sched.AddFunc("@every 10m", func() {
		a.configManager.Refresh()
	})
	if err != nil {
		zap.L().Error("failed to schedule settings refresh", zap.Error(err))
	}

	_, err = a.sched.AddFunc("@daily", func() {
		if !a.GetSettingsBoolValue("catalog", "orphan_sweep_enabled") {
			return
		}
		a.sweepOrphanJoinRows()
	})
	if err != nil {
		zap.L().Error("failed to schedule orphan sweep", zap.Error(err))
	}

	a.sched.Start()
}

// sweepOrphanJoinRows removes join rows whose parent or tag no longer
// exists. The transactional cascades keep these tables consistent; the sweep
// is a safety net for rows left behind by external writes or manual edits.
func (a *Application) sweepOrphanJoinRows() {
	statements := []struct {
		name string
		sql  string
	}{
		{
			name: "product links without product",
			sql: `DELETE FROM business_product_2_tag WHERE "BUSINESS_PRODUCT_ID" NOT IN ` +
				`(SELECT "BUSINESS_PRODUCT_ID" FROM business_product)`,
		},
		{
			name: "product links without tag",
			sql: `DELETE FROM business_product_2_tag WHERE "BUSINESS_PRODUCT_TAG_ID" NOT IN ` +
				`(SELECT "BUSINESS_PRODUCT_TAG_ID" FROM business_product_tag)`,
		},
		{
			name: "category links without category",
			sql: `DELETE FROM business_product_category_2_tag WHERE "BUSINESS_PRODUCT_CATEGORY_ID" NOT IN ` +
				`(SELECT "BUSINESS_PRODUCT_CATEGORY_ID" FROM business_product_category)`,
		},
		{
			name: "category links without tag",
			sql: `DELETE FROM business_product_category_2_tag WHERE "BUSINESS_PRODUCT_TAG_ID" NOT IN ` +
				`(SELECT "BUSINESS_PRODUCT_TAG_ID" FROM business_product_tag)`,
		},
	}

	var removed int64
	for _, stmt := range statements {
		result := a.gormDB.Exec(stmt.sql)
		if result.Error != nil {
			zap.L().Error("orphan sweep statement failed",
				zap.String("step", stmt.name), zap.Error(result.Error))
			continue
		}
		removed += result.RowsAffected
	}
	if removed > 0 {
		zap.L().Warn("orphan sweep removed dangling join rows", zap.Int64("count", removed))
	}
}
