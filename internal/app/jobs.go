package app

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"stocktrack/internal/domain"
	"stocktrack/internal/repository"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	var err error
	_, err = a.sched.AddFunc("@daily", func() {
		a.SchedReorderAlertTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	_, err = a.sched.AddFunc("@daily", func() {
		a.SchedClearExpireData()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedReorderAlertTask logs every item whose aggregated stock fell
// below its reorder level.
func (a *Application) SchedReorderAlertTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	rows, err := repository.LowStockReport(a.gormDB)
	if err != nil {
		zap.L().Error("reorder alert query failed", zap.Error(err))
		return
	}
	for _, row := range rows {
		zap.L().Warn("item below reorder level",
			zap.String("item", row.ItemName),
			zap.Int64("total_stock", row.TotalStock),
			zap.Int64("reorder_level", row.ReorderLevel))
	}
}

// SchedClearExpireData trims audit rows older than one year.
func (a *Application) SchedClearExpireData() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	a.gormDB.
		Where("opt_time < ? ", time.Now().
			Add(-time.Hour*24*365)).Delete(domain.OperationLog{})
}
