package app

import (
	"fmt"
	"os"
	"path"
	"sort"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/brightcoat/showcase/internal/store"
)

const backupKeep = 7

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	var err error
	_, err = a.sched.AddFunc("@hourly", func() {
		a.SchedBackupTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	_, err = a.sched.AddFunc("@daily", func() {
		a.SchedLeadDigestTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedBackupTask writes a timestamped JSON snapshot of the persisted
// slices and prunes old backups.
func (a *Application) SchedBackupTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	data, err := store.Snapshot(a.entityStore)
	if err != nil {
		zap.L().Error("backup snapshot failed", zap.Error(err))
		return
	}

	dir := path.Join(a.appConfig.System.Workdir, "backup")
	name := fmt.Sprintf("state-%s.json", time.Now().Format("20060102-150405"))
	if err := os.WriteFile(path.Join(dir, name), data, 0o644); err != nil {
		zap.L().Error("backup write failed", zap.Error(err))
		return
	}
	zap.L().Info("state backup written", zap.String("file", name))

	a.pruneBackups(dir)
}

func (a *Application) pruneBackups(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	if len(names) <= backupKeep {
		return
	}
	sort.Strings(names)
	for _, name := range names[:len(names)-backupKeep] {
		_ = os.Remove(path.Join(dir, name))
	}
}

// SchedLeadDigestTask logs the daily lead pipeline summary.
func (a *Application) SchedLeadDigestTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	leads := a.entityStore.Leads()
	counts := store.CountLeadsByStatus(leads)
	var today int
	cutoff := time.Now().Add(-24 * time.Hour)
	for _, l := range leads {
		if l.Date.After(cutoff) {
			today++
		}
	}
	zap.L().Info("lead digest",
		zap.Int("total", len(leads)),
		zap.Int("last24h", today),
		zap.Int("new", counts["new"]),
		zap.Int("contacted", counts["contacted"]),
		zap.Int("qualified", counts["qualified"]),
		zap.Int("converted", counts["converted"]),
		zap.Int("lost", counts["lost"]))
}
