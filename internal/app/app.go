package app

import (
	"os"
	"path"
	"time"
	_ "time/tzdata"

	"github.com/asaskevich/EventBus"
	"github.com/bwmarrin/snowflake"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/brightcoat/showcase/config"
	"github.com/brightcoat/showcase/internal/domain"
	"github.com/brightcoat/showcase/internal/intake"
	"github.com/brightcoat/showcase/internal/notify"
	"github.com/brightcoat/showcase/internal/store"
)

// Application owns every long-lived component: the entity store, its
// persistence mirror, the notifier, the intake pipeline and the scheduler.
// It is constructed once in main and passed by reference.
type Application struct {
	appConfig   *config.AppConfig
	entityStore *store.Store
	persistence *store.Persistence
	notifier    notify.Notifier
	pipeline    *intake.Pipeline
	sched       *cron.Cron
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider   = (*Application)(nil)
	_ StoreProvider    = (*Application)(nil)
	_ IntakeProvider   = (*Application)(nil)
	_ NotifierProvider = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Store() *store.Store {
	return a.entityStore
}

func (a *Application) Intake() *intake.Pipeline {
	return a.pipeline
}

func (a *Application) Notifier() notify.Notifier {
	return a.notifier
}

// OverrideNotifier replaces the notification channel (used in tests).
func (a *Application) OverrideNotifier(n notify.Notifier) {
	a.notifier = n
}

func (a *Application) Init(cfg *config.AppConfig) error {
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	// Initialize zap logger
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.OutputPaths = []string{"stdout"}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}
		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}
	zap.ReplaceGlobals(logger)

	cfg.InitDirs()

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	a.entityStore = store.NewStore(EventBus.New(), node)

	a.persistence, err = store.OpenPersistence(path.Join(cfg.System.Workdir, "data", "showcase.db"))
	if err != nil {
		return err
	}

	// seed, rehydrate persisted slices, then start mirroring mutations
	a.entityStore.ReplaceProducts(domain.DefaultProducts)
	a.persistence.Rehydrate(a.entityStore)
	if err := a.persistence.Attach(a.entityStore); err != nil {
		return err
	}

	a.notifier = notify.FromConfig(cfg.Notify)

	a.pipeline, err = intake.NewPipeline(a.entityStore, a.notifier, cfg.Notify.Workers)
	if err != nil {
		return err
	}

	a.initJob()

	zap.S().Infof("application initialized, workdir: %s", cfg.System.Workdir)
	return nil
}

// InitState drops every persisted slice and reseeds from defaults.
func (a *Application) InitState() error {
	if err := a.persistence.Reset(); err != nil {
		return err
	}
	a.entityStore.ReplaceProducts(domain.DefaultProducts)
	a.entityStore.ReplaceProjects(domain.DefaultProjects)
	a.entityStore.ReplaceLeads(nil)
	a.entityStore.ReplaceAdminCredential(domain.AdminCredential{Password: domain.DefaultAdminPassword})
	return nil
}

// Scheduler returns the cron scheduler
func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.pipeline != nil {
		a.pipeline.Release()
	}
	if a.persistence != nil {
		_ = a.persistence.Close()
	}
	_ = zap.L().Sync()
}
