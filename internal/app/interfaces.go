package app

import (
	"github.com/robfig/cron/v3"

	"github.com/brightcoat/showcase/config"
	"github.com/brightcoat/showcase/internal/intake"
	"github.com/brightcoat/showcase/internal/notify"
	"github.com/brightcoat/showcase/internal/store"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// StoreProvider provides entity store access
type StoreProvider interface {
	Store() *store.Store
}

// IntakeProvider provides the lead intake pipeline
type IntakeProvider interface {
	Intake() *intake.Pipeline
}

// NotifierProvider provides the notification channel
type NotifierProvider interface {
	Notifier() notify.Notifier
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// AppContext combines all provider interfaces for full application context.
// Services should depend on specific providers or this combined interface.
type AppContext interface {
	ConfigProvider
	StoreProvider
	IntakeProvider
	NotifierProvider
	SchedulerProvider

	// InitState resets persisted state back to the seed data
	InitState() error
}
