package app

import (
	"context"
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/opsdeck/ams-backend/internal/db"
	httpx "github.com/opsdeck/ams-backend/internal/http"
	"github.com/opsdeck/ams-backend/internal/jobs"
	"github.com/opsdeck/ams-backend/internal/pkg/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Server   *httpx.Server
	Cfg      Config
	Repos    Repos
	Services Services

	backupScheduler *jobs.BackupScheduler
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("postgres automigrate: %w", err)
	}
	theDB := pg.DB()

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, cfg, reposet)
	handlerset := wireHandlers(log, serviceset)
	middleware := wireMiddleware(log, serviceset)
	server := wireServer(log, handlerset, middleware)

	return &App{
		Log:             log,
		DB:              theDB,
		Server:          server,
		Cfg:             cfg,
		Repos:           reposet,
		Services:        serviceset,
		backupScheduler: jobs.NewBackupScheduler(log, serviceset.Backup, cfg.BackupCron),
	}, nil
}

// Start seeds the default type catalog and kicks off the periodic backup.
func (a *App) Start() error {
	if a == nil {
		return nil
	}
	if err := a.Services.AssetType.SeedDefaults(context.Background()); err != nil {
		return fmt.Errorf("seed asset types: %w", err)
	}
	if err := a.backupScheduler.Start(); err != nil {
		return fmt.Errorf("start backup scheduler: %w", err)
	}
	return nil
}

func (a *App) Run() error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Server.Run(":" + a.Cfg.Port)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.backupScheduler != nil {
		a.backupScheduler.Stop()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
