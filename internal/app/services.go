package app

import (
	"gorm.io/gorm"

	"github.com/opsdeck/ams-backend/internal/pkg/logger"
	"github.com/opsdeck/ams-backend/internal/services"
)

type Services struct {
	Auth      services.AuthService
	AssetType services.AssetTypeService
	Asset     services.AssetService
	Export    services.ExportService
	Backup    services.BackupService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) Services {
	log.Info("Wiring services...")
	authService := services.NewAuthService(db, log, reposet.User, cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	typeService := services.NewAssetTypeService(db, log, reposet.AssetType)
	assetService := services.NewAssetService(db, log, reposet.Asset, typeService)
	exportService := services.NewExportService(db, log, reposet.Asset, reposet.AssetType)
	backupService := services.NewBackupService(log, cfg.Backup)

	return Services{
		Auth:      authService,
		AssetType: typeService,
		Asset:     assetService,
		Export:    exportService,
		Backup:    backupService,
	}
}
