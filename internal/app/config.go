package app

import (
	"time"

	"github.com/opsdeck/ams-backend/internal/pkg/logger"
	"github.com/opsdeck/ams-backend/internal/services"
	"github.com/opsdeck/ams-backend/internal/utils"
)

type Config struct {
	Port            string
	JWTSecretKey    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	Backup     services.BackupConfig
	BackupCron string
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTLSeconds := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)

	return Config{
		Port:            utils.GetEnv("PORT", "8080", log),
		JWTSecretKey:    jwtSecretKey,
		AccessTokenTTL:  time.Duration(accessTokenTTLSeconds) * time.Second,
		RefreshTokenTTL: time.Duration(refreshTokenTTLSeconds) * time.Second,
		Backup: services.BackupConfig{
			Dir:           utils.GetEnv("BACKUP_DIR", "backups", log),
			DBName:        utils.GetEnv("POSTGRES_NAME", "ams", log),
			Host:          utils.GetEnv("POSTGRES_HOST", "localhost", log),
			Port:          utils.GetEnv("POSTGRES_PORT", "5432", log),
			User:          utils.GetEnv("POSTGRES_USER", "postgres", log),
			Password:      utils.GetEnv("POSTGRES_PASSWORD", "", log),
			PgDumpPath:    utils.GetEnv("PG_DUMP_PATH", "pg_dump", log),
			PgRestorePath: utils.GetEnv("PG_RESTORE_PATH", "pg_restore", log),
		},
		BackupCron: utils.GetEnv("BACKUP_CRON", "@weekly", log),
	}
}
