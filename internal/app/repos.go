package app

import (
	"gorm.io/gorm"

	"github.com/opsdeck/ams-backend/internal/data/repos"
	"github.com/opsdeck/ams-backend/internal/pkg/logger"
)

type Repos struct {
	User      repos.UserRepo
	AssetType repos.AssetTypeRepo
	Asset     repos.AssetRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:      repos.NewUserRepo(db, log),
		AssetType: repos.NewAssetTypeRepo(db, log),
		Asset:     repos.NewAssetRepo(db, log),
	}
}
