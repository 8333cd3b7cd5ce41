package app

import (
	httpH "github.com/opsdeck/ams-backend/internal/http/handlers"
	"github.com/opsdeck/ams-backend/internal/pkg/logger"
)

type Handlers struct {
	Auth      *httpH.AuthHandler
	Asset     *httpH.AssetHandler
	AssetType *httpH.AssetTypeHandler
	Export    *httpH.ExportHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:      httpH.NewAuthHandler(serviceset.Auth),
		Asset:     httpH.NewAssetHandler(log, serviceset.Asset),
		AssetType: httpH.NewAssetTypeHandler(serviceset.AssetType),
		Export:    httpH.NewExportHandler(log, serviceset.Export, serviceset.Backup),
	}
}
