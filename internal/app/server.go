package app

import (
	httpx "github.com/opsdeck/ams-backend/internal/http"
	"github.com/opsdeck/ams-backend/internal/pkg/logger"
)

func wireServer(log *logger.Logger, handlerset Handlers, middleware Middleware) *httpx.Server {
	return httpx.NewServer(log, httpx.RouterConfig{
		Log:              log,
		AuthHandler:      handlerset.Auth,
		AuthMiddleware:   middleware.Auth,
		AssetHandler:     handlerset.Asset,
		AssetTypeHandler: handlerset.AssetType,
		ExportHandler:    handlerset.Export,
	})
}
