package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/opsdeck/ams-backend/internal/http/handlers"
	httpMW "github.com/opsdeck/ams-backend/internal/http/middleware"
	"github.com/opsdeck/ams-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	AuthHandler    *httpH.AuthHandler
	AuthMiddleware *httpMW.AuthMiddleware

	AssetHandler     *httpH.AssetHandler
	AssetTypeHandler *httpH.AssetTypeHandler
	ExportHandler    *httpH.ExportHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	r.GET("/healthcheck", httpH.HealthCheck)

	// Auth (public)
	if cfg.AuthHandler != nil {
		r.POST("/register", cfg.AuthHandler.Register)
		r.POST("/login", cfg.AuthHandler.Login)
	}

	protected := r.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Auth (protected)
		if cfg.AuthHandler != nil {
			protected.POST("/refresh", cfg.AuthHandler.Refresh)
			protected.POST("/logout", cfg.AuthHandler.Logout)
		}

		// Assets
		if cfg.AssetHandler != nil {
			protected.GET("/dashboard", cfg.AssetHandler.Dashboard)
			protected.GET("/create_asset", cfg.AssetHandler.CreateAssetForm)
			protected.POST("/create_asset", cfg.AssetHandler.CreateAsset)
			protected.GET("/edit_asset/:asset_id", cfg.AssetHandler.EditAssetForm)
			protected.POST("/edit_asset/:asset_id", cfg.AssetHandler.UpdateAsset)
			protected.GET("/view_asset/:asset_id", cfg.AssetHandler.ViewAsset)
		}

		// Asset types
		if cfg.AssetTypeHandler != nil {
			protected.POST("/create_type", cfg.AssetTypeHandler.CreateType)
			protected.GET("/get_asset_types", cfg.AssetTypeHandler.GetAssetTypes)
			protected.GET("/get_fields/:type_name", cfg.AssetTypeHandler.GetFields)
			protected.GET("/get_master_fields", cfg.AssetTypeHandler.GetMasterFields)
		}

		// Exports and backups
		if cfg.ExportHandler != nil {
			export := protected.Group("/export")
			export.GET("/keka", cfg.ExportHandler.ExportKeka)
			export.GET("/excel", cfg.ExportHandler.ExportExcel)
			export.GET("/export_db", cfg.ExportHandler.ExportDB)
			export.GET("/import_db", cfg.ExportHandler.ImportDB)
			export.GET("/manual_backup", cfg.ExportHandler.ManualBackup)
			export.GET("/import_excel", cfg.ExportHandler.ImportExcel)
		}
	}

	return r
}
