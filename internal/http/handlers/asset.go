package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/opsdeck/ams-backend/internal/http/response"
	errs "github.com/opsdeck/ams-backend/internal/pkg/errors"
	"github.com/opsdeck/ams-backend/internal/pkg/logger"
	"github.com/opsdeck/ams-backend/internal/services"
)

type AssetHandler struct {
	log          *logger.Logger
	assetService services.AssetService
}

func NewAssetHandler(log *logger.Logger, assetService services.AssetService) *AssetHandler {
	handlerLog := log.With("handler", "AssetHandler")
	return &AssetHandler{log: handlerLog, assetService: assetService}
}

// Dashboard lists every asset and drains the pending flash, if any.
func (ah *AssetHandler) Dashboard(c *gin.Context) {
	assets, err := ah.assetService.List(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "internal", err)
		return
	}
	response.RespondOK(c, gin.H{
		"assets": assets,
		"flash":  response.TakeFlash(c),
	})
}

// CreateAssetForm returns the create-page data for the type named in the
// "type" query param, or the bare selector when none is given.
func (ah *AssetHandler) CreateAssetForm(c *gin.Context) {
	form, err := ah.assetService.CreateForm(c.Request.Context(), c.Query("type"))
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "internal", err)
		return
	}
	response.RespondOK(c, form)
}

func (ah *AssetHandler) CreateAsset(c *gin.Context) {
	asset, err := ah.assetService.Create(c.Request.Context(), formValues(c))
	if err != nil {
		ah.log.Error("Asset creation failed", "error", err)
		response.SetFlash(c, "danger", "Error saving asset.")
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	ah.log.Info("Asset created", "asset_id", asset.ID)
	response.SetFlash(c, "success", "Asset created successfully!")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (ah *AssetHandler) EditAssetForm(c *gin.Context) {
	assetID, ok := parseAssetID(c)
	if !ok {
		return
	}
	form, err := ah.assetService.EditForm(c.Request.Context(), assetID)
	if err != nil {
		ah.respondAssetError(c, err)
		return
	}
	response.RespondOK(c, form)
}

func (ah *AssetHandler) UpdateAsset(c *gin.Context) {
	assetID, ok := parseAssetID(c)
	if !ok {
		return
	}
	asset, err := ah.assetService.Update(c.Request.Context(), assetID, formValues(c))
	if err != nil {
		ah.respondAssetError(c, err)
		return
	}
	ah.log.Info("Asset updated", "asset_id", asset.ID)
	response.SetFlash(c, "success", "Asset updated successfully!")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (ah *AssetHandler) ViewAsset(c *gin.Context) {
	assetID, ok := parseAssetID(c)
	if !ok {
		return
	}
	view, err := ah.assetService.View(c.Request.Context(), assetID)
	if err != nil {
		ah.respondAssetError(c, err)
		return
	}
	response.RespondOK(c, view)
}

// respondAssetError sends a missing asset back to the dashboard with a
// flash instead of surfacing a bare 404.
func (ah *AssetHandler) respondAssetError(c *gin.Context, err error) {
	if errors.Is(err, errs.ErrNotFound) {
		response.SetFlash(c, "danger", "Asset not found.")
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	response.RespondError(c, http.StatusInternalServerError, "internal", err)
}

func parseAssetID(c *gin.Context) (uuid.UUID, bool) {
	assetID, err := uuid.Parse(c.Param("asset_id"))
	if err != nil {
		response.SetFlash(c, "danger", "Asset not found.")
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return uuid.Nil, false
	}
	return assetID, true
}

// formValues flattens the posted form to a string map, keeping the first
// value per key and dropping the non-payload controls.
func formValues(c *gin.Context) map[string]string {
	_ = c.Request.ParseForm()

	out := make(map[string]string, len(c.Request.PostForm))
	for key, values := range c.Request.PostForm {
		if key == "csrf_token" || key == "submit" {
			continue
		}
		if len(values) > 0 {
			out[key] = values[0]
		}
	}
	return out
}
