package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opsdeck/ams-backend/internal/domain"
	"github.com/opsdeck/ams-backend/internal/http/response"
	errs "github.com/opsdeck/ams-backend/internal/pkg/errors"
	"github.com/opsdeck/ams-backend/internal/services"
)

type AssetTypeHandler struct {
	typeService services.AssetTypeService
}

func NewAssetTypeHandler(typeService services.AssetTypeService) *AssetTypeHandler {
	return &AssetTypeHandler{typeService: typeService}
}

type createTypeRequest struct {
	Type     string                   `json:"type"`
	TypeName string                   `json:"type_name"`
	Fields   []domain.FieldDescriptor `json:"fields"`
}

// name prefers the documented "type" key; "type_name" is accepted for
// clients that mirror the stored column name.
func (r createTypeRequest) name() string {
	if r.Type != "" {
		return r.Type
	}
	return r.TypeName
}

func (th *AssetTypeHandler) CreateType(c *gin.Context) {
	var req createTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Type name and fields are required."})
		return
	}

	_, err := th.typeService.CreateType(c.Request.Context(), req.name(), req.Fields)
	switch {
	case err == nil:
		response.RespondOK(c, gin.H{"message": "Type created successfully."})
	case errors.Is(err, errs.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Type name and fields are required."})
	case errors.Is(err, errs.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"message": "Type already exists."})
	default:
		response.RespondError(c, http.StatusInternalServerError, "internal", err)
	}
}

func (th *AssetTypeHandler) GetAssetTypes(c *gin.Context) {
	names, err := th.typeService.ListTypeNames(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "internal", err)
		return
	}
	response.RespondOK(c, names)
}

func (th *AssetTypeHandler) GetFields(c *gin.Context) {
	fields, err := th.typeService.GetFields(c.Request.Context(), c.Param("type_name"))
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "internal", err)
		return
	}
	response.RespondOK(c, gin.H{"fields": fields})
}

func (th *AssetTypeHandler) GetMasterFields(c *gin.Context) {
	response.RespondOK(c, gin.H{"fields": th.typeService.MasterFields()})
}
