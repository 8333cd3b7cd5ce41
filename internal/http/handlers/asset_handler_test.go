package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/opsdeck/ams-backend/internal/data/repos"
	"github.com/opsdeck/ams-backend/internal/data/repos/testutil"
	"github.com/opsdeck/ams-backend/internal/domain"
	"github.com/opsdeck/ams-backend/internal/services"
)

func newAssetRouter(t *testing.T) (*gin.Engine, services.AssetTypeService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.DB(t)
	log := testutil.Logger(t)
	typeService := services.NewAssetTypeService(db, log, repos.NewAssetTypeRepo(db, log))
	assetService := services.NewAssetService(db, log, repos.NewAssetRepo(db, log), typeService)
	handler := NewAssetHandler(log, assetService)

	r := gin.New()
	r.GET("/dashboard", handler.Dashboard)
	r.GET("/create_asset", handler.CreateAssetForm)
	r.POST("/create_asset", handler.CreateAsset)
	r.GET("/edit_asset/:asset_id", handler.EditAssetForm)
	r.POST("/edit_asset/:asset_id", handler.UpdateAsset)
	r.GET("/view_asset/:asset_id", handler.ViewAsset)
	return r, typeService
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedLaptopType(t *testing.T, typeService services.AssetTypeService) {
	t.Helper()
	_, err := typeService.CreateType(t.Context(), "Laptop", []domain.FieldDescriptor{
		{Label: "Asset Tag", Name: "asset_tag", Type: domain.FieldTypeText},
		{Label: "Amount", Name: "amount", Type: domain.FieldTypeNumber},
	})
	require.NoError(t, err)
}

func TestCreateAssetRedirectsWithFlash(t *testing.T) {
	r, typeService := newAssetRouter(t)
	seedLaptopType(t, typeService)

	w := postForm(r, "/create_asset", url.Values{
		"category":   {"Laptop"},
		"asset_tag":  {"LT-1"},
		"amount":     {"₹1,23,000"},
		"csrf_token": {"abc"},
		"submit":     {"Save"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/dashboard", w.Header().Get("Location"))

	cookie := w.Header().Get("Set-Cookie")
	require.Contains(t, cookie, "ams_flash")

	// the dashboard drains the flash and lists the asset
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Cookie", cookie)
	dash := httptest.NewRecorder()
	r.ServeHTTP(dash, req)
	require.Equal(t, http.StatusOK, dash.Code)

	var body struct {
		Assets []map[string]any `json:"assets"`
		Flash  *struct {
			Level   string `json:"level"`
			Message string `json:"message"`
		} `json:"flash"`
	}
	require.NoError(t, json.Unmarshal(dash.Body.Bytes(), &body))
	require.Len(t, body.Assets, 1)
	require.NotNil(t, body.Flash)
	require.Equal(t, "success", body.Flash.Level)
	require.Equal(t, "Asset created successfully!", body.Flash.Message)
}

func TestCreateAssetFormRendersSelectedType(t *testing.T) {
	r, typeService := newAssetRouter(t)
	seedLaptopType(t, typeService)

	w := getPath(r, "/create_asset?type=Laptop")
	require.Equal(t, http.StatusOK, w.Code)

	var form struct {
		Types          []string                 `json:"types"`
		FieldsToRender []domain.FieldDescriptor `json:"fields_to_render"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &form))
	require.Equal(t, []string{"Laptop", services.AddNewTypeOption}, form.Types)
	require.Len(t, form.FieldsToRender, 2)
}

func TestViewAssetUnknownIDRedirects(t *testing.T) {
	r, _ := newAssetRouter(t)

	w := getPath(r, "/view_asset/"+uuid.NewString())
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/dashboard", w.Header().Get("Location"))
	require.Contains(t, w.Header().Get("Set-Cookie"), "ams_flash")

	// a malformed id takes the same path
	w = getPath(r, "/view_asset/not-a-uuid")
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestEditAssetRoundTrip(t *testing.T) {
	r, typeService := newAssetRouter(t)
	seedLaptopType(t, typeService)

	postForm(r, "/create_asset", url.Values{
		"category":  {"Laptop"},
		"asset_tag": {"LT-1"},
	})

	dash := getPath(r, "/dashboard")
	var body struct {
		Assets []struct {
			ID string `json:"id"`
		} `json:"assets"`
	}
	require.NoError(t, json.Unmarshal(dash.Body.Bytes(), &body))
	require.Len(t, body.Assets, 1)
	assetID := body.Assets[0].ID

	w := getPath(r, "/edit_asset/"+assetID)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "LT-1")

	w = postForm(r, "/edit_asset/"+assetID, url.Values{
		"asset_tag": {"LT-2"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)

	view := getPath(r, "/view_asset/"+assetID)
	require.Equal(t, http.StatusOK, view.Code)
	require.Contains(t, view.Body.String(), "LT-2")
}
