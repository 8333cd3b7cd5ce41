package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/opsdeck/ams-backend/internal/data/repos"
	"github.com/opsdeck/ams-backend/internal/data/repos/testutil"
	"github.com/opsdeck/ams-backend/internal/domain"
	errs "github.com/opsdeck/ams-backend/internal/pkg/errors"
)

func newAssetService(t *testing.T) (AssetService, AssetTypeService) {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	typeService := NewAssetTypeService(db, log, repos.NewAssetTypeRepo(db, log))
	assetService := NewAssetService(db, log, repos.NewAssetRepo(db, log), typeService)
	return assetService, typeService
}

func TestCreateProjectsOntoAllowedFields(t *testing.T) {
	assetService, typeService := newAssetService(t)
	ctx := context.Background()

	_, err := typeService.CreateType(ctx, "Laptop", []domain.FieldDescriptor{
		{Label: "Asset Tag", Name: "asset_tag", Type: domain.FieldTypeText},
		{Label: "Model", Name: "model", Type: domain.FieldTypeText},
		{Label: "Amount", Name: "amount", Type: domain.FieldTypeNumber},
	})
	require.NoError(t, err)

	asset, err := assetService.Create(ctx, map[string]string{
		"category":   "Laptop",
		"asset_tag":  "LT-042",
		"amount":     "₹1,23,000",
		"rogue_key":  "ignored",
		"csrf_token": "ignored",
	})
	require.NoError(t, err)
	require.Equal(t, "Laptop", asset.Category)

	require.Equal(t, "LT-042", asset.Data["asset_tag"])
	require.Equal(t, "123000", asset.Data["amount"])
	// absent allowed field is materialized as ""
	require.Equal(t, "", asset.Data["model"])
	// category is force-set inside the document
	require.Equal(t, "Laptop", asset.Data["category"])
	_, hasRogue := asset.Data["rogue_key"]
	require.False(t, hasRogue)
}

func TestCreateRegistersInlineType(t *testing.T) {
	assetService, typeService := newAssetService(t)
	ctx := context.Background()

	asset, err := assetService.Create(ctx, map[string]string{
		"category":          AddNewTypeOption,
		"new_type":          "Router",
		"selected_features": "asset_tag, model, given_date",
		"custom_fields":     "Ports:ports:number",
		"asset_tag":         "RT-007",
		"model":             "TP-Link ER605",
		"given_date":        "05-03-2024",
		"ports":             "5",
	})
	require.NoError(t, err)
	require.Equal(t, "Router", asset.Category)
	require.Equal(t, "RT-007", asset.Data["asset_tag"])
	require.Equal(t, "TP-Link ER605", asset.Data["model"])
	require.Equal(t, "05-03-2024", asset.Data["given_date"])
	require.Equal(t, "5", asset.Data["ports"])

	fields, err := typeService.GetFields(ctx, "Router")
	require.NoError(t, err)
	require.Len(t, fields, 4)
}

func TestUpdatePinsCategory(t *testing.T) {
	assetService, typeService := newAssetService(t)
	ctx := context.Background()

	_, err := typeService.CreateType(ctx, "Mobile", []domain.FieldDescriptor{
		{Label: "Asset Tag", Name: "asset_tag", Type: domain.FieldTypeText},
	})
	require.NoError(t, err)

	created, err := assetService.Create(ctx, map[string]string{"category": "Mobile", "asset_tag": "MB-1"})
	require.NoError(t, err)

	updated, err := assetService.Update(ctx, created.ID, map[string]string{
		"category":  "Laptop",
		"asset_tag": "MB-2",
	})
	require.NoError(t, err)
	require.Equal(t, "Mobile", updated.Category)
	require.Equal(t, "Mobile", updated.Data["category"])
	require.Equal(t, "MB-2", updated.Data["asset_tag"])
}

func TestUpdateUnknownAsset(t *testing.T) {
	assetService, _ := newAssetService(t)

	_, err := assetService.Update(context.Background(), uuid.New(), map[string]string{})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestViewRendering(t *testing.T) {
	assetService, typeService := newAssetService(t)
	ctx := context.Background()

	_, err := typeService.CreateType(ctx, "Laptop", []domain.FieldDescriptor{
		{Label: "Asset Tag", Name: "asset_tag", Type: domain.FieldTypeText},
		{Label: "Amount", Name: "amount", Type: domain.FieldTypeNumber},
		{Label: "Remarks", Name: "remarks", Type: domain.FieldTypeText},
	})
	require.NoError(t, err)

	created, err := assetService.Create(ctx, map[string]string{
		"category":  "Laptop",
		"asset_tag": "LT-001",
		"amount":    "₹1,23,000",
	})
	require.NoError(t, err)

	view, err := assetService.View(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, view.Items, 3)
	require.Equal(t, FieldValue{Label: "Asset Tag", Value: "LT-001"}, view.Items[0])
	require.Equal(t, FieldValue{Label: "Amount", Value: "₹123,000.00"}, view.Items[1])
	require.Equal(t, FieldValue{Label: "Remarks", Value: EmptyValuePlaceholder}, view.Items[2])
}

func TestCreateFormAddNewTypeRendersMasterCatalog(t *testing.T) {
	assetService, typeService := newAssetService(t)
	ctx := context.Background()

	_, err := typeService.CreateType(ctx, "Mobile", []domain.FieldDescriptor{
		{Label: "Asset Tag", Name: "asset_tag", Type: domain.FieldTypeText},
	})
	require.NoError(t, err)

	form, err := assetService.CreateForm(ctx, AddNewTypeOption)
	require.NoError(t, err)
	require.Equal(t, []string{"Mobile", AddNewTypeOption}, form.Types)
	require.Len(t, form.FieldsToRender, len(domain.MasterFields()))

	// unselected type renders nothing yet
	form, err = assetService.CreateForm(ctx, "")
	require.NoError(t, err)
	require.Empty(t, form.FieldsToRender)
}

func TestCurrencyDisplay(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "₹0.00"},
		{in: 123, want: "₹123.00"},
		{in: 1234, want: "₹1,234.00"},
		{in: 123000, want: "₹123,000.00"},
		{in: 1234567.5, want: "₹1,234,567.50"},
		{in: -4500, want: "-₹4,500.00"},
	}
	for _, tc := range cases {
		if got := currencyDisplay(tc.in); got != tc.want {
			t.Fatalf("currencyDisplay(%v): want=%q got=%q", tc.in, tc.want, got)
		}
	}
}
