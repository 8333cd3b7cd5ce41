package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/opsdeck/ams-backend/internal/data/repos/testutil"
	"github.com/opsdeck/ams-backend/internal/domain"
	errs "github.com/opsdeck/ams-backend/internal/pkg/errors"
)

func newAssetRepo(t *testing.T) AssetRepo {
	t.Helper()
	return NewAssetRepo(testutil.DB(t), testutil.Logger(t))
}

func TestAssetRepoCreateAssignsIDs(t *testing.T) {
	repo := newAssetRepo(t)

	created, err := repo.Create(context.Background(), nil, []*domain.Asset{
		{Category: "Laptop", Data: datatypes.JSONMap{"asset_tag": "LT-1"}},
	})
	require.NoError(t, err)
	require.Len(t, created, 1)
	require.NotEqual(t, uuid.Nil, created[0].ID)

	got, err := repo.GetByID(context.Background(), nil, created[0].ID)
	require.NoError(t, err)
	require.Equal(t, "Laptop", got.Category)
	require.Equal(t, "LT-1", got.Value("asset_tag"))
}

func TestAssetRepoCreateEmptySlice(t *testing.T) {
	repo := newAssetRepo(t)

	created, err := repo.Create(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Empty(t, created)
}

func TestAssetRepoGetByIDNotFound(t *testing.T) {
	repo := newAssetRepo(t)

	_, err := repo.GetByID(context.Background(), nil, uuid.New())
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestAssetRepoReplaceData(t *testing.T) {
	repo := newAssetRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, nil, []*domain.Asset{
		{Category: "Mobile", Data: datatypes.JSONMap{"asset_tag": "MB-1", "category": "Mobile"}},
	})
	require.NoError(t, err)

	err = repo.ReplaceData(ctx, nil, created[0].ID, datatypes.JSONMap{
		"asset_tag": "MB-2",
		"category":  "Mobile",
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, nil, created[0].ID)
	require.NoError(t, err)
	require.Equal(t, "MB-2", got.Value("asset_tag"))
	require.Equal(t, "Mobile", got.Category)
}

func TestAssetRepoReplaceDataNotFound(t *testing.T) {
	repo := newAssetRepo(t)

	err := repo.ReplaceData(context.Background(), nil, uuid.New(), datatypes.JSONMap{})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestAssetRepoListAll(t *testing.T) {
	repo := newAssetRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, nil, []*domain.Asset{
		{Category: "Laptop", Data: datatypes.JSONMap{"asset_tag": "LT-1"}},
		{Category: "Mobile", Data: datatypes.JSONMap{"asset_tag": "MB-1"}},
	})
	require.NoError(t, err)

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
}
