package repos

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/opsdeck/ams-backend/internal/domain"
	errs "github.com/opsdeck/ams-backend/internal/pkg/errors"
	"github.com/opsdeck/ams-backend/internal/pkg/logger"
)

type AssetRepo interface {
	Create(ctx context.Context, tx *gorm.DB, assets []*domain.Asset) ([]*domain.Asset, error)
	GetByID(ctx context.Context, tx *gorm.DB, assetID uuid.UUID) (*domain.Asset, error)
	List(ctx context.Context, tx *gorm.DB) ([]*domain.Asset, error)
	ReplaceData(ctx context.Context, tx *gorm.DB, assetID uuid.UUID, data datatypes.JSONMap) error
}

type assetRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssetRepo(db *gorm.DB, baseLog *logger.Logger) AssetRepo {
	repoLog := baseLog.With("repo", "AssetRepo")
	return &assetRepo{db: db, log: repoLog}
}

func (r *assetRepo) Create(ctx context.Context, tx *gorm.DB, assets []*domain.Asset) ([]*domain.Asset, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(assets) == 0 {
		return []*domain.Asset{}, nil
	}
	for _, a := range assets {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
	}

	if err := transaction.WithContext(ctx).Create(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *assetRepo) GetByID(ctx context.Context, tx *gorm.DB, assetID uuid.UUID) (*domain.Asset, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result domain.Asset
	if err := transaction.WithContext(ctx).
		Where("id = ?", assetID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("asset %s: %w", assetID, errs.ErrNotFound)
		}
		return nil, err
	}
	return &result, nil
}

func (r *assetRepo) List(ctx context.Context, tx *gorm.DB) ([]*domain.Asset, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.Asset
	if err := transaction.WithContext(ctx).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// ReplaceData swaps the full document. The category key inside data is
// authoritative; the column mirrors it.
func (r *assetRepo) ReplaceData(ctx context.Context, tx *gorm.DB, assetID uuid.UUID, data datatypes.JSONMap) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	category := ""
	if v, ok := data["category"].(string); ok {
		category = v
	}

	result := transaction.WithContext(ctx).
		Model(&domain.Asset{}).
		Where("id = ?", assetID).
		Updates(map[string]interface{}{"data": data, "category": category})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("asset %s: %w", assetID, errs.ErrNotFound)
	}
	return nil
}
