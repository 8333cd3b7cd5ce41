package repos

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/opsdeck/ams-backend/internal/domain"
	errs "github.com/opsdeck/ams-backend/internal/pkg/errors"
	"github.com/opsdeck/ams-backend/internal/pkg/logger"
)

type AssetTypeRepo interface {
	GetByName(ctx context.Context, tx *gorm.DB, typeName string) (*domain.AssetType, error)
	ListNames(ctx context.Context, tx *gorm.DB) ([]string, error)
	Upsert(ctx context.Context, tx *gorm.DB, typeName string, fields []domain.FieldDescriptor) (*domain.AssetType, error)
	Create(ctx context.Context, tx *gorm.DB, typeName string, fields []domain.FieldDescriptor) (*domain.AssetType, error)
	Seed(ctx context.Context, tx *gorm.DB, catalog []domain.SeedType) error
}

type assetTypeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssetTypeRepo(db *gorm.DB, baseLog *logger.Logger) AssetTypeRepo {
	repoLog := baseLog.With("repo", "AssetTypeRepo")
	return &assetTypeRepo{db: db, log: repoLog}
}

func (r *assetTypeRepo) GetByName(ctx context.Context, tx *gorm.DB, typeName string) (*domain.AssetType, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result domain.AssetType
	if err := transaction.WithContext(ctx).
		Where("type_name = ?", typeName).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("asset type %q: %w", typeName, errs.ErrNotFound)
		}
		return nil, err
	}
	return &result, nil
}

func (r *assetTypeRepo) ListNames(ctx context.Context, tx *gorm.DB) ([]string, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var names []string
	if err := transaction.WithContext(ctx).
		Model(&domain.AssetType{}).
		Order("type_name ASC").
		Pluck("type_name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

func (r *assetTypeRepo) Upsert(ctx context.Context, tx *gorm.DB, typeName string, fields []domain.FieldDescriptor) (*domain.AssetType, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	existing, err := r.GetByName(ctx, transaction, typeName)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		if err := existing.SetFieldDescriptors(fields); err != nil {
			return nil, err
		}
		if err := transaction.WithContext(ctx).
			Model(existing).
			Update("fields", existing.Fields).Error; err != nil {
			return nil, err
		}
		return existing, nil
	}

	created := &domain.AssetType{ID: uuid.New(), TypeName: typeName}
	if err := created.SetFieldDescriptors(fields); err != nil {
		return nil, err
	}
	if err := transaction.WithContext(ctx).Create(created).Error; err != nil {
		return nil, err
	}
	return created, nil
}

func (r *assetTypeRepo) Create(ctx context.Context, tx *gorm.DB, typeName string, fields []domain.FieldDescriptor) (*domain.AssetType, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if _, err := r.GetByName(ctx, transaction, typeName); err == nil {
		return nil, fmt.Errorf("asset type %q: %w", typeName, errs.ErrConflict)
	} else if !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	created := &domain.AssetType{ID: uuid.New(), TypeName: typeName}
	if err := created.SetFieldDescriptors(fields); err != nil {
		return nil, err
	}
	if err := transaction.WithContext(ctx).Create(created).Error; err != nil {
		return nil, err
	}
	return created, nil
}

// Seed inserts catalog entries whose type_name is not present yet. Existing
// types are left untouched so operator-defined schemas survive reseeding.
func (r *assetTypeRepo) Seed(ctx context.Context, tx *gorm.DB, catalog []domain.SeedType) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	for _, entry := range catalog {
		_, err := r.GetByName(ctx, transaction, entry.TypeName)
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrNotFound) {
			return err
		}
		if _, err := r.Create(ctx, transaction, entry.TypeName, entry.Fields); err != nil {
			return err
		}
		r.log.Debug("Seeded asset type", "type_name", entry.TypeName)
	}
	return nil
}
