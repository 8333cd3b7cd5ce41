package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/opsdeck/ams-backend/internal/data/repos"
	"github.com/opsdeck/ams-backend/internal/domain"
	errs "github.com/opsdeck/ams-backend/internal/pkg/errors"
	"github.com/opsdeck/ams-backend/internal/pkg/logger"
)

type AssetTypeService interface {
	CreateType(ctx context.Context, typeName string, fields []domain.FieldDescriptor) (*domain.AssetType, error)
	ListTypeNames(ctx context.Context) ([]string, error)
	GetFields(ctx context.Context, typeName string) ([]domain.FieldDescriptor, error)
	MasterFields() []domain.FieldDescriptor
	RegisterInlineType(ctx context.Context, typeName, selectedRaw, customRaw string) ([]domain.FieldDescriptor, error)
	SeedDefaults(ctx context.Context) error
}

type assetTypeService struct {
	db       *gorm.DB
	log      *logger.Logger
	typeRepo repos.AssetTypeRepo
}

func NewAssetTypeService(db *gorm.DB, baseLog *logger.Logger, typeRepo repos.AssetTypeRepo) AssetTypeService {
	serviceLog := baseLog.With("service", "AssetTypeService")
	return &assetTypeService{db: db, log: serviceLog, typeRepo: typeRepo}
}

// CreateType is the explicit creation path: it rejects a missing name or
// empty field set and refuses to overwrite an existing type.
func (s *assetTypeService) CreateType(ctx context.Context, typeName string, fields []domain.FieldDescriptor) (*domain.AssetType, error) {
	if strings.TrimSpace(typeName) == "" || len(fields) == 0 {
		return nil, fmt.Errorf("type name and fields are required: %w", errs.ErrInvalidArgument)
	}
	return s.typeRepo.Create(ctx, nil, typeName, fields)
}

func (s *assetTypeService) ListTypeNames(ctx context.Context) ([]string, error) {
	return s.typeRepo.ListNames(ctx, nil)
}

// GetFields resolves a type's schema for rendering. Unknown types yield an
// empty field list rather than an error; empty state/status selects are
// filled from the fixed lookups.
func (s *assetTypeService) GetFields(ctx context.Context, typeName string) ([]domain.FieldDescriptor, error) {
	at, err := s.typeRepo.GetByName(ctx, nil, typeName)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return []domain.FieldDescriptor{}, nil
		}
		return nil, err
	}
	fields, err := at.FieldDescriptors()
	if err != nil {
		return nil, err
	}
	return fillLazyOptions(fields), nil
}

func (s *assetTypeService) MasterFields() []domain.FieldDescriptor {
	return domain.MasterFields()
}

// RegisterInlineType builds and upserts a type defined during asset
// creation: the requested master fields in canonical order followed by the
// parsed custom specs in submission order. Upsert keeps the flow
// re-runnable while an operator refines the type.
func (s *assetTypeService) RegisterInlineType(ctx context.Context, typeName, selectedRaw, customRaw string) ([]domain.FieldDescriptor, error) {
	selected := splitSelectedFeatures(selectedRaw)
	custom := ParseCustomFieldSpecs(customRaw)
	fields := ComposeTypeFields(selected, custom)

	if _, err := s.typeRepo.Upsert(ctx, nil, typeName, fields); err != nil {
		return nil, err
	}
	s.log.Info("Registered inline asset type", "type_name", typeName, "field_count", len(fields))
	return fields, nil
}

func (s *assetTypeService) SeedDefaults(ctx context.Context) error {
	catalog, err := domain.DefaultCatalog()
	if err != nil {
		return err
	}
	return s.typeRepo.Seed(ctx, nil, catalog)
}

func splitSelectedFeatures(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ParseCustomFieldSpecs parses "|"-separated "label:name:type" specs.
// A spec that does not split into exactly three parts is dropped silently.
func ParseCustomFieldSpecs(raw string) []domain.FieldDescriptor {
	out := []domain.FieldDescriptor{}
	for _, item := range strings.Split(raw, "|") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		parts := strings.SplitN(item, ":", 3)
		if len(parts) != 3 {
			continue
		}
		out = append(out, domain.FieldDescriptor{Label: parts[0], Name: parts[1], Type: parts[2]})
	}
	return out
}

// ComposeTypeFields keeps the master fields whose name was requested, in
// master order, then appends the custom fields. Custom fields may shadow a
// master field by name; no de-duplication happens here, the last write wins
// at record-save time.
func ComposeTypeFields(selected []string, custom []domain.FieldDescriptor) []domain.FieldDescriptor {
	requested := make(map[string]struct{}, len(selected))
	for _, name := range selected {
		requested[name] = struct{}{}
	}

	fields := []domain.FieldDescriptor{}
	for _, f := range domain.MasterFields() {
		if _, ok := requested[f.Name]; ok {
			fields = append(fields, f)
		}
	}
	return append(fields, custom...)
}

func fillLazyOptions(fields []domain.FieldDescriptor) []domain.FieldDescriptor {
	for i, f := range fields {
		if f.Type != domain.FieldTypeSelect || len(f.Options) > 0 {
			continue
		}
		switch strings.ToLower(f.Name) {
		case "state":
			fields[i].Options = domain.IndianStates()
		case "status":
			fields[i].Options = domain.StatusDisplayOptions()
		}
	}
	return fields
}
