package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/opsdeck/ams-backend/internal/data/repos"
	"github.com/opsdeck/ams-backend/internal/domain"
	"github.com/opsdeck/ams-backend/internal/pkg/logger"
)

// AddNewTypeOption is the selector value that marks a submission as
// defining a brand-new asset type inline.
const AddNewTypeOption = "add_new_type"

// EmptyValuePlaceholder is rendered for absent or empty values on the view
// page.
const EmptyValuePlaceholder = "—"

type CreateFormData struct {
	Types          []string                 `json:"types"`
	FieldsToRender []domain.FieldDescriptor `json:"fields_to_render"`
	MasterFields   []domain.FieldDescriptor `json:"master_fields"`
}

type EditFormData struct {
	Asset          *domain.Asset            `json:"asset"`
	Types          []string                 `json:"types"`
	FieldsToRender []domain.FieldDescriptor `json:"fields_to_render"`
	MasterFields   []domain.FieldDescriptor `json:"master_fields"`
}

type FieldValue struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type AssetView struct {
	Asset *domain.Asset `json:"asset"`
	Items []FieldValue  `json:"view_data"`
}

type AssetService interface {
	List(ctx context.Context) ([]*domain.Asset, error)
	CreateForm(ctx context.Context, selectedType string) (*CreateFormData, error)
	Create(ctx context.Context, form map[string]string) (*domain.Asset, error)
	EditForm(ctx context.Context, assetID uuid.UUID) (*EditFormData, error)
	Update(ctx context.Context, assetID uuid.UUID, form map[string]string) (*domain.Asset, error)
	View(ctx context.Context, assetID uuid.UUID) (*AssetView, error)
}

type assetService struct {
	db          *gorm.DB
	log         *logger.Logger
	assetRepo   repos.AssetRepo
	typeService AssetTypeService
}

func NewAssetService(db *gorm.DB, baseLog *logger.Logger, assetRepo repos.AssetRepo, typeService AssetTypeService) AssetService {
	serviceLog := baseLog.With("service", "AssetService")
	return &assetService{db: db, log: serviceLog, assetRepo: assetRepo, typeService: typeService}
}

func (s *assetService) List(ctx context.Context) ([]*domain.Asset, error) {
	return s.assetRepo.List(ctx, nil)
}

// CreateForm resolves what the create page renders: the type selector
// catalog plus the field set for the requested type. Selecting
// add_new_type renders the full master catalog as the editable field set.
func (s *assetService) CreateForm(ctx context.Context, selectedType string) (*CreateFormData, error) {
	names, err := s.typeService.ListTypeNames(ctx)
	if err != nil {
		return nil, err
	}
	types := append(names, AddNewTypeOption)

	var fields []domain.FieldDescriptor
	switch {
	case selectedType == AddNewTypeOption:
		fields = masterFieldsWithStateOptions(s.typeService.MasterFields())
	case selectedType != "":
		fields, err = s.typeService.GetFields(ctx, selectedType)
		if err != nil {
			return nil, err
		}
	default:
		fields = []domain.FieldDescriptor{}
	}

	return &CreateFormData{
		Types:          types,
		FieldsToRender: fields,
		MasterFields:   s.typeService.MasterFields(),
	}, nil
}

// Create persists a new asset from a raw form submission. A submission
// declaring a new type registers the type first and then uses it as the
// effective schema. There is no rejection path: unrecognized fields are
// silently dropped by the allowed-field projection.
func (s *assetService) Create(ctx context.Context, form map[string]string) (*domain.Asset, error) {
	selectedType := form["category"]
	newType := strings.TrimSpace(form["new_type"])
	isNewType := selectedType == AddNewTypeOption && newType != ""

	var fields []domain.FieldDescriptor
	var err error
	if isNewType {
		selectedType = newType
		fields, err = s.typeService.RegisterInlineType(ctx, newType, form["selected_features"], form["custom_fields"])
	} else {
		fields, err = s.typeService.GetFields(ctx, selectedType)
	}
	if err != nil {
		return nil, err
	}

	asset := &domain.Asset{
		ID:       uuid.New(),
		Category: selectedType,
		Data:     buildPayload(form, fields, selectedType),
	}
	if _, err := s.assetRepo.Create(ctx, nil, []*domain.Asset{asset}); err != nil {
		return nil, err
	}
	s.log.Info("Created asset", "asset_id", asset.ID, "category", asset.Category)
	return asset, nil
}

func (s *assetService) EditForm(ctx context.Context, assetID uuid.UUID) (*EditFormData, error) {
	asset, err := s.assetRepo.GetByID(ctx, nil, assetID)
	if err != nil {
		return nil, err
	}
	fields, err := s.typeService.GetFields(ctx, asset.Category)
	if err != nil {
		return nil, err
	}
	names, err := s.typeService.ListTypeNames(ctx)
	if err != nil {
		return nil, err
	}
	return &EditFormData{
		Asset:          asset,
		Types:          names,
		FieldsToRender: fields,
		MasterFields:   s.typeService.MasterFields(),
	}, nil
}

// Update replaces the allowed-field subset of an existing asset. The
// category is pinned to the stored one; the type of an asset cannot change
// through edit.
func (s *assetService) Update(ctx context.Context, assetID uuid.UUID, form map[string]string) (*domain.Asset, error) {
	asset, err := s.assetRepo.GetByID(ctx, nil, assetID)
	if err != nil {
		return nil, err
	}
	fields, err := s.typeService.GetFields(ctx, asset.Category)
	if err != nil {
		return nil, err
	}

	asset.Data = buildPayload(form, fields, asset.Category)
	if err := s.assetRepo.ReplaceData(ctx, nil, asset.ID, asset.Data); err != nil {
		return nil, err
	}
	s.log.Info("Updated asset", "asset_id", asset.ID, "category", asset.Category)
	return asset, nil
}

// View resolves the ordered label/value pairs for display. Values of
// number fields that parse are shown as currency; empty values render as
// the em-dash placeholder.
func (s *assetService) View(ctx context.Context, assetID uuid.UUID) (*AssetView, error) {
	asset, err := s.assetRepo.GetByID(ctx, nil, assetID)
	if err != nil {
		return nil, err
	}
	fields, err := s.typeService.GetFields(ctx, asset.Category)
	if err != nil {
		return nil, err
	}

	items := make([]FieldValue, 0, len(fields))
	for _, f := range fields {
		value := asset.Value(f.Name)
		switch {
		case value == "":
			value = EmptyValuePlaceholder
		case f.Type == domain.FieldTypeNumber:
			if amount, err := strconv.ParseFloat(value, 64); err == nil {
				value = currencyDisplay(amount)
			}
		}
		items = append(items, FieldValue{Label: f.Label, Value: value})
	}
	return &AssetView{Asset: asset, Items: items}, nil
}

// buildPayload projects a normalized submission onto the allowed field set.
// Every allowed field is present in the result, defaulted to "", and the
// category key is force-set.
func buildPayload(form map[string]string, fields []domain.FieldDescriptor, category string) datatypes.JSONMap {
	merged := NormalizeSubmission(form)

	allowed := make(map[string]struct{}, len(fields))
	payload := datatypes.JSONMap{}
	for _, f := range fields {
		allowed[f.Name] = struct{}{}
		payload[f.Name] = ""
	}
	for k, v := range merged {
		if _, ok := allowed[k]; ok {
			payload[k] = v
		}
	}
	payload["category"] = category
	return payload
}

// masterFieldsWithStateOptions fills the state select from the fixed lookup
// when rendering the master catalog for a new type.
func masterFieldsWithStateOptions(fields []domain.FieldDescriptor) []domain.FieldDescriptor {
	for i, f := range fields {
		if strings.ToLower(f.Name) == "state" && f.Type == domain.FieldTypeSelect && len(f.Options) == 0 {
			fields[i].Options = domain.IndianStates()
		}
	}
	return fields
}

// currencyDisplay renders a numeric value as ₹ with thousands separators
// and two decimals.
func currencyDisplay(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	out := "₹" + b.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}
