package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/opsdeck/ams-backend/internal/data/repos"
	"github.com/opsdeck/ams-backend/internal/domain"
	errs "github.com/opsdeck/ams-backend/internal/pkg/errors"
	"github.com/opsdeck/ams-backend/internal/pkg/logger"
)

// kekaHeaders is the fixed column set of the flat HR-style export.
var kekaHeaders = []string{
	"Asset ID", "Asset Name", "Asset Description", "Asset Location", "Asset Category",
	"Asset Type", "Purchased On (dd-mmm-yyyy)", "Warranty Expires On (dd-mmm-yyyy)",
	"Asset Condition", "Asset Status", "Reason, if Not Available",
	"Employee Number, if Assigned", "Date of Asset Assignment (dd-mmm-yyyy)",
}

// kekaIDFields is the fallback chain for the Asset ID column: first
// non-empty wins.
var kekaIDFields = []string{"asset_tag", "endpoint_name", "serial_no", "mtr_asset_tag", "monitor_asset_tag", "cpu_asset_tag"}

const exportColumnWidth = 25

type ExportService interface {
	TypeWorkbook(ctx context.Context) (*excelize.File, error)
	KekaWorkbook(ctx context.Context) (*excelize.File, error)
}

type exportService struct {
	db        *gorm.DB
	log       *logger.Logger
	assetRepo repos.AssetRepo
	typeRepo  repos.AssetTypeRepo
}

func NewExportService(db *gorm.DB, baseLog *logger.Logger, assetRepo repos.AssetRepo, typeRepo repos.AssetTypeRepo) ExportService {
	serviceLog := baseLog.With("service", "ExportService")
	return &exportService{db: db, log: serviceLog, assetRepo: assetRepo, typeRepo: typeRepo}
}

// TypeWorkbook builds one sheet per category that resolves to a stored
// schema: header row = field labels in schema order, one data row per
// asset in stored order. Categories without a schema are skipped entirely.
func (s *exportService) TypeWorkbook(ctx context.Context) (*excelize.File, error) {
	assets, err := s.assetRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	grouped, order := groupByCategory(assets)

	f := excelize.NewFile()
	headerStyle, cellStyle, err := exportStyles(f)
	if err != nil {
		return nil, err
	}

	wroteSheet := false
	for _, category := range order {
		at, err := s.typeRepo.GetByName(ctx, nil, category)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				s.log.Debug("Skipping category without schema", "category", category)
				continue
			}
			return nil, err
		}
		fields, err := at.FieldDescriptors()
		if err != nil {
			return nil, err
		}

		if _, err := f.NewSheet(category); err != nil {
			return nil, err
		}
		wroteSheet = true

		lastCol, err := excelize.ColumnNumberToName(max(len(fields), 1))
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(category, "A", lastCol, exportColumnWidth); err != nil {
			return nil, err
		}

		for col, field := range fields {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(category, cell, field.Label); err != nil {
				return nil, err
			}
		}
		if len(fields) > 0 {
			if err := f.SetCellStyle(category, "A1", lastCol+"1", headerStyle); err != nil {
				return nil, err
			}
		}

		for row, asset := range grouped[category] {
			for col, field := range fields {
				value := asset.Value(field.Name)
				if field.Type == domain.FieldTypeDate {
					if t, ok := ParseStoredDate(value); ok {
						value = t.Format(StoredDateLayout)
					}
				}
				cell, err := excelize.CoordinatesToCellName(col+1, row+2)
				if err != nil {
					return nil, err
				}
				if err := f.SetCellValue(category, cell, value); err != nil {
					return nil, err
				}
			}
			if len(fields) > 0 {
				first, _ := excelize.CoordinatesToCellName(1, row+2)
				last, _ := excelize.CoordinatesToCellName(len(fields), row+2)
				if err := f.SetCellStyle(category, first, last, cellStyle); err != nil {
					return nil, err
				}
			}
		}
	}

	if wroteSheet {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// KekaWorkbook builds the flat HR-style export: every asset regardless of
// category, projected onto a hardcoded column set.
func (s *exportService) KekaWorkbook(ctx context.Context) (*excelize.File, error) {
	assets, err := s.assetRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	const sheet = "KEKA Export"
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Family: "Calibri"},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return nil, err
	}

	lastCol, err := excelize.ColumnNumberToName(len(kekaHeaders))
	if err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, exportColumnWidth); err != nil {
		return nil, err
	}
	for col, header := range kekaHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, err
	}

	for row, asset := range assets {
		values := kekaRow(asset)
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// kekaRow flattens one asset into the fixed column order.
func kekaRow(asset *domain.Asset) []string {
	assetID := ""
	for _, field := range kekaIDFields {
		if v := strings.TrimSpace(asset.Value(field)); v != "" {
			assetID = v
			break
		}
	}

	assetType := strings.TrimSpace(asset.Value("category"))

	descParts := []string{}
	for _, field := range []string{"model", "system_model", "ram", "storage"} {
		if v := strings.TrimSpace(asset.Value(field)); v != "" {
			descParts = append(descParts, v)
		}
	}
	assetDesc := strings.Join(descParts, "  ")

	area := strings.TrimSpace(asset.Value("area"))
	state := strings.TrimSpace(asset.Value("state"))
	location := area
	if state != "" {
		location = fmt.Sprintf("%s (%s)", area, state)
	}

	givenDate := ""
	if t, ok := ParseStoredDate(asset.Value("given_date")); ok {
		givenDate = t.Format("02-Jan-2006")
	}

	status := strings.TrimSpace(asset.Value("status"))

	username := strings.TrimSpace(asset.Value("username"))
	userCode := strings.TrimSpace(asset.Value("user_code"))
	employeeNumber := username
	if userCode != "" {
		employeeNumber = fmt.Sprintf("%s (%s)", username, userCode)
	}

	return []string{
		assetID,
		assetType,
		assetDesc,
		location,
		"IT assets",
		assetType,
		givenDate,
		"", // warranty expiry is not tracked
		status,
		status,
		status,
		employeeNumber,
		givenDate,
	}
}

func groupByCategory(assets []*domain.Asset) (map[string][]*domain.Asset, []string) {
	grouped := make(map[string][]*domain.Asset)
	order := []string{}
	for _, asset := range assets {
		category := strings.TrimSpace(asset.Category)
		if category == "" {
			category = "Unknown"
		}
		if _, seen := grouped[category]; !seen {
			order = append(order, category)
		}
		grouped[category] = append(grouped[category], asset)
	}
	return grouped, order
}

func exportStyles(f *excelize.File) (header int, cell int, err error) {
	header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Family: "Calibri"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"043251"}},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return 0, 0, err
	}
	cell, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Calibri"},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return 0, 0, err
	}
	return header, cell, nil
}
