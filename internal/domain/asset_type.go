package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AssetType is a named schema: the ordered field list is stored as data so
// operators can define new types at runtime.
type AssetType struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	TypeName  string         `gorm:"uniqueIndex;not null;column:type_name" json:"type_name"`
	Fields    datatypes.JSON `gorm:"not null;column:fields" json:"fields"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
}

func (AssetType) TableName() string {
	return "asset_type"
}

func (at *AssetType) FieldDescriptors() ([]FieldDescriptor, error) {
	if len(at.Fields) == 0 {
		return []FieldDescriptor{}, nil
	}
	var fields []FieldDescriptor
	if err := json.Unmarshal(at.Fields, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func (at *AssetType) SetFieldDescriptors(fields []FieldDescriptor) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	at.Fields = datatypes.JSON(raw)
	return nil
}
