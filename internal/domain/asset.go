package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Asset is one hardware record. Data holds the persisted document: the
// allowed fields of the owning type (empty string when not submitted) plus
// the category key. Category mirrors data["category"] for grouping queries.
//
// Category is a soft reference to AssetType.TypeName; an asset whose
// category no longer resolves to a type renders with an empty field list.
type Asset struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Category  string            `gorm:"not null;index;column:category" json:"category"`
	Data      datatypes.JSONMap `gorm:"not null;column:data" json:"data"`
	CreatedAt time.Time         `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time         `gorm:"not null" json:"updated_at"`
}

func (Asset) TableName() string {
	return "asset"
}

// Value returns the stored string for a document key, "" when absent or
// not a string.
func (a *Asset) Value(key string) string {
	if a.Data == nil {
		return ""
	}
	if v, ok := a.Data[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
