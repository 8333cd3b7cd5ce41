package domain

// Field input kinds. The kind decides the client-side widget and which
// normalization rule applies before persistence.
const (
	FieldTypeText     = "text"
	FieldTypeNumber   = "number"
	FieldTypeDate     = "date"
	FieldTypeSelect   = "select"
	FieldTypeDatalist = "datalist"
)

// FieldDescriptor is one entry of an asset type's schema. Names are unique
// within a type's field list; Options is only meaningful for select and
// datalist fields and may be filled lazily from a fixed lookup.
type FieldDescriptor struct {
	Label   string   `json:"label" yaml:"label"`
	Name    string   `json:"name" yaml:"name"`
	Type    string   `json:"type" yaml:"type"`
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`
}
