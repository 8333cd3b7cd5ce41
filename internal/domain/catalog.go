package domain

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// SeedType is one entry of the default catalog.
type SeedType struct {
	TypeName string            `yaml:"type_name"`
	Fields   []FieldDescriptor `yaml:"fields"`
}

// DefaultCatalog parses the embedded catalog of asset types.
func DefaultCatalog() ([]SeedType, error) {
	var catalog []SeedType
	if err := yaml.Unmarshal(catalogYAML, &catalog); err != nil {
		return nil, fmt.Errorf("parse embedded catalog: %w", err)
	}
	return catalog, nil
}
