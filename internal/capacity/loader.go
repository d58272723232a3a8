package capacity

import (
	"errors"
	"fmt"
	"os"

	"github.com/guttosm/container-order-service/internal/domain/model"
	"gopkg.in/yaml.v3"
)

// ErrFileNotFound is returned when the capacity table file does not exist.
var ErrFileNotFound = errors.New("capacity table file not found")

// File is the on-disk layout of a capacity table.
//
//	version: "2024-01"
//	classes:
//	  - size: 20ft
//	    refrigerated: false
//	    max_volume: 33
//	    max_weight: 18000
type File struct {
	Version string                `yaml:"version"`
	Classes []model.CapacityClass `yaml:"classes"`
}

// LoadFile reads and validates a YAML capacity table.
func LoadFile(path string) (*Table, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, "", fmt.Errorf("reading capacity table: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML capacity table and returns it with its version label.
func Parse(data []byte) (*Table, string, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, "", fmt.Errorf("parsing capacity table: %w", err)
	}
	table, err := NewTable(f.Classes)
	if err != nil {
		return nil, "", err
	}
	return table, f.Version, nil
}
