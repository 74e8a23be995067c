// Package videos loads the landing page video catalogue.
package videos

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"solidarity-campaign/internal/core/domain"
)

//go:embed catalogue.yaml
var defaultCatalogue []byte

type catalogueFile struct {
	Videos []domain.VideoEntry `yaml:"videos"`
}

// Default returns the built-in catalogue.
func Default() ([]domain.VideoEntry, error) {
	return Parse(defaultCatalogue)
}

// Load reads the catalogue from path, or the built-in one when path is
// empty.
func Load(path string) ([]domain.VideoEntry, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read video catalogue: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalogue. Entries are not validated here; links
// that do not resolve are dropped at render time.
func Parse(data []byte) ([]domain.VideoEntry, error) {
	var f catalogueFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse video catalogue: %w", err)
	}
	return f.Videos, nil
}
