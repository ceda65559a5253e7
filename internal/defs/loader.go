// internal/defs/loader.go
package defs

import (
	_ "embed"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalogYAML []byte

type catalogFile struct {
	Units   []UnitType  `yaml:"units"`
	Enemies []EnemyType `yaml:"enemies"`
}

// ParseCatalog разбирает YAML-документ каталога.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	c, err := NewCatalog(file.Units, file.Enemies)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return c, nil
}

// LoadCatalog читает файл каталога. Пустой путь загружает встроенный
// каталог Skin Defense.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d unit and %d enemy definitions from %s", len(c.unitOrder), len(c.enemyOrder), path)
	return c, nil
}

// DefaultCatalog returns the embedded Skin Defense catalog.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalogYAML)
}
