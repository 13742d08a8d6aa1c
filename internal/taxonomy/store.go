package taxonomy

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"warren/finparse/internal/logging"
	"warren/finparse/internal/models"
)

// customCategoriesFile is the on-disk YAML shape: definitions grouped by
// tenant (company) id.
type customCategoriesFile struct {
	Companies map[string][]models.CategoryDefinition `yaml:"companies"`
}

// CustomStore manages per-tenant custom category definitions in a YAML
// file. The classification pipeline only reads; the write path serves the
// admin surface.
type CustomStore struct {
	FilePath string
	logger   logging.Logger
}

// NewCustomStore creates a store backed by the given YAML file.
func NewCustomStore(filePath string, logger logging.Logger) *CustomStore {
	return &CustomStore{FilePath: filePath, logger: logger}
}

// Load returns the custom definitions for a tenant. A missing file is not
// an error; it simply means no custom categories exist yet.
func (s *CustomStore) Load(companyID string) ([]models.CategoryDefinition, error) {
	file, err := s.readFile()
	if err != nil {
		return nil, err
	}
	defs := file.Companies[companyID]
	for i := range defs {
		defs[i].IsCustom = true
	}
	s.logger.WithFields(
		logging.Field{Key: logging.FieldTenant, Value: companyID},
		logging.Field{Key: logging.FieldCount, Value: len(defs)},
	).Debug("Loaded custom categories")
	return defs, nil
}

// Create validates and persists a new custom definition for a tenant.
// Key format and per-tenant uniqueness are enforced here, before the
// definition ever reaches a registry.
func (s *CustomStore) Create(companyID string, def models.CategoryDefinition) error {
	def.IsCustom = true
	if err := def.Validate(); err != nil {
		return err
	}

	defaults, err := Defaults()
	if err != nil {
		return err
	}
	if _, exists := defaults.Lookup(def.Key); exists {
		return fmt.Errorf("category key %q conflicts with a default category", def.Key)
	}

	file, err := s.readFile()
	if err != nil {
		return err
	}
	for _, existing := range file.Companies[companyID] {
		if existing.Key == def.Key {
			return fmt.Errorf("category key %q already exists for company %s", def.Key, companyID)
		}
	}

	if file.Companies == nil {
		file.Companies = make(map[string][]models.CategoryDefinition)
	}
	file.Companies[companyID] = append(file.Companies[companyID], def)

	if err := s.writeFile(file); err != nil {
		return err
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldTenant, Value: companyID},
		logging.Field{Key: logging.FieldCategory, Value: def.Key},
	).Info("Created custom category")
	return nil
}

func (s *CustomStore) readFile() (*customCategoriesFile, error) {
	data, err := os.ReadFile(s.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &customCategoriesFile{}, nil
		}
		return nil, fmt.Errorf("error reading custom categories file: %w", err)
	}

	var file customCategoriesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing custom categories file: %w", err)
	}
	return &file, nil
}

func (s *CustomStore) writeFile(file *customCategoriesFile) error {
	dir := filepath.Dir(s.FilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("error marshaling custom categories: %w", err)
	}

	if err := os.WriteFile(s.FilePath, data, 0644); err != nil {
		return fmt.Errorf("error writing custom categories file: %w", err)
	}
	return nil
}
