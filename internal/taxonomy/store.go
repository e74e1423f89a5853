package taxonomy

import (
	"fmt"
	"os"
	"path/filepath"

	"source4/dash-etl/internal/logging"

	"gopkg.in/yaml.v3"
)

// Store loads taxonomy configuration from YAML files, falling back to the
// compiled-in defaults when no file is present.
type Store struct {
	file   string
	logger logging.Logger
}

// NewStore creates a taxonomy store for the given file path. An empty path
// means "use the defaults".
func NewStore(file string, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Store{file: file, logger: logger}
}

// findFile looks for the taxonomy file in standard locations.
func (s *Store) findFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "dash-etl", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// Load returns the taxonomy: the configured file when present, otherwise
// the compiled-in defaults. A configured file that exists but fails to
// parse is an error, not a silent fallback.
func (s *Store) Load() (*Taxonomy, error) {
	if s.file == "" {
		s.logger.Debug("No taxonomy file configured, using built-in taxonomy")
		return Default(), nil
	}

	path, err := s.findFile(s.file)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField(logging.FieldFile, s.file).Warn("Taxonomy file not found, using built-in taxonomy")
			return Default(), nil
		}
		return nil, fmt.Errorf("error resolving taxonomy file %s: %w", s.file, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading taxonomy file %s: %w", path, err)
	}

	var t Taxonomy
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("error parsing taxonomy file %s: %w", path, err)
	}

	if err := validate(&t); err != nil {
		return nil, fmt.Errorf("invalid taxonomy file %s: %w", path, err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: "vendors", Value: len(t.MainVendors)},
		logging.Field{Key: "categories", Value: len(t.Categories)},
	).Info("Loaded taxonomy")

	return &t, nil
}

// Save writes a taxonomy to the given path, creating parent directories.
// Used to emit a starter file for local customization.
func (s *Store) Save(t *Taxonomy, path string) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("error marshaling taxonomy: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("error writing taxonomy file: %w", err)
	}
	return nil
}

func validate(t *Taxonomy) error {
	if len(t.MainVendors) == 0 {
		return fmt.Errorf("taxonomy has no main vendors")
	}
	for i, rule := range t.VendorRules {
		if rule.Vendor == "" {
			return fmt.Errorf("vendor rule %d has no vendor name", i)
		}
	}
	for i, cat := range t.Categories {
		if cat.Name == "" {
			return fmt.Errorf("category %d has no name", i)
		}
		if len(cat.Keywords) == 0 {
			return fmt.Errorf("category %q has no keywords", cat.Name)
		}
	}
	return nil
}
