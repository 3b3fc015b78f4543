package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pluqqy/adaptergen/pkg/models"
	"gopkg.in/yaml.v3"
)

const (
	ProjectDir   = ".adaptergen"
	SettingsFile = "settings.yaml"
	ValuesFile   = "values.yaml"
)

// InitProjectStructure creates the project directory with default settings
// and a values file pre-filled from schema. Existing files are kept.
func InitProjectStructure(schema *models.FieldSchema) error {
	if err := os.MkdirAll(ProjectDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ProjectDir, err)
	}

	if _, err := os.Stat(SettingsPath()); errors.Is(err, os.ErrNotExist) {
		if err := WriteSettings(models.DefaultSettings()); err != nil {
			return err
		}
	}

	if _, err := os.Stat(ValuesPath()); errors.Is(err, os.ErrNotExist) {
		if err := WriteValuesTemplate(ValuesPath(), schema); err != nil {
			return err
		}
	}

	return nil
}

func SettingsPath() string {
	return filepath.Join(ProjectDir, SettingsFile)
}

func ValuesPath() string {
	return filepath.Join(ProjectDir, ValuesFile)
}

// ReadSettings loads the project settings. Missing sections keep their
// defaults.
func ReadSettings() (*models.Settings, error) {
	content, err := os.ReadFile(SettingsPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	return settings, nil
}

// ReadSettingsOrDefault returns the project settings, falling back to the
// defaults when they cannot be read
func ReadSettingsOrDefault() *models.Settings {
	settings, err := ReadSettings()
	if err != nil {
		return models.DefaultSettings()
	}
	return settings
}

func WriteSettings(settings *models.Settings) error {
	if err := os.MkdirAll(ProjectDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory for settings: %w", err)
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := os.WriteFile(SettingsPath(), content, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}

// WriteFile writes content to path, creating parent directories
func WriteFile(path string, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
