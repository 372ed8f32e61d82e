// Package metadata builds the YAML sidecar written next to every exported
// file, reading case-wide settings from the global variables file.
package metadata

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultGlobalConfigPath is where the global variables file sits relative
// to the directory jobs run from.
const DefaultGlobalConfigPath = "../../fmuconfig/output/global_variables.yml"

// ErrNoModel is returned when the global config has no model name.
var ErrNoModel = errors.New("global config has no model name")

// GlobalConfig is the part of the global variables file metadata needs.
type GlobalConfig struct {
	Model        Model          `yaml:"model"`
	Masterdata   map[string]any `yaml:"masterdata,omitempty"`
	Access       map[string]any `yaml:"access,omitempty"`
	Stratigraphy map[string]any `yaml:"stratigraphy,omitempty"`
}

// Model identifies the reservoir model the data belongs to.
type Model struct {
	Name     string `yaml:"name"`
	Revision string `yaml:"revision,omitempty"`
}

// LoadGlobalConfig reads the global variables file at path.
func LoadGlobalConfig(path string) (*GlobalConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read global config %s: %w", path, err)
	}

	return ParseGlobalConfig(data)
}

// ParseGlobalConfig parses global variables YAML. Keys other than the
// ones in GlobalConfig are ignored.
func ParseGlobalConfig(data []byte) (*GlobalConfig, error) {
	var gc GlobalConfig
	if err := yaml.Unmarshal(data, &gc); err != nil {
		return nil, fmt.Errorf("failed to parse global config YAML: %w", err)
	}

	if gc.Model.Name == "" {
		return nil, ErrNoModel
	}

	return &gc, nil
}
