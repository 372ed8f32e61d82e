package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Marshal serializes an ExportPlan to YAML.
func Marshal(p *ExportPlan) ([]byte, error) {
	return yaml.Marshal(p)
}

// Unmarshal parses a plan previously written with Marshal.
func Unmarshal(data []byte) (*ExportPlan, error) {
	var p ExportPlan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse plan YAML: %w", err)
	}

	return &p, nil
}

// WriteFile writes an ExportPlan to the given path.
func WriteFile(p *ExportPlan, path string) error {
	data, err := Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write plan file %s: %w", path, err)
	}

	return nil
}
