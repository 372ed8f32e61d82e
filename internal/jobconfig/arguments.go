package jobconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Arguments are the raw arguments of any host job. They keep the
// document order so they can be decoded into a typed schema later.
type Arguments struct {
	node yaml.Node
}

// ParseArguments parses raw job arguments from YAML or JSON.
func ParseArguments(data []byte) (*Arguments, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse job arguments: %w", err)
	}

	a := &Arguments{node: yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}}
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		a.node = *doc.Content[0]
	}

	if a.node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("job arguments must be a mapping, got %s", kindName(a.node.Kind))
	}

	return a, nil
}

// LoadArguments reads raw job arguments from path.
func LoadArguments(path string) (*Arguments, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	return ParseArguments(data)
}

// ArgumentsOf encodes v, typically a *JobConfig, as job arguments.
func ArgumentsOf(v any) (*Arguments, error) {
	var a Arguments
	if err := a.node.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode job arguments: %w", err)
	}

	if a.node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("job arguments must be a mapping, got %s", kindName(a.node.Kind))
	}

	return &a, nil
}

// Sections returns the top level keys in document order.
func (a *Arguments) Sections() []string {
	var keys []string
	for i := 0; i+1 < len(a.node.Content); i += 2 {
		keys = append(keys, a.node.Content[i].Value)
	}

	return keys
}

// Decode decodes the arguments into out.
func (a *Arguments) Decode(out any) error {
	return a.node.Decode(out)
}

// JobConfig decodes the arguments as a volumetrics job.
func (a *Arguments) JobConfig() (*JobConfig, error) {
	var jc JobConfig
	if err := a.Decode(&jc); err != nil {
		return nil, fmt.Errorf("failed to decode volumetrics job: %w", err)
	}

	return &jc, nil
}

// Marshal serializes the arguments to YAML.
func (a *Arguments) Marshal() ([]byte, error) {
	return yaml.Marshal(&a.node)
}
