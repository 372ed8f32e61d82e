package jobconfig

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a mapping of group name to variable list,
// keeping the document order of the groups.
func (g *VariableGroups) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*g = nil
		return nil
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected mapping of variable groups, got %v", node.Line, kindName(node.Kind))
	}

	groups := make(VariableGroups, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		var name string
		if err := keyNode.Decode(&name); err != nil {
			return fmt.Errorf("line %d: variable group name: %w", keyNode.Line, err)
		}

		var vars []Variable
		if err := valueNode.Decode(&vars); err != nil {
			return fmt.Errorf("variable group %q: %w", name, err)
		}

		groups = append(groups, VariableGroup{Name: name, Variables: vars})
	}

	*g = groups

	return nil
}

// MarshalYAML encodes the groups as a mapping in their stored order.
func (g VariableGroups) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, group := range g {
		var value yaml.Node
		if err := value.Encode(group.Variables); err != nil {
			return nil, fmt.Errorf("variable group %q: %w", group.Name, err)
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: group.Name},
			&value,
		)
	}

	return node, nil
}

// MarshalYAML writes an absent selector list as an absent key and an empty
// one as [], so both decode back the way they were read.
func (in InputSection) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	fields := []struct {
		key    string
		values []string
	}{
		{"SelectedZoneNames", in.SelectedZoneNames},
		{"SelectedRegionNames", in.SelectedRegionNames},
		{"SelectedFaciesNames", in.SelectedFaciesNames},
		{"RegionProperty", in.RegionProperty},
		{"FaciesProperty", in.FaciesProperty},
	}

	for _, f := range fields {
		if f.values == nil {
			continue
		}

		var value yaml.Node
		if err := value.Encode(f.values); err != nil {
			return nil, fmt.Errorf("%s: %w", f.key, err)
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.key},
			&value,
		)
	}

	return node, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
