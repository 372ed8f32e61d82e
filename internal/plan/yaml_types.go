package plan

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func scalarNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func encodeNode(v any) (*yaml.Node, error) {
	var n yaml.Node
	if err := n.Encode(v); err != nil {
		return nil, err
	}

	return &n, nil
}

// MarshalYAML encodes the selectors in the legacy shape:
//
//	Region: {filters: [...], parameter: Regions}
//	Facies: {filters: [...], parameter: Facies}
//	Zone: {filters: [...]}
//	parameter: subgrids
func (s Selectors) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	add := func(key string, v any) error {
		value, err := encodeNode(v)
		if err != nil {
			return fmt.Errorf("selector %s: %w", key, err)
		}

		node.Content = append(node.Content, scalarNode(key), value)

		return nil
	}

	if s.Region != nil {
		if err := add(SelectorRegion, s.Region); err != nil {
			return nil, err
		}
	}

	if s.Facies != nil {
		if err := add(SelectorFacies, s.Facies); err != nil {
			return nil, err
		}
	}

	if err := add(SelectorZone, s.Zone); err != nil {
		return nil, err
	}

	node.Content = append(node.Content, scalarNode("parameter"), scalarNode(s.Parameter))

	return node, nil
}

// UnmarshalYAML decodes the legacy selector shape.
func (s *Selectors) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Region    *Selector    `yaml:"Region"`
		Facies    *Selector    `yaml:"Facies"`
		Zone      ZoneSelector `yaml:"Zone"`
		Parameter string       `yaml:"parameter"`
	}

	if err := node.Decode(&raw); err != nil {
		return err
	}

	*s = Selectors{Region: raw.Region, Facies: raw.Facies, Zone: raw.Zone, Parameter: raw.Parameter}

	return nil
}

// tableTag marks literal table values that would otherwise read back as
// the hidden or property form.
const tableTag = "!table"

func isHiddenNode(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Value == HiddenValues
}

func isPropertyNode(node *yaml.Node) bool {
	return node.Kind == yaml.MappingNode && len(node.Content) == 2 && node.Content[0].Value == "property"
}

// MarshalYAML encodes values as the literal table values, the "hidden"
// tag, or a {property: name} reference. Literal values shaped like one
// of the other forms are written with the !table tag.
func (v Values) MarshalYAML() (any, error) {
	switch v.Kind {
	case ValuesHidden:
		return HiddenValues, nil
	case ValuesProperty:
		return map[string]string{"property": v.Property}, nil
	}

	node, err := encodeNode(v.Table)
	if err != nil {
		return nil, err
	}

	if isHiddenNode(node) || isPropertyNode(node) {
		node.Tag = tableTag
	}

	return node, nil
}

// UnmarshalYAML decodes any of the three value forms.
func (v *Values) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == tableTag {
		literal := *node
		literal.Tag = ""

		return v.decodeTable(&literal)
	}

	if isHiddenNode(node) {
		*v = Values{Kind: ValuesHidden}
		return nil
	}

	if isPropertyNode(node) {
		*v = Values{Kind: ValuesProperty, Property: node.Content[1].Value}
		return nil
	}

	return v.decodeTable(node)
}

func (v *Values) decodeTable(node *yaml.Node) error {
	var table any
	if err := node.Decode(&table); err != nil {
		return err
	}

	*v = Values{Kind: ValuesTable, Table: table}

	return nil
}

// MarshalYAML encodes the definitions as a mapping in insertion order.
func (d Definitions) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, name := range d.names {
		value, err := encodeNode(d.byName[name])
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", name, err)
		}

		node.Content = append(node.Content, scalarNode(name), value)
	}

	return node, nil
}

// UnmarshalYAML decodes a mapping of name to definition, keeping order.
func (d *Definitions) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected mapping of variable definitions", node.Line)
	}

	*d = Definitions{}

	for i := 0; i+1 < len(node.Content); i += 2 {
		var def VariableDefinition
		if err := node.Content[i+1].Decode(&def); err != nil {
			return fmt.Errorf("variable %q: %w", node.Content[i].Value, err)
		}

		d.Set(node.Content[i].Value, def)
	}

	return nil
}
