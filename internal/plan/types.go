package plan

import (
	"rmsexport/internal/common"
	"rmsexport/internal/diagnostic"
	"rmsexport/internal/volumes"
)

// Selector keys in resolution order.
const (
	SelectorZone   = "Zone"
	SelectorRegion = "Region"
	SelectorFacies = "Facies"
)

// ZoneParameter is the parameter zones are always selected by.
const ZoneParameter = "subgrids"

// HiddenValues replaces table values of variables fed by a region model.
const HiddenValues = "hidden"

// Prefixes is the ordered set of name prefixes (PrefixSet), e.g. "Gas_", "X_Oil_".
type Prefixes []string

// Output is the part of the plan derived from the Output section.
type Output struct {
	// Maps are zone map names, prefix + upper-cased calculation type.
	Maps []string `yaml:"maps"`
	// Properties are grid property names, prefix + lower-cased calculation type,
	// followed by the additional data-linked properties.
	Properties []string `yaml:"properties"`
	// MapLocation is the lower-cased MapOutput storage tag.
	MapLocation string `yaml:"map_location"`
	// MapSubfolders are the selected zone names.
	MapSubfolders []string `yaml:"map_subfolders"`
}

// Selector is a Region or Facies filter.
type Selector struct {
	Filters   []string `yaml:"filters"`
	Parameter string   `yaml:"parameter"`
}

// ZoneSelector carries only filters; the zone parameter lives on Selectors.
type ZoneSelector struct {
	Filters []string `yaml:"filters"`
}

// Selectors are the filters that can be applied to the export.
//
// The encoded shape is the legacy one consumers expect: Zone has no
// parameter of its own and a top level "parameter" key sits next to it.
type Selectors struct {
	Region    *Selector
	Facies    *Selector
	Zone      ZoneSelector
	Parameter string
}

// Keys returns the selector keys present, in encoding order.
func (s Selectors) Keys() []string {
	var keys []string
	if s.Region != nil {
		keys = append(keys, SelectorRegion)
	}

	if s.Facies != nil {
		keys = append(keys, SelectorFacies)
	}

	return append(keys, SelectorZone)
}

// ValuesKind tells which form a variable's values take.
type ValuesKind int

const (
	// ValuesTable - the literal TableValues of the job.
	ValuesTable ValuesKind = iota
	// ValuesHidden - values come from a region model and are not exported.
	ValuesHidden
	// ValuesProperty - values come from a grid property.
	ValuesProperty
)

// String returns a human-readable kind name.
func (k ValuesKind) String() string {
	switch k {
	case ValuesTable:
		return "table"
	case ValuesHidden:
		return "hidden"
	case ValuesProperty:
		return "property"
	default:
		return common.UnknownStr
	}
}

// Values is the resolved value source of a variable.
type Values struct {
	Kind ValuesKind
	// Table holds the literal TableValues when Kind is ValuesTable.
	Table any
	// Property names the grid property when Kind is ValuesProperty.
	Property string
}

// VariableDefinition describes one job variable in the export metadata.
type VariableDefinition struct {
	Applies string `yaml:"applies"`
	Values  Values `yaml:"values"`
}

// Definitions is an insertion-ordered map of variable name to definition.
// Setting an existing name replaces its definition in place.
type Definitions struct {
	names  []string
	byName map[string]VariableDefinition
}

// Set stores def under name.
func (d *Definitions) Set(name string, def VariableDefinition) {
	if d.byName == nil {
		d.byName = make(map[string]VariableDefinition)
	}

	if _, exists := d.byName[name]; !exists {
		d.names = append(d.names, name)
	}

	d.byName[name] = def
}

// Get returns the definition stored under name.
func (d Definitions) Get(name string) (VariableDefinition, bool) {
	def, ok := d.byName[name]
	return def, ok
}

// Names returns variable names in first-insertion order.
func (d Definitions) Names() []string {
	return common.Clone(d.names)
}

// ExportPlan is the final output of the resolution pipeline.
type ExportPlan struct {
	Output `yaml:",inline"`

	// Table is the volumetrics table, nil when the job has none.
	Table *volumes.Table `yaml:"table"`

	Selectors Selectors `yaml:"selectors"`
	// Variables describe the job inputs for metadata.
	Variables Definitions `yaml:"variables"`
	// AdditionalProperties are the data-linked property names, also
	// appended to Properties.
	AdditionalProperties []string `yaml:"additional_properties"`

	// Diagnostics contains all warnings from resolution.
	Diagnostics diagnostic.Diagnostics `yaml:"-"`
}

// AttachTable sets the volumetrics table of the plan; nil means none.
func (p *ExportPlan) AttachTable(t *volumes.Table) {
	p.Table = t
}
