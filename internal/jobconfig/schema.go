package jobconfig

import (
	"errors"
	"fmt"

	"rmsexport/internal/common"
)

// Section names as the host spells them.
const (
	SectionInput     = "Input"
	SectionOutput    = "Output"
	SectionVariables = "Variables"
	SectionReport    = "Report"
)

// InputSourceRegionModel marks a variable whose values come from a region model.
const InputSourceRegionModel = "REGION_MODEL"

var (
	// ErrMissingSection is returned when a required section is absent or empty.
	ErrMissingSection = errors.New("missing job section")
	// ErrMissingZones is returned when the input section has no SelectedZoneNames.
	ErrMissingZones = errors.New("SelectedZoneNames is required")
)

// JobConfig is the root of the job arguments read from the host.
type JobConfig struct {
	Input     []InputSection   `yaml:"Input"`
	Output    []OutputSection  `yaml:"Output"`
	Variables []VariableGroups `yaml:"Variables"`
	Report    []ReportSection  `yaml:"Report,omitempty"`
}

// InputSection holds the zone, region and facies selections of a job.
type InputSection struct {
	// SelectedZoneNames are required; maps are always organized by zone.
	SelectedZoneNames []string `yaml:"SelectedZoneNames"`

	SelectedRegionNames []string `yaml:"SelectedRegionNames"`
	SelectedFaciesNames []string `yaml:"SelectedFaciesNames"`

	// RegionProperty and FaciesProperty are object paths in the project;
	// the last element is the parameter name.
	RegionProperty []string `yaml:"RegionProperty"`
	FaciesProperty []string `yaml:"FaciesProperty"`
}

// OutputSection configures which maps and properties a job produces.
type OutputSection struct {
	Prefix       string            `yaml:"Prefix"`
	UseGas       bool              `yaml:"UseGas"`
	UseOil       bool              `yaml:"UseOil"`
	MapOutput    string            `yaml:"MapOutput"`
	Calculations []CalculationSpec `yaml:"Calculations"`
}

// CalculationSpec is one volumetric quantity the job calculates.
type CalculationSpec struct {
	Type           string `yaml:"Type"`
	CreateProperty bool   `yaml:"CreateProperty"`
	CreateZoneMap  bool   `yaml:"CreateZoneMap"`
}

// VariableGroups is the ordered set of variable groups in a job.
type VariableGroups []VariableGroup

// VariableGroup is a named list of variables.
type VariableGroup struct {
	Name      string
	Variables []Variable
}

// Variable is one input variable of a volumetrics job.
type Variable struct {
	Name        string `yaml:"Name"`
	InputSource string `yaml:"InputSource"`
	InputType   string `yaml:"InputType"`
	// TableValues is kept as the literal structure found in the job.
	TableValues any `yaml:"TableValues"`
	// DataInput links the variable to project data. Each element is an
	// object path; the last element of the last path names the property.
	DataInput [][]string `yaml:"DataInput"`
}

// ReportSection names the volumetrics table attached to the job.
type ReportSection struct {
	ReportTableName string `yaml:"ReportTableName"`
}

// SelectorNames returns the Selected<key>Names list for "Zone", "Region"
// or "Facies". The second result is false when the list is absent.
func (in *InputSection) SelectorNames(key string) ([]string, bool) {
	var names []string

	switch key {
	case "Zone":
		names = in.SelectedZoneNames
	case "Region":
		names = in.SelectedRegionNames
	case "Facies":
		names = in.SelectedFaciesNames
	}

	return names, names != nil
}

// SelectorProperty returns the <key>Property path for "Region" or "Facies".
func (in *InputSection) SelectorProperty(key string) []string {
	switch key {
	case "Region":
		return in.RegionProperty
	case "Facies":
		return in.FaciesProperty
	default:
		return nil
	}
}

// DataProperty returns the property name a data linked variable refers to.
// The second result is false when the variable is not data linked.
func (v *Variable) DataProperty() (string, bool, error) {
	if len(v.DataInput) == 0 {
		return "", false, nil
	}

	path, _ := common.Last(v.DataInput)

	name, ok := common.Last(path)
	if !ok {
		return "", true, fmt.Errorf("variable %q: DataInput has an empty reference", v.Name)
	}

	return name, true, nil
}

// FirstInput returns the first Input section.
func (j *JobConfig) FirstInput() (*InputSection, error) {
	if len(j.Input) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingSection, SectionInput)
	}

	return &j.Input[0], nil
}

// FirstOutput returns the first Output section.
func (j *JobConfig) FirstOutput() (*OutputSection, error) {
	if len(j.Output) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingSection, SectionOutput)
	}

	return &j.Output[0], nil
}

// FirstVariables returns the first Variables section.
func (j *JobConfig) FirstVariables() (VariableGroups, error) {
	if len(j.Variables) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingSection, SectionVariables)
	}

	return j.Variables[0], nil
}

// FirstReport returns the first Report section, or nil when the job has none.
func (j *JobConfig) FirstReport() *ReportSection {
	if len(j.Report) == 0 {
		return nil
	}

	return &j.Report[0]
}
