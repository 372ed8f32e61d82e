package plan

import (
	"fmt"

	"rmsexport/internal/common"
	"rmsexport/internal/diagnostic"
	"rmsexport/internal/jobconfig"
)

// optionalSelectors are looked up in this order; Zone is always set last.
var optionalSelectors = []string{SelectorRegion, SelectorFacies}

// ResolveSelectors finds the filters that can be applied to the export.
//
// Region and Facies are kept only when both the selected names and a
// non-empty property path exist; otherwise the key is left out and a
// warning is added to diags. Missing SelectedZoneNames is an error.
func ResolveSelectors(in jobconfig.InputSection, diags *diagnostic.Diagnostics) (Selectors, error) {
	var sel Selectors

	for _, key := range optionalSelectors {
		found, ok := lookupSelector(&in, key)
		if !ok {
			if diags != nil {
				diags.AddWarning(diagnostic.CodeSelectorMissing,
					fmt.Sprintf("No selectors for %s", key), jobconfig.SectionInput, key)
			}

			continue
		}

		switch key {
		case SelectorRegion:
			sel.Region = found
		case SelectorFacies:
			sel.Facies = found
		}
	}

	zones, ok := in.SelectorNames(SelectorZone)
	if !ok {
		return Selectors{}, jobconfig.ErrMissingZones
	}

	sel.Zone = ZoneSelector{Filters: common.Clone(zones)}
	sel.Parameter = ZoneParameter

	return sel, nil
}

func lookupSelector(in *jobconfig.InputSection, key string) (*Selector, bool) {
	names, ok := in.SelectorNames(key)
	if !ok {
		return nil, false
	}

	parameter, ok := common.Last(in.SelectorProperty(key))
	if !ok {
		return nil, false
	}

	return &Selector{Filters: common.Clone(names), Parameter: parameter}, true
}
