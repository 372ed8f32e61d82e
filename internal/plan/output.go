package plan

import (
	"strings"

	"rmsexport/internal/common"
	"rmsexport/internal/jobconfig"
)

// ResolveOutput finds the maps and properties a job can export.
//
// Ordering is calculation-major, prefix-minor: all prefixes of the first
// calculation come before any of the second. Calculation types are not
// validated, only case-folded.
func ResolveOutput(out jobconfig.OutputSection, selectors Selectors) Output {
	prefixes := BuildPrefixes(out)

	res := Output{
		Maps:          []string{},
		Properties:    []string{},
		MapLocation:   strings.ToLower(out.MapOutput),
		MapSubfolders: common.Clone(selectors.Zone.Filters),
	}

	for _, calc := range out.Calculations {
		for _, prfx := range prefixes {
			if calc.CreateProperty {
				res.Properties = append(res.Properties, prfx+strings.ToLower(calc.Type))
			}

			if calc.CreateZoneMap {
				res.Maps = append(res.Maps, prfx+strings.ToUpper(calc.Type))
			}
		}
	}

	return res
}
