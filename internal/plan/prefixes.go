package plan

import "rmsexport/internal/jobconfig"

const (
	prefixSeparator = "_"
	gasPrefix       = "Gas_"
	oilPrefix       = "Oil_"
)

// BuildPrefixes returns the name prefixes for the fluid phases the job
// uses. A non-empty user prefix is joined with "_"; gas comes before oil.
// Neither phase selected gives no prefixes.
func BuildPrefixes(out jobconfig.OutputSection) Prefixes {
	base := out.Prefix
	if base != "" {
		base += prefixSeparator
	}

	prefixes := Prefixes{}
	if out.UseGas {
		prefixes = append(prefixes, base+gasPrefix)
	}

	if out.UseOil {
		prefixes = append(prefixes, base+oilPrefix)
	}

	return prefixes
}
