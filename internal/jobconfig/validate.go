package jobconfig

import (
	"fmt"

	"rmsexport/internal/diagnostic"
)

// Validate checks the structure a volumetrics job needs before resolution.
// Only structural problems are reported as errors; missing optional
// selectors or tables are left for the resolver to warn about.
func Validate(jc *JobConfig) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if jc == nil {
		res.AddError("job_is_nil", "job configuration is nil", "", "")
		return res
	}

	in, err := jc.FirstInput()
	if err != nil {
		res.AddError(diagnostic.CodeMissingSection, err.Error(), SectionInput, "")
	} else if in.SelectedZoneNames == nil {
		res.AddError(diagnostic.CodeMissingField, ErrMissingZones.Error(), SectionInput, "SelectedZoneNames")
	}

	if _, err := jc.FirstOutput(); err != nil {
		res.AddError(diagnostic.CodeMissingSection, err.Error(), SectionOutput, "")
	}

	groups, err := jc.FirstVariables()
	if err != nil {
		res.AddError(diagnostic.CodeMissingSection, err.Error(), SectionVariables, "")
	}

	for _, group := range groups {
		for i := range group.Variables {
			v := &group.Variables[i]
			if v.Name == "" {
				res.AddError(diagnostic.CodeMissingField,
					fmt.Sprintf("variable %d in group %q has no Name", i, group.Name), SectionVariables, group.Name)
			}

			if _, _, err := v.DataProperty(); err != nil {
				res.AddError(diagnostic.CodeInvalidValue, err.Error(), SectionVariables, v.Name)
			}
		}
	}

	if rep := jc.FirstReport(); rep == nil {
		res.AddInfo(diagnostic.CodeMissingSection, "job has no report section", SectionReport, "")
	} else if rep.ReportTableName == "" {
		res.AddWarning(diagnostic.CodeTableMissing, "report section names no table", SectionReport, "ReportTableName")
	}

	return res
}
