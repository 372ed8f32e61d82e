package plan

import (
	"rmsexport/internal/common"
	"rmsexport/internal/jobconfig"
)

// ResolveVariables builds the variable definitions of a job and collects
// the properties data-linked variables refer to.
//
// Groups and variables are visited in document order. A later variable
// with the same name replaces the earlier one. The returned property list
// holds each name once, in first-seen order. A DataInput with an empty
// last reference is an error.
func ResolveVariables(groups jobconfig.VariableGroups) (Definitions, []string, error) {
	var defs Definitions

	additional := []string{}

	for _, group := range groups {
		for i := range group.Variables {
			variable := &group.Variables[i]

			propname, linked, err := variable.DataProperty()
			if err != nil {
				return Definitions{}, nil, err
			}

			var values Values

			switch {
			case linked:
				values = Values{Kind: ValuesProperty, Property: propname}
				additional, _ = common.AppendUnique(additional, propname)
			case variable.InputSource == jobconfig.InputSourceRegionModel:
				values = Values{Kind: ValuesHidden}
			default:
				values = Values{Kind: ValuesTable, Table: variable.TableValues}
			}

			defs.Set(variable.Name, VariableDefinition{
				Applies: variable.InputType,
				Values:  values,
			})
		}
	}

	return defs, additional, nil
}
