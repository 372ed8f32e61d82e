// Package jobconfig provides the schema, YAML parsing and validation of
// the job arguments the host application stores for a job.
//
// The host hands job arguments over as a nested mapping. Every top level
// section is a sequence and only its first element is used:
//
//	Input:
//	  - SelectedZoneNames: [Upper, Lower]
//	    SelectedRegionNames: [West, East]
//	    RegionProperty: [Grid models, Geogrid, Regions]
//	Output:
//	  - Prefix: ""
//	    UseGas: true
//	    UseOil: true
//	    MapOutput: CLIPBOARD
//	    Calculations:
//	      - {Type: Stoiip, CreateProperty: true, CreateZoneMap: true}
//	Variables:
//	  - Porosity:
//	      - Name: PORO
//	        InputSource: TABLE
//	        InputType: CONSTANT
//	        TableValues: 0.25
//	        DataInput: []
//	Report:
//	  - ReportTableName: geogrid_volumes
//
// Variable groups keep the order they have in the document. JSON input is
// accepted as well since it is valid YAML.
package jobconfig
