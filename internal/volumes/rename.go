package volumes

import "maps"

// Standard columns with special handling.
const (
	// RealColumn is the realization column, dropped from exported tables.
	RealColumn = "REAL"
	// ZoneColumn holds the zone of each row.
	ZoneColumn = "ZONE"
)

var standardNames = map[string]string{
	"Proj. real.":      RealColumn,
	"Zone":             ZoneColumn,
	"Segment":          "REGION",
	"Boundary":         "LICENSE",
	"Facies":           "FACIES",
	"BulkOil":          "BULK_OIL",
	"NetOil":           "NET_OIL",
	"PoreOil":          "PORV_OIL",
	"HCPVOil":          "HCPV_OIL",
	"STOIIP":           "STOIIP_OIL",
	"AssociatedGas":    "ASSOCIATEDGAS_OIL",
	"BulkGas":          "BULK_GAS",
	"PoreGas":          "PORV_GAS",
	"HCPVGas":          "HCPV_GAS",
	"GIIP":             "GIIP_GAS",
	"AssociatedLiquid": "ASSOCIATEDOIL_GAS",
	"Bulk":             "BULK_TOTAL",
	"Net":              "NET_TOTAL",
	"Pore":             "PORV_TOTAL",
}

// StandardName returns the standard column name for a host column.
func StandardName(column string) (string, bool) {
	name, ok := standardNames[column]
	return name, ok
}

// StandardNames returns a copy of the host to standard column mapping.
func StandardNames() map[string]string {
	return maps.Clone(standardNames)
}
