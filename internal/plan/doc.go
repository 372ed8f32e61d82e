// Package plan provides the resolution pipeline that turns a volumetrics
// job configuration into a flat ExportPlan consumed by the exporter.
//
// Resolution pipeline:
//  1. Selectors from the Input section (Region, Facies, then Zone)
//  2. Prefixes from the Output section (gas before oil)
//  3. Maps and properties: for each calculation, for each prefix
//  4. Variable definitions and the additional data-linked properties
//  5. The volumetrics table is attached afterwards, once a project is
//     available, so steps 1-4 stay free of host I/O
//
// Every step is a pure function of its input; the same configuration
// always yields the same plan.
package plan
