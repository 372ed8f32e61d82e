// Package export fetches the objects an ExportPlan names from a project
// and hands each one to a Sink together with its metadata request.
//
// Surfaces are looked up once per map name and zone folder
// ("Volumetrics_<job>/<zone>"), grid properties once per property name
// under the parent grid, and the volumetrics table once if the plan has
// one. Objects the project does not hold are skipped with a warning.
package export
