// Package host defines what the exporter needs from the reservoir-modeling
// application: job arguments, a project handle, and lookups of tables,
// surfaces and grid properties in that project.
//
// Lookups return (value, ok, err). ok == false means the object does not
// exist, which callers treat as a non-fatal absence; err is reserved for
// real failures such as unreadable files.
//
// Two implementations are provided. Memory keeps everything in maps and
// is what tests and embedding callers use. Snapshot reads a project dump
// laid out on disk:
//
//	<root>/jobs/<owner...>/<job type>/<job name>.yml
//	<root>/tables/<table>.csv
//	<root>/surfaces/<stype>/<folder...>/<surface>.yml
//	<root>/grids/<grid>/<property>.yml
package host
