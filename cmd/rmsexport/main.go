// Package main provides the CLI entrypoint for rmsexport.
//
// rmsexport reads jobs from a project snapshot and exports the volumetrics
// maps, grid properties and table a job produced, each with a metadata
// sidecar. The plan command resolves a job file offline and prints what
// would be exported.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
