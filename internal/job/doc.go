// Package job describes the host jobs data can be exported from.
//
// A job value only names things; nothing is read until Load is called
// with a JobSource and ProjectProvider. Loading fetches the job
// arguments, opens the project read-only and, for volumetrics jobs,
// resolves the export plan and attaches the volumetrics table.
package job
