// Package volumes holds the volumetrics table of a job: loading it from
// the project, renaming host columns to standard names, and writing it
// as CSV or XLSX.
package volumes
