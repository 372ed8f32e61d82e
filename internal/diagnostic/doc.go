// Package diagnostic provides structured warnings and errors collected
// while resolving an export plan and running an export.
//
// Warnings record configuration-absence: a selector, table, surface or
// grid property the job refers to but the project does not hold. They
// never abort a run. Errors record structural problems in a job
// configuration.
package diagnostic
