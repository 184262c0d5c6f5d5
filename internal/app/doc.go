// Package app wires configuration, logging, workload loading and reporting
// into the two things cpusched does: print schedules for a workload file, or
// serve the HTTP API.
package app
