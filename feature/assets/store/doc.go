// Package store declares the record-store collaborator interface the
// import/export engine depends on, plus the structured errors backends
// use to report per-record failures.
//
// The engine only ever needs two operations: Create for accepted records
// and List for the duplicate-check snapshot. Backends live in
// subpackages (gormstore for MySQL); Memory in this package serves tests
// and database-less runs.
//
// # Structured Errors
//
// Backends wrap per-record failures in FieldError or ConflictError so the
// import report can surface field-level detail instead of a generic
// message. Reason unwraps an error chain and picks the most specific
// text available.
package store
