// Package exporter writes asset records back out as delimited text.
//
// Export emits every schema column, including export-only ones such as the
// record ID, so a dump doubles as a backup. WriteTemplate emits the fixed
// import template with the importable columns only. Both apply the same
// quoting rules the decoder accepts, so exports re-import cleanly.
//
// # Archiving
//
// Archiver uploads artifacts to object storage under a configured bucket
// and key prefix, and lists what has been archived so far.
package exporter
