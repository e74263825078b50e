// Package tabular encodes and decodes the delimited text format used for
// asset import and export.
//
// The format is comma-delimited with RFC-4180-style quoting: a field
// containing the delimiter, a quote or a line break is wrapped in double
// quotes, and an embedded quote is doubled. On top of that the importer
// accepts human editing conveniences:
//
//   - lines starting with '#' are documentation and are ignored
//   - blank lines are ignored
//   - quoted fields may span multiple physical lines (keys, notes)
//   - a UTF-8 BOM or UTF-16 encoding (with BOM) is tolerated
//
// # Line Numbers
//
// Skipped lines never produce a row but still advance the file line
// counter. Every Row, Warning and parse error therefore references the
// original file line, so users can locate the offending line in their
// editor regardless of how many comments precede it.
//
// # Failure Model
//
// An unterminated quoted field or a missing mandatory column fails the
// whole decode; there is no partial parse. Rows shorter or longer than
// the header are tolerated and reported as Warnings.
package tabular
