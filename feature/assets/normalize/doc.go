// Package normalize converts raw row cells into typed candidate records
// and back, following the field schema.
//
// Coercion never rejects a row: an unparseable integer or an unknown
// enum value leaves the typed field unset, the trimmed source cell is
// kept on the record, and the validation rule engine turns it into a
// per-row violation with the original line number.
//
// Cells are trimmed of surrounding whitespace before coercion; embedded
// whitespace and line breaks (keys, notes) are preserved.
//
// # Credential Inference
//
// When a row populates secret fields but leaves the credential type cell
// empty, Normalize infers the type from the populated fields using the
// priority order published by schema.CredentialKinds.
//
// # Export Symmetry
//
// Denormalize is the inverse used by the exporter: fields render in
// schema order, booleans as "true"/"false", lists comma-joined, and unset
// status/environment/criticality take their documented export defaults.
package normalize
