// Package importer drives bulk imports end to end.
//
// One Run decodes a file, normalizes and validates every row, reconciles
// the survivors against the records already in the store, and submits the
// accepted ones. Each row is isolated: a rejected or conflicting row is
// captured in the report and the batch moves on.
//
// # Row States
//
// Every row walks pending -> accepted | rejected, then accepted rows end in
// stored, store_failed, skipped_duplicate or cancelled. The ImportReport is
// a collation of terminal states in file order.
//
// # Duplicate Policy
//
// Candidates matching an existing record by name, hostname or IP address
// are either skipped or imported anyway, per Options.OnDuplicate. The
// existing-record snapshot is read once per batch by default; Options can
// demand a re-read before every row at the cost of sequential submission.
package importer
