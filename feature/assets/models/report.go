package models

import "fmt"

// Violation describes a single validation failure for one row.
type Violation struct {
	// Line is the original file line number of the offending row.
	Line int `json:"line"`

	// Field is the schema key the failure is attributable to.
	// Empty for cross-field rules.
	Field string `json:"field,omitempty"`

	// Message is the human-readable failure description.
	Message string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("line %d: %s", v.Line, v.Message)
}

// DuplicateMatch flags one candidate as a probable duplicate of existing records.
type DuplicateMatch struct {
	// CandidateIndex is the position of the candidate within the batch
	// (0-based, source order).
	CandidateIndex int `json:"candidate_index"`

	// ExistingIDs lists the identifiers of the matched existing records,
	// in store order, without duplicates.
	ExistingIDs []string `json:"existing_ids"`
}

// FailedRow identifies one record that could not be imported.
type FailedRow struct {
	// Identifier names the record (name, hostname, address or source line).
	Identifier string `json:"identifier"`

	// Reason explains the failure, referencing the original file line.
	Reason string `json:"reason"`
}

// SkippedDuplicate identifies one record excluded by the duplicate policy.
type SkippedDuplicate struct {
	// Identifier names the excluded record.
	Identifier string `json:"identifier"`

	// ExistingIDs lists the existing records it collided with.
	ExistingIDs []string `json:"existing_ids"`
}

// ImportReport summarizes the outcome of one import batch. It is the only
// structured value surfaced to callers and is never mutated after the
// batch completes.
type ImportReport struct {
	// TotalRows is the number of data rows decoded from the input file.
	// Comment and blank lines are not counted.
	TotalRows int `json:"total_rows"`

	// Succeeded is the number of records accepted and stored.
	Succeeded int `json:"succeeded"`

	// Failed lists the records that were rejected by validation or by the
	// record store, in source order.
	Failed []FailedRow `json:"failed"`

	// SkippedDuplicates lists the records excluded by the duplicate
	// policy, in source order.
	SkippedDuplicates []SkippedDuplicate `json:"skipped_duplicates,omitempty"`
}
