package tabular

import "strings"

// delimiter and commentMarker define the file format. Lines whose first
// non-space byte is the comment marker are documentation and never reach
// the parser.
const (
	delimiter     = ','
	quote         = '"'
	commentMarker = '#'
)

// Row is one decoded data row.
type Row struct {
	// Line is the original 1-based file line the row started on. Comment
	// and blank lines advance it, so error messages point at the file as
	// the user sees it.
	Line int

	// Cells maps folded header labels to raw cell text. Cell content is
	// preserved byte-for-byte; trimming happens during normalization.
	Cells map[string]string
}

// Warning flags a tolerated irregularity found while decoding.
type Warning struct {
	Line    int
	Message string
}

// Document is the result of decoding one file.
type Document struct {
	// Header holds the trimmed header labels in file order.
	Header []string

	// Rows holds the data rows in file order.
	Rows []Row

	// Warnings lists tolerated irregularities, such as rows shorter or
	// longer than the header.
	Warnings []Warning
}

// Options control decoding.
type Options struct {
	// RequiredColumns lists the header requirements: each group is
	// satisfied when at least one of its labels is present. An
	// unsatisfied group fails the whole decode.
	RequiredColumns [][]string
}

// Fold canonicalizes a header label for matching: lowercased with
// surrounding whitespace removed.
func Fold(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
