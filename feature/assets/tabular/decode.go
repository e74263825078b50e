package tabular

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// logicalRow is one assembled row: a quoted field may span several
// physical lines, so the row remembers the line it started on.
type logicalRow struct {
	line   int
	fields []string
}

// Decode parses the delimited text format into a Document.
//
// Blank lines and comment lines are skipped without producing rows; the
// first surviving row is the header. Decoding fails as a whole on an
// unterminated quoted field or when a required column group is missing.
func Decode(r io.Reader, opts Options) (*Document, error) {
	data, err := io.ReadAll(newUnicodeReader(r))
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	rows, err := scan(splitLines(string(data)))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("input contains no header row")
	}

	header := make([]string, len(rows[0].fields))
	for i, h := range rows[0].fields {
		header[i] = strings.TrimSpace(h)
	}
	if err := checkHeader(header, opts.RequiredColumns); err != nil {
		return nil, err
	}

	doc := &Document{Header: header}
	for _, lr := range rows[1:] {
		switch {
		case len(lr.fields) < len(header):
			doc.Warnings = append(doc.Warnings, Warning{
				Line:    lr.line,
				Message: fmt.Sprintf("row has %d of %d columns, missing cells treated as empty", len(lr.fields), len(header)),
			})
		case len(lr.fields) > len(header):
			doc.Warnings = append(doc.Warnings, Warning{
				Line:    lr.line,
				Message: fmt.Sprintf("row has %d columns but the header declares %d, extras ignored", len(lr.fields), len(header)),
			})
		}

		cells := make(map[string]string, len(header))
		for i, label := range header {
			v := ""
			if i < len(lr.fields) {
				v = lr.fields[i]
			}
			key := Fold(label)
			// First occurrence wins when headers repeat a label.
			if _, dup := cells[key]; !dup {
				cells[key] = v
			}
		}
		doc.Rows = append(doc.Rows, Row{Line: lr.line, Cells: cells})
	}
	return doc, nil
}

// splitLines breaks the input into physical lines, dropping the line
// terminators. CRLF endings are treated like LF.
func splitLines(data string) []string {
	lines := strings.Split(data, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// scan assembles logical rows from physical lines with a two-state
// scanner: outside a quoted field a comma splits and a quote opens; inside
// one, a doubled quote is a literal quote and a line break is part of the
// value. Skipping of blank and comment lines only happens between rows,
// never inside an open quote.
func scan(lines []string) ([]logicalRow, error) {
	var (
		rows    []logicalRow
		fields  []string
		cur     strings.Builder
		inQuote bool
		open    bool
		start   int
	)

	flushField := func() {
		fields = append(fields, cur.String())
		cur.Reset()
	}

	for i, line := range lines {
		n := i + 1

		if !open {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || trimmed[0] == commentMarker {
				continue
			}
			open = true
			start = n
		} else if inQuote {
			// The quoted field continues across the line break.
			cur.WriteByte('\n')
		}

		for j := 0; j < len(line); j++ {
			c := line[j]
			switch {
			case inQuote:
				if c != quote {
					cur.WriteByte(c)
					continue
				}
				if j+1 < len(line) && line[j+1] == quote {
					cur.WriteByte(quote)
					j++
				} else {
					inQuote = false
				}
			case c == delimiter:
				flushField()
			case c == quote && cur.Len() == 0:
				inQuote = true
			default:
				// Stray quotes inside an unquoted field are kept literally.
				cur.WriteByte(c)
			}
		}

		if !inQuote {
			flushField()
			rows = append(rows, logicalRow{line: start, fields: fields})
			fields = nil
			open = false
		}
	}

	if inQuote {
		return nil, fmt.Errorf("line %d: unterminated quoted field", start)
	}
	return rows, nil
}

// checkHeader verifies the mandatory column groups against the header
// labels. Matching is case-insensitive; unknown extra labels are fine.
func checkHeader(header []string, required [][]string) error {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[Fold(h)] = true
	}

	var missing []string
	for _, group := range required {
		ok := false
		for _, label := range group {
			if present[Fold(label)] {
				ok = true
				break
			}
		}
		if !ok {
			missing = append(missing, strings.Join(group, " or "))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required column(s): %s", strings.Join(missing, ", "))
	}
	return nil
}
