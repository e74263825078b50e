package tabular

import (
	"bufio"
	"io"
	"strings"
)

// Encode writes one header line followed by one line per row. Quoting is
// symmetric with decoding: a field is wrapped in quotes when it contains
// the delimiter, a quote or a line break, and embedded quotes are doubled.
// A first field leading with the comment marker is quoted too, so the
// line cannot read back as a comment.
func Encode(w io.Writer, header []string, rows [][]string) error {
	bw := bufio.NewWriter(w)
	if err := writeLine(bw, header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeLine(bw, row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeLine(w *bufio.Writer, fields []string) error {
	for i, f := range fields {
		if i > 0 {
			if err := w.WriteByte(delimiter); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(escape(f, i == 0)); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}

func escape(f string, first bool) string {
	if strings.ContainsAny(f, ",\"\n\r") || (first && leadsWithComment(f)) {
		return `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return f
}

// leadsWithComment reports whether a field written bare at the start of a
// line would make the decoder skip the line as a comment.
func leadsWithComment(f string) bool {
	trimmed := strings.TrimSpace(f)
	return trimmed != "" && trimmed[0] == commentMarker
}
