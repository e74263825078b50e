package tabular

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// newUnicodeReader wraps r so a UTF-8 byte order mark is stripped and
// UTF-16 input carrying a BOM is transparently decoded to UTF-8.
// Spreadsheet tools routinely emit both when saving "CSV".
func newUnicodeReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}
