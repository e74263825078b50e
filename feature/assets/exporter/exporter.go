package exporter

import (
	"fmt"
	"io"
	"time"

	"asset-exchange/feature/assets/models"
	"asset-exchange/feature/assets/normalize"
	"asset-exchange/feature/assets/schema"
	"asset-exchange/feature/assets/tabular"
)

// TemplateFilename is the fixed name of the import template artifact.
const TemplateFilename = "assets_import_template.csv"

// Filename returns the date-stamped name for an export artifact.
func Filename(t time.Time) string {
	return fmt.Sprintf("assets_export_%s.csv", t.Format("2006-01-02"))
}

// Export writes one header line plus one line per record, in schema column
// order. Unset status, environment and criticality cells take their
// documented defaults so a re-import sees explicit values.
func Export(w io.Writer, s *schema.Schema, records []*models.Asset) error {
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = normalize.Denormalize(rec, s)
	}
	return tabular.Encode(w, s.Labels(), rows)
}
