package exporter

import (
	"fmt"
	"io"
	"strings"

	"asset-exchange/feature/assets/schema"
	"asset-exchange/feature/assets/tabular"
)

// WriteTemplate writes the import template: comment lines documenting the
// format and the enumerated values, the header row of importable columns,
// and a commented example row. Importing the template as-is yields an
// empty batch.
func WriteTemplate(w io.Writer, s *schema.Schema) error {
	fields := s.ImportFields()
	labels := make([]string, len(fields))
	for i, f := range fields {
		labels[i] = f.Label
	}

	var b strings.Builder
	b.WriteString("# Bulk asset import template.\n")
	b.WriteString("# Lines starting with '#' and blank lines are ignored.\n")
	b.WriteString("# Required columns: Service Type, Port, and one of IP Address or Hostname.\n")
	b.WriteString("#\n")
	for _, f := range fields {
		if len(f.Enum) > 0 {
			fmt.Fprintf(&b, "# %s: one of %s\n", f.Label, strings.Join(f.Enum, ", "))
		}
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	if err := tabular.Encode(w, labels, nil); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "# example: %s\n", strings.Join(exampleCells(fields), ","))
	return err
}

// exampleCells fills a handful of columns with plausible values; the rest
// stay empty like a freshly filled-in row would.
func exampleCells(fields []schema.Field) []string {
	cells := make([]string, len(fields))
	for i, f := range fields {
		switch f.Key {
		case schema.FieldName:
			cells[i] = "web-01"
		case schema.FieldHostname:
			cells[i] = "web-01.example.com"
		case schema.FieldIPAddress:
			cells[i] = "10.0.30.11"
		case schema.FieldServiceType:
			cells[i] = "web"
		case schema.FieldPort:
			cells[i] = "443"
		case schema.FieldIsSecure:
			cells[i] = "true"
		case schema.FieldUsername:
			cells[i] = "admin"
		case schema.FieldPassword:
			cells[i] = "changeme"
		case schema.FieldTags:
			cells[i] = "frontend"
		}
	}
	return cells
}
