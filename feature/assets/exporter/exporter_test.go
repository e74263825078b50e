package exporter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"asset-exchange/feature/assets/models"
	"asset-exchange/feature/assets/schema"
	"asset-exchange/feature/assets/tabular"

	"github.com/stretchr/testify/assert"
)

func TestFilename(t *testing.T) {
	ts := time.Date(2025, time.March, 9, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "assets_export_2025-03-09.csv", Filename(ts))
	assert.Equal(t, "assets_import_template.csv", TemplateFilename)
}

func TestExportRoundTrip(t *testing.T) {
	port := 443
	records := []*models.Asset{
		{
			ID:          "rec-1",
			Name:        "Srv,1",
			Hostname:    "h1.local",
			ServiceType: "web",
			Port:        &port,
			IsSecure:    true,
			Tags:        []string{"web", "prod"},
			Notes:       "first line\nsecond line",
		},
	}

	var buf bytes.Buffer
	s := schema.Default()
	assert.NoError(t, Export(&buf, s, records))

	doc, err := tabular.Decode(strings.NewReader(buf.String()), tabular.Options{})
	assert.NoError(t, err)
	assert.Equal(t, s.Labels(), doc.Header)
	if assert.Len(t, doc.Rows, 1) {
		cells := doc.Rows[0].Cells
		assert.Equal(t, "rec-1", cells["id"])
		assert.Equal(t, "Srv,1", cells["name"])
		assert.Equal(t, "443", cells["port"])
		assert.Equal(t, "true", cells["secure"])
		assert.Equal(t, "web,prod", cells["tags"])
		assert.Equal(t, "first line\nsecond line", cells["notes"])
	}
}

func TestExportAppliesDefaults(t *testing.T) {
	records := []*models.Asset{{Name: "Bare", Hostname: "bare.local", ServiceType: "ssh"}}

	var buf bytes.Buffer
	s := schema.Default()
	assert.NoError(t, Export(&buf, s, records))

	doc, err := tabular.Decode(strings.NewReader(buf.String()), tabular.Options{})
	assert.NoError(t, err)
	if assert.Len(t, doc.Rows, 1) {
		cells := doc.Rows[0].Cells
		assert.Equal(t, "active", cells["status"])
		assert.Equal(t, "production", cells["environment"])
		assert.Equal(t, "medium", cells["criticality"])
		assert.Equal(t, "", cells["port"])
	}
}

func TestWriteTemplate(t *testing.T) {
	var buf bytes.Buffer
	s := schema.Default()
	assert.NoError(t, WriteTemplate(&buf, s))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "#"))
	assert.Contains(t, out, "# Service Type: one of ssh, web")

	doc, err := tabular.Decode(strings.NewReader(out), tabular.Options{RequiredColumns: s.RequiredHeaders()})
	assert.NoError(t, err)
	assert.Empty(t, doc.Rows)
	assert.Len(t, doc.Header, len(s.ImportFields()))
	assert.NotContains(t, doc.Header, "ID")
}
