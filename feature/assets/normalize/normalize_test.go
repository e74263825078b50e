package normalize

import (
	"testing"

	"asset-exchange/feature/assets/models"
	"asset-exchange/feature/assets/schema"
	"asset-exchange/feature/assets/tabular"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowWith(line int, cells map[string]string) tabular.Row {
	folded := make(map[string]string, len(cells))
	for label, v := range cells {
		folded[tabular.Fold(label)] = v
	}
	return tabular.Row{Line: line, Cells: folded}
}

func TestNormalizeKinds(t *testing.T) {
	a := Normalize(rowWith(4, map[string]string{
		"Name":         "  Srv1  ",
		"Hostname":     "host1.local",
		"Service Type": "ssh",
		"Port":         "22",
		"Secure":       "TRUE",
		"Tags":         " web, prod ,,  ",
	}), schema.Default())

	assert.Equal(t, 4, a.Line)
	assert.Equal(t, "Srv1", a.Name)
	assert.Equal(t, "host1.local", a.Hostname)
	assert.Equal(t, "ssh", a.ServiceType)
	require.NotNil(t, a.Port)
	assert.Equal(t, 22, *a.Port)
	assert.True(t, a.IsSecure)
	assert.Equal(t, []string{"web", "prod"}, a.Tags)
}

func TestNormalizeInvalidInteger(t *testing.T) {
	a := Normalize(rowWith(3, map[string]string{
		"Name": "Srv2",
		"Port": "not-a-number",
	}), schema.Default())

	// The typed field stays unset; the raw cell survives for the
	// validator to quote.
	assert.Nil(t, a.Port)
	assert.Equal(t, "not-a-number", a.RawValue(schema.FieldPort))
}

func TestNormalizeEmptyCells(t *testing.T) {
	a := Normalize(rowWith(2, map[string]string{
		"Name":   "Srv1",
		"Port":   "",
		"Secure": "",
		"Status": "   ",
	}), schema.Default())

	assert.Nil(t, a.Port)
	assert.False(t, a.IsSecure)
	assert.Empty(t, a.Status)
	assert.Empty(t, a.RawValue(schema.FieldStatus))
}

func TestNormalizeBooleanIsStrict(t *testing.T) {
	for raw, want := range map[string]bool{
		"true": true, "True": true, "TRUE": true,
		"yes": false, "1": false, "false": false, "": false,
	} {
		a := Normalize(rowWith(2, map[string]string{"Secure": raw}), schema.Default())
		assert.Equal(t, want, a.IsSecure, "raw %q", raw)
	}
}

func TestNormalizeIgnoresExportOnlyColumns(t *testing.T) {
	a := Normalize(rowWith(2, map[string]string{
		"ID":   "smuggled-id",
		"Name": "Srv1",
	}), schema.Default())

	assert.Empty(t, a.ID)
	assert.Equal(t, "Srv1", a.Name)
}

func TestCredentialInference(t *testing.T) {
	tests := []struct {
		name  string
		cells map[string]string
		want  string
	}{
		{"private key", map[string]string{"Private Key": "-----BEGIN-----"}, schema.CredentialSSHKey},
		{"api key", map[string]string{"API Key": "abc123"}, schema.CredentialAPIKey},
		{"bearer token", map[string]string{"Bearer Token": "tok"}, schema.CredentialBearerToken},
		{"certificate", map[string]string{"Certificate": "-----CERT-----"}, schema.CredentialCertificate},
		{"username and password", map[string]string{"Username": "admin", "Password": "hunter2"}, schema.CredentialUsernamePassword},
		{"username alone still implies the pair", map[string]string{"Username": "admin"}, schema.CredentialUsernamePassword},
		{"no secrets", map[string]string{"Name": "Srv1"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Normalize(rowWith(2, tt.cells), schema.Default())
			assert.Equal(t, tt.want, a.CredentialType)
		})
	}
}

func TestCredentialInferencePriority(t *testing.T) {
	// Several secrets populated at once: the highest-priority kind wins.
	a := Normalize(rowWith(2, map[string]string{
		"Username":    "admin",
		"Password":    "hunter2",
		"API Key":     "abc",
		"Private Key": "-----BEGIN-----",
	}), schema.Default())

	assert.Equal(t, schema.CredentialSSHKey, a.CredentialType)
}

func TestCredentialExplicitTypeWins(t *testing.T) {
	a := Normalize(rowWith(2, map[string]string{
		"Credential Type": "username_password",
		"Private Key":     "-----BEGIN-----",
	}), schema.Default())

	assert.Equal(t, schema.CredentialUsernamePassword, a.CredentialType)
}

func TestDenormalizeDefaults(t *testing.T) {
	s := schema.Default()
	port := 22
	a := &models.Asset{
		ID:          "rec-1",
		Name:        "Srv1",
		Hostname:    "host1.local",
		ServiceType: "ssh",
		Port:        &port,
		Tags:        []string{"web", "prod"},
	}

	cells := Denormalize(a, s)
	require.Len(t, cells, len(s.Fields()))

	byKey := make(map[string]string, len(cells))
	for i, f := range s.Fields() {
		byKey[f.Key] = cells[i]
	}

	assert.Equal(t, "rec-1", byKey[schema.FieldID])
	assert.Equal(t, "22", byKey[schema.FieldPort])
	assert.Equal(t, "false", byKey[schema.FieldIsSecure])
	assert.Equal(t, "web,prod", byKey[schema.FieldTags])

	// Unset classification fields take the export defaults.
	assert.Equal(t, "active", byKey[schema.FieldStatus])
	assert.Equal(t, "production", byKey[schema.FieldEnvironment])
	assert.Equal(t, "medium", byKey[schema.FieldCriticality])
}

func TestNormalizeDenormalizeRoundTrip(t *testing.T) {
	s := schema.Default()
	port := 3306
	original := &models.Asset{
		Name:         "DB Server",
		Hostname:     "db1.local",
		IPAddress:    "10.0.0.5",
		DeviceType:   "server",
		OSType:       "linux",
		Status:       "active",
		Environment:  "production",
		Criticality:  "high",
		ServiceType:  "database",
		Port:         &port,
		IsSecure:     true,
		DatabaseType: "mysql",
		DatabaseName: "inventory",
		Username:     "admin",
		Password:     "s3cret, really",
		Tags:         []string{"db", "critical"},
		Notes:        "rack 4\nshelf 2, \"primary\"",
	}
	original.CredentialType = schema.CredentialUsernamePassword

	cells := Denormalize(original, s)
	row := tabular.Row{Line: 2, Cells: map[string]string{}}
	for i, f := range s.Fields() {
		row.Cells[tabular.Fold(f.Label)] = cells[i]
	}

	got := Normalize(row, s)

	assert.Equal(t, original.Name, got.Name)
	assert.Equal(t, original.Hostname, got.Hostname)
	assert.Equal(t, original.IPAddress, got.IPAddress)
	assert.Equal(t, original.ServiceType, got.ServiceType)
	require.NotNil(t, got.Port)
	assert.Equal(t, *original.Port, *got.Port)
	assert.Equal(t, original.IsSecure, got.IsSecure)
	assert.Equal(t, original.DatabaseType, got.DatabaseType)
	assert.Equal(t, original.DatabaseName, got.DatabaseName)
	assert.Equal(t, original.CredentialType, got.CredentialType)
	assert.Equal(t, original.Username, got.Username)
	assert.Equal(t, original.Password, got.Password)
	assert.Equal(t, original.Tags, got.Tags)
	assert.Equal(t, original.Notes, got.Notes)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList(" , ,"))
	assert.Equal(t, []string{"a", "b"}, SplitList("a,b"))
	assert.Equal(t, []string{"a", "b"}, SplitList(" a , b "))
}
