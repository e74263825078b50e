package normalize

import (
	"strconv"
	"strings"

	"asset-exchange/feature/assets/models"
	"asset-exchange/feature/assets/schema"
	"asset-exchange/feature/assets/tabular"
)

// Normalize coerces one raw row into a typed candidate record following
// the schema. It never fails: a cell that cannot be coerced leaves the
// typed field unset and keeps the raw text, so the rule engine can report
// it instead of a silent zero taking its place.
func Normalize(row tabular.Row, s *schema.Schema) *models.Asset {
	a := &models.Asset{
		Line: row.Line,
		Raw:  make(map[string]string),
	}

	for _, f := range s.Fields() {
		if f.ExportOnly {
			continue
		}
		cell, ok := row.Cells[tabular.Fold(f.Label)]
		if !ok {
			// Column absent from the file; the field stays at its default.
			continue
		}
		raw := strings.TrimSpace(cell)
		if raw != "" {
			a.Raw[f.Key] = raw
		}

		switch f.Kind {
		case schema.KindInteger:
			setInt(a, f.Key, parseInt(raw))
		case schema.KindBoolean:
			setBool(a, f.Key, strings.EqualFold(raw, "true"))
		case schema.KindStringList:
			setList(a, f.Key, SplitList(raw))
		default:
			setString(a, f.Key, raw)
		}
	}

	inferCredentialKind(a)
	return a
}

// Denormalize renders a record back into cells, one per schema field in
// order. Unset values take the field's export default when it declares
// one, keeping exported files symmetric with what the importer accepts.
func Denormalize(a *models.Asset, s *schema.Schema) []string {
	fields := s.Fields()
	out := make([]string, len(fields))
	for i, f := range fields {
		v := a.Value(f.Key)
		if v == "" && f.ExportDefault != "" {
			v = f.ExportDefault
		}
		out[i] = v
	}
	return out
}

// SplitList breaks a list cell on commas, trimming entries and dropping
// empty ones.
func SplitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// inferCredentialKind fills in a missing credential_type from whichever
// secret fields are populated, walking the kinds in priority order. The
// first match wins; that tie-break is deliberate and documented on the
// kind table.
func inferCredentialKind(a *models.Asset) {
	if a.CredentialType != "" {
		return
	}
	for _, kind := range schema.CredentialKinds() {
		for _, key := range kind.DetectFields {
			if a.Value(key) != "" {
				a.CredentialType = kind.Name
				return
			}
		}
	}
}

func parseInt(raw string) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

func setString(a *models.Asset, key, v string) {
	switch key {
	case schema.FieldName:
		a.Name = v
	case schema.FieldHostname:
		a.Hostname = v
	case schema.FieldIPAddress:
		a.IPAddress = v
	case schema.FieldDeviceType:
		a.DeviceType = v
	case schema.FieldOSType:
		a.OSType = v
	case schema.FieldStatus:
		a.Status = v
	case schema.FieldEnvironment:
		a.Environment = v
	case schema.FieldCriticality:
		a.Criticality = v
	case schema.FieldServiceType:
		a.ServiceType = v
	case schema.FieldDatabaseType:
		a.DatabaseType = v
	case schema.FieldDatabaseName:
		a.DatabaseName = v
	case schema.FieldSecondaryServiceType:
		a.SecondaryServiceType = v
	case schema.FieldFTPType:
		a.FTPType = v
	case schema.FieldCredentialType:
		a.CredentialType = v
	case schema.FieldUsername:
		a.Username = v
	case schema.FieldPassword:
		a.Password = v
	case schema.FieldPrivateKey:
		a.PrivateKey = v
	case schema.FieldAPIKey:
		a.APIKey = v
	case schema.FieldBearerToken:
		a.BearerToken = v
	case schema.FieldCertificate:
		a.Certificate = v
	case schema.FieldNotes:
		a.Notes = v
	}
}

func setInt(a *models.Asset, key string, v *int) {
	if key == schema.FieldPort {
		a.Port = v
	}
}

func setBool(a *models.Asset, key string, v bool) {
	if key == schema.FieldIsSecure {
		a.IsSecure = v
	}
}

func setList(a *models.Asset, key string, v []string) {
	if key == schema.FieldTags {
		a.Tags = v
	}
}
