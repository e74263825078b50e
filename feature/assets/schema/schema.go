package schema

import "strings"

// Kind selects the coercion applied to a field's raw cell.
type Kind string

const (
	// KindString keeps the trimmed cell as-is; empty means unset.
	KindString Kind = "string"
	// KindInteger parses the cell as a base-10 integer; empty or
	// unparseable input yields an unset value, never a silent zero.
	KindInteger Kind = "integer"
	// KindBoolean is case-insensitive equality with the literal "true".
	KindBoolean Kind = "boolean"
	// KindStringList splits the cell on commas, trimming entries and
	// dropping empty ones.
	KindStringList Kind = "string_list"
)

// Field keys. Keys are stable identifiers used throughout the engine;
// labels are the human-facing column headers.
const (
	FieldID                   = "id"
	FieldName                 = "name"
	FieldHostname             = "hostname"
	FieldIPAddress            = "ip_address"
	FieldDeviceType           = "device_type"
	FieldOSType               = "os_type"
	FieldServiceType          = "service_type"
	FieldPort                 = "port"
	FieldIsSecure             = "is_secure"
	FieldStatus               = "status"
	FieldEnvironment          = "environment"
	FieldCriticality          = "criticality"
	FieldCredentialType       = "credential_type"
	FieldUsername             = "username"
	FieldPassword             = "password"
	FieldPrivateKey           = "private_key"
	FieldAPIKey               = "api_key"
	FieldBearerToken          = "bearer_token"
	FieldCertificate          = "certificate"
	FieldDatabaseType         = "database_type"
	FieldDatabaseName         = "database_name"
	FieldSecondaryServiceType = "secondary_service_type"
	FieldFTPType              = "ftp_type"
	FieldTags                 = "tags"
	FieldNotes                = "notes"
)

// Enum values referenced by validation rules.
const (
	// ServiceTypeDatabase is the service type that requires the database
	// detail fields.
	ServiceTypeDatabase = "database"
	// SecondaryNone is the secondary service value with no dependent field.
	SecondaryNone = "none"
)

// Allowed values for the enumerated fields.
var (
	DeviceTypes   = []string{"server", "workstation", "router", "switch", "firewall", "printer", "iot", "virtual_machine", "container", "other"}
	OSTypes       = []string{"linux", "windows", "macos", "bsd", "network_os", "other"}
	ServiceTypes  = []string{"ssh", "web", "api", "database", "ftp", "rdp", "smb", "vnc", "telnet", "other"}
	Statuses      = []string{"active", "inactive", "decommissioned"}
	Environments  = []string{"production", "staging", "development", "testing"}
	Criticalities = []string{"critical", "high", "medium", "low"}
	DatabaseTypes = []string{"mysql", "postgresql", "mssql", "oracle", "mongodb", "redis", "sqlite", "other"}
	FTPTypes      = []string{"active", "passive"}
)

// Field describes one importable or exportable column.
type Field struct {
	// Key is the unique field identifier used throughout the engine.
	Key string

	// Label is the human-facing column header.
	Label string

	// Kind selects the coercion applied to raw cells.
	Kind Kind

	// ExportOnly marks fields emitted on export but ignored on import.
	ExportOnly bool

	// Enum is the closed set of allowed values. Empty for free-form fields.
	Enum []string

	// ExportDefault is substituted for an unset value on export.
	ExportDefault string
}

// Schema is the ordered collection of field descriptors. It is immutable
// after construction; the pipeline reads it concurrently without locking.
type Schema struct {
	fields  []Field
	byKey   map[string]int
	byLabel map[string]int
}

// New builds a Schema from an ordered field list. Field order defines
// column order for both import and export.
func New(fields []Field) *Schema {
	s := &Schema{
		fields:  fields,
		byKey:   make(map[string]int, len(fields)),
		byLabel: make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		s.byKey[f.Key] = i
		s.byLabel[foldLabel(f.Label)] = i
	}
	return s
}

var defaultSchema = New([]Field{
	{Key: FieldID, Label: "ID", Kind: KindString, ExportOnly: true},
	{Key: FieldName, Label: "Name", Kind: KindString},
	{Key: FieldHostname, Label: "Hostname", Kind: KindString},
	{Key: FieldIPAddress, Label: "IP Address", Kind: KindString},
	{Key: FieldDeviceType, Label: "Device Type", Kind: KindString, Enum: DeviceTypes},
	{Key: FieldOSType, Label: "OS Type", Kind: KindString, Enum: OSTypes},
	{Key: FieldServiceType, Label: "Service Type", Kind: KindString, Enum: ServiceTypes},
	{Key: FieldPort, Label: "Port", Kind: KindInteger},
	{Key: FieldIsSecure, Label: "Secure", Kind: KindBoolean},
	{Key: FieldStatus, Label: "Status", Kind: KindString, Enum: Statuses, ExportDefault: "active"},
	{Key: FieldEnvironment, Label: "Environment", Kind: KindString, Enum: Environments, ExportDefault: "production"},
	{Key: FieldCriticality, Label: "Criticality", Kind: KindString, Enum: Criticalities, ExportDefault: "medium"},
	{Key: FieldCredentialType, Label: "Credential Type", Kind: KindString, Enum: CredentialTypes},
	{Key: FieldUsername, Label: "Username", Kind: KindString},
	{Key: FieldPassword, Label: "Password", Kind: KindString},
	{Key: FieldPrivateKey, Label: "Private Key", Kind: KindString},
	{Key: FieldAPIKey, Label: "API Key", Kind: KindString},
	{Key: FieldBearerToken, Label: "Bearer Token", Kind: KindString},
	{Key: FieldCertificate, Label: "Certificate", Kind: KindString},
	{Key: FieldDatabaseType, Label: "Database Type", Kind: KindString, Enum: DatabaseTypes},
	{Key: FieldDatabaseName, Label: "Database Name", Kind: KindString},
	{Key: FieldSecondaryServiceType, Label: "Secondary Service Type", Kind: KindString, Enum: SecondaryServiceTypes},
	{Key: FieldFTPType, Label: "FTP Type", Kind: KindString, Enum: FTPTypes},
	{Key: FieldTags, Label: "Tags", Kind: KindStringList},
	{Key: FieldNotes, Label: "Notes", Kind: KindString},
})

// Default returns the asset schema.
func Default() *Schema { return defaultSchema }

// Fields returns the ordered field descriptors. Callers must not modify
// the returned slice.
func (s *Schema) Fields() []Field { return s.fields }

// ImportFields returns the ordered descriptors of fields read on import,
// skipping export-only ones.
func (s *Schema) ImportFields() []Field {
	out := make([]Field, 0, len(s.fields))
	for _, f := range s.fields {
		if !f.ExportOnly {
			out = append(out, f)
		}
	}
	return out
}

// ByKey returns the descriptor for a field key.
func (s *Schema) ByKey(key string) (Field, bool) {
	i, ok := s.byKey[key]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// ByLabel returns the descriptor matching a column header. Matching is
// case-insensitive and ignores surrounding whitespace.
func (s *Schema) ByLabel(label string) (Field, bool) {
	i, ok := s.byLabel[foldLabel(label)]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Labels returns the column headers in field order.
func (s *Schema) Labels() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Label
	}
	return out
}

// RequiredHeaders returns the header requirements for decoding: every
// group must be satisfied by at least one of its labels. The structurally
// mandatory columns are the service type and the port, plus one of the
// two identity columns.
func (s *Schema) RequiredHeaders() [][]string {
	return [][]string{
		{s.label(FieldServiceType)},
		{s.label(FieldPort)},
		{s.label(FieldIPAddress), s.label(FieldHostname)},
	}
}

func (s *Schema) label(key string) string {
	f, ok := s.ByKey(key)
	if !ok {
		return key
	}
	return f.Label
}

func foldLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
