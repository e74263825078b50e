package models

import (
	"fmt"
	"strconv"
	"strings"

	"asset-exchange/feature/assets/schema"
)

// Asset represents a single inventoried asset: either a candidate record
// produced by the import pipeline or an existing record loaded from the
// record store.
type Asset struct {
	// ID is the store-assigned identifier. Empty until the record is stored.
	ID string `json:"id,omitempty"`

	// Identity
	Name      string `json:"name"`
	Hostname  string `json:"hostname"`
	IPAddress string `json:"ip_address"`

	// Classification
	DeviceType  string `json:"device_type,omitempty"`
	OSType      string `json:"os_type,omitempty"`
	Status      string `json:"status,omitempty"`
	Environment string `json:"environment,omitempty"`
	Criticality string `json:"criticality,omitempty"`

	// Service
	ServiceType          string `json:"service_type"`
	Port                 *int   `json:"port"`
	IsSecure             bool   `json:"is_secure"`
	DatabaseType         string `json:"database_type,omitempty"`
	DatabaseName         string `json:"database_name,omitempty"`
	SecondaryServiceType string `json:"secondary_service_type,omitempty"`
	FTPType              string `json:"ftp_type,omitempty"`

	// Credentials
	CredentialType string `json:"credential_type,omitempty"`
	Username       string `json:"username,omitempty"`
	Password       string `json:"password,omitempty"`
	PrivateKey     string `json:"private_key,omitempty"`
	APIKey         string `json:"api_key,omitempty"`
	BearerToken    string `json:"bearer_token,omitempty"`
	Certificate    string `json:"certificate,omitempty"`

	Tags  []string `json:"tags,omitempty"`
	Notes string   `json:"notes,omitempty"`

	// Line is the 1-based file line the record came from. Zero for records
	// that did not originate from a file.
	Line int `json:"-"`

	// Raw keeps the trimmed source cell per field key so failure messages
	// can quote the offending input even after coercion discards it.
	Raw map[string]string `json:"-"`
}

// Value returns the canonical string form of the field named by its schema
// key. Unset fields return the empty string.
func (a *Asset) Value(key string) string {
	switch key {
	case schema.FieldID:
		return a.ID
	case schema.FieldName:
		return a.Name
	case schema.FieldHostname:
		return a.Hostname
	case schema.FieldIPAddress:
		return a.IPAddress
	case schema.FieldDeviceType:
		return a.DeviceType
	case schema.FieldOSType:
		return a.OSType
	case schema.FieldStatus:
		return a.Status
	case schema.FieldEnvironment:
		return a.Environment
	case schema.FieldCriticality:
		return a.Criticality
	case schema.FieldServiceType:
		return a.ServiceType
	case schema.FieldPort:
		if a.Port == nil {
			return ""
		}
		return strconv.Itoa(*a.Port)
	case schema.FieldIsSecure:
		if a.IsSecure {
			return "true"
		}
		return "false"
	case schema.FieldDatabaseType:
		return a.DatabaseType
	case schema.FieldDatabaseName:
		return a.DatabaseName
	case schema.FieldSecondaryServiceType:
		return a.SecondaryServiceType
	case schema.FieldFTPType:
		return a.FTPType
	case schema.FieldCredentialType:
		return a.CredentialType
	case schema.FieldUsername:
		return a.Username
	case schema.FieldPassword:
		return a.Password
	case schema.FieldPrivateKey:
		return a.PrivateKey
	case schema.FieldAPIKey:
		return a.APIKey
	case schema.FieldBearerToken:
		return a.BearerToken
	case schema.FieldCertificate:
		return a.Certificate
	case schema.FieldTags:
		return strings.Join(a.Tags, ",")
	case schema.FieldNotes:
		return a.Notes
	}
	return ""
}

// RawValue returns the trimmed source cell for a field key, or the empty
// string when the row never carried it.
func (a *Asset) RawValue(key string) string {
	if a.Raw == nil {
		return ""
	}
	return a.Raw[key]
}

// IdentityHints returns the populated duplicate-matching fields (name,
// hostname, ip_address) keyed by field key. Empty fields are omitted.
func (a *Asset) IdentityHints() map[string]string {
	hints := make(map[string]string, 3)
	if a.Name != "" {
		hints[schema.FieldName] = a.Name
	}
	if a.Hostname != "" {
		hints[schema.FieldHostname] = a.Hostname
	}
	if a.IPAddress != "" {
		hints[schema.FieldIPAddress] = a.IPAddress
	}
	return hints
}

// Identifier returns the label used for the record in reports: the name,
// falling back to hostname, then address, then the source line.
func (a *Asset) Identifier() string {
	switch {
	case a.Name != "":
		return a.Name
	case a.Hostname != "":
		return a.Hostname
	case a.IPAddress != "":
		return a.IPAddress
	}
	return fmt.Sprintf("line %d", a.Line)
}
