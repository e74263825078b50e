package schema

// Credential type values.
const (
	CredentialUsernamePassword = "username_password"
	CredentialSSHKey           = "ssh_key"
	CredentialAPIKey           = "api_key"
	CredentialBearerToken      = "bearer_token"
	CredentialCertificate      = "certificate"
)

// CredentialTypes is the closed value set for the credential_type field.
var CredentialTypes = []string{
	CredentialUsernamePassword,
	CredentialSSHKey,
	CredentialAPIKey,
	CredentialBearerToken,
	CredentialCertificate,
}

// CredentialKind describes one credential shape: the secret fields that
// imply the kind during inference and the fields the kind requires to be
// complete.
type CredentialKind struct {
	// Name is the credential_type value for this kind.
	Name string

	// DetectFields trigger inference: populating any of them selects this
	// kind when no explicit credential_type is given.
	DetectFields []string

	// RequiredFields must all be populated for the kind to be complete.
	RequiredFields []string
}

// credentialKinds is ordered by inference priority. The first kind whose
// DetectFields intersect the populated secret fields wins; the order is
// the documented tie-break when several secrets are populated, not an
// error condition.
var credentialKinds = []CredentialKind{
	{
		Name:           CredentialSSHKey,
		DetectFields:   []string{FieldPrivateKey},
		RequiredFields: []string{FieldPrivateKey},
	},
	{
		Name:           CredentialAPIKey,
		DetectFields:   []string{FieldAPIKey},
		RequiredFields: []string{FieldAPIKey},
	},
	{
		Name:           CredentialBearerToken,
		DetectFields:   []string{FieldBearerToken},
		RequiredFields: []string{FieldBearerToken},
	},
	{
		Name:           CredentialCertificate,
		DetectFields:   []string{FieldCertificate},
		RequiredFields: []string{FieldCertificate},
	},
	{
		Name:           CredentialUsernamePassword,
		DetectFields:   []string{FieldUsername, FieldPassword},
		RequiredFields: []string{FieldUsername, FieldPassword},
	},
}

// CredentialKinds returns the credential shapes in inference priority
// order. Callers must not modify the returned slice.
func CredentialKinds() []CredentialKind { return credentialKinds }

// CredentialKindByName returns the credential shape for an explicit
// credential_type value.
func CredentialKindByName(name string) (CredentialKind, bool) {
	for _, k := range credentialKinds {
		if k.Name == name {
			return k, true
		}
	}
	return CredentialKind{}, false
}

// SecondaryService describes one secondary service value and the field it
// requires when selected.
type SecondaryService struct {
	// Name is the secondary_service_type value.
	Name string

	// DependsOn is the field key that must be populated when this value is
	// selected. Empty when the value has no dependent field.
	DependsOn string
}

// secondaryServices lists the allowed secondary service values. Every
// member of the file-transfer family depends on the ftp_type field.
var secondaryServices = []SecondaryService{
	{Name: SecondaryNone},
	{Name: "ftp", DependsOn: FieldFTPType},
	{Name: "sftp", DependsOn: FieldFTPType},
	{Name: "tftp", DependsOn: FieldFTPType},
}

// SecondaryServiceTypes is the closed value set for the
// secondary_service_type field.
var SecondaryServiceTypes = func() []string {
	out := make([]string, len(secondaryServices))
	for i, s := range secondaryServices {
		out[i] = s.Name
	}
	return out
}()

// SecondaryServices returns the secondary service values with their
// dependent fields. Callers must not modify the returned slice.
func SecondaryServices() []SecondaryService { return secondaryServices }
