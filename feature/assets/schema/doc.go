// Package schema defines the asset field schema: the ordered list of
// importable and exportable columns with their labels, value kinds, closed
// value sets and conditional-requirement metadata.
//
// The schema is the single source of truth for what fields exist. The
// codec, normalizer, validator and exporter all iterate it rather than
// hardcoding column lists, so adding a field is a one-line change here.
//
// # Credential Kinds
//
// CredentialKinds returns the credential shapes in inference priority
// order (ssh key, api key, bearer token, certificate, username+password).
// The normalizer walks this list to infer a missing credential_type from
// whichever secret fields are populated; the first match wins, making the
// tie-break explicit and testable instead of buried in branching.
//
// # Secondary Services
//
// SecondaryServices maps each secondary_service_type value to the field it
// requires when selected. All current file-transfer members depend on
// ftp_type; new members slot in without touching the rule engine.
package schema
