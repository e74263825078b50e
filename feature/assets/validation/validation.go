package validation

import (
	"fmt"
	"strings"

	"asset-exchange/feature/assets/models"
	"asset-exchange/feature/assets/schema"
)

// Rule is one declarative validation check. Rules run in table order; a
// rule contributes a violation when its gate passes and its check fails.
type Rule struct {
	// Field is the schema key the rule is attributed to. Empty for rules
	// spanning several fields.
	Field string

	// When gates the rule. A nil gate always applies.
	When func(a *models.Asset) bool

	// Check reports whether the record satisfies the rule.
	Check func(a *models.Asset) bool

	// Message renders the violation text for a failing record.
	Message func(a *models.Asset) string
}

// Engine evaluates the validation rule table against candidate records.
// Build it once per schema and reuse it across batches; it is stateless
// after construction.
type Engine struct {
	rules []Rule
}

// New builds the rule table for a schema. Rule order is fixed (identity,
// structural, enum membership, credential completeness, service-specific)
// so violation messages are stable for a given input.
func New(s *schema.Schema) *Engine {
	e := &Engine{}
	e.addIdentityRules()
	e.addStructuralRules()
	e.addEnumRules(s)
	e.addCredentialRules()
	e.addServiceRules()
	return e
}

// Validate evaluates every rule against the record and returns the
// accumulated violations. It never mutates the record and never stops at
// the first failure, so one row can surface all of its problems at once.
func (e *Engine) Validate(a *models.Asset, line int) []models.Violation {
	var out []models.Violation
	for _, r := range e.rules {
		if r.When != nil && !r.When(a) {
			continue
		}
		if r.Check(a) {
			continue
		}
		out = append(out, models.Violation{Line: line, Field: r.Field, Message: r.Message(a)})
	}
	return out
}

// Rules returns the rule table in evaluation order.
func (e *Engine) Rules() []Rule { return e.rules }

func (e *Engine) add(r Rule) { e.rules = append(e.rules, r) }

func (e *Engine) addIdentityRules() {
	e.add(Rule{
		Check: func(a *models.Asset) bool {
			return a.Hostname != "" || a.IPAddress != ""
		},
		Message: message("at least one of hostname or ip_address must be provided"),
	})
}

func (e *Engine) addStructuralRules() {
	e.add(Rule{
		Field:   schema.FieldServiceType,
		Check:   func(a *models.Asset) bool { return a.ServiceType != "" },
		Message: message("service_type is required"),
	})
	e.add(Rule{
		Field:   schema.FieldPort,
		Check:   func(a *models.Asset) bool { return a.RawValue(schema.FieldPort) != "" },
		Message: message("port is required"),
	})
	e.add(Rule{
		Field:   schema.FieldPort,
		When:    func(a *models.Asset) bool { return a.RawValue(schema.FieldPort) != "" },
		Check:   func(a *models.Asset) bool { return a.Port != nil },
		Message: message("port must be numeric"),
	})
	e.add(Rule{
		Field:   schema.FieldPort,
		When:    func(a *models.Asset) bool { return a.Port != nil },
		Check:   func(a *models.Asset) bool { return *a.Port >= 1 && *a.Port <= 65535 },
		Message: message("port must be between 1 and 65535"),
	})
}

func (e *Engine) addEnumRules(s *schema.Schema) {
	for _, f := range s.Fields() {
		if len(f.Enum) == 0 || f.ExportOnly {
			continue
		}
		f := f
		e.add(Rule{
			Field: f.Key,
			When:  func(a *models.Asset) bool { return a.Value(f.Key) != "" },
			Check: func(a *models.Asset) bool { return contains(f.Enum, a.Value(f.Key)) },
			Message: func(a *models.Asset) string {
				return fmt.Sprintf("%s %q is not one of the allowed values (%s)",
					f.Key, a.Value(f.Key), strings.Join(f.Enum, ", "))
			},
		})
	}
}

func (e *Engine) addCredentialRules() {
	for _, kind := range schema.CredentialKinds() {
		kind := kind
		for _, key := range kind.RequiredFields {
			key := key
			e.add(Rule{
				Field: key,
				When:  func(a *models.Asset) bool { return a.CredentialType == kind.Name },
				Check: func(a *models.Asset) bool { return a.Value(key) != "" },
				Message: func(a *models.Asset) string {
					return fmt.Sprintf("%s is required for credential_type %q", key, kind.Name)
				},
			})
		}
	}
}

func (e *Engine) addServiceRules() {
	isDatabase := func(a *models.Asset) bool {
		return a.ServiceType == schema.ServiceTypeDatabase
	}
	e.add(Rule{
		Field:   schema.FieldDatabaseType,
		When:    isDatabase,
		Check:   func(a *models.Asset) bool { return a.DatabaseType != "" },
		Message: message(`database_type is required when service_type is "database"`),
	})
	e.add(Rule{
		Field:   schema.FieldDatabaseName,
		When:    isDatabase,
		Check:   func(a *models.Asset) bool { return a.DatabaseName != "" },
		Message: message(`database_name is required when service_type is "database"`),
	})

	for _, sec := range schema.SecondaryServices() {
		if sec.DependsOn == "" {
			continue
		}
		sec := sec
		e.add(Rule{
			Field: sec.DependsOn,
			When:  func(a *models.Asset) bool { return a.SecondaryServiceType == sec.Name },
			Check: func(a *models.Asset) bool { return a.Value(sec.DependsOn) != "" },
			Message: func(a *models.Asset) string {
				return fmt.Sprintf("%s is required when secondary_service_type is %q", sec.DependsOn, sec.Name)
			},
		})
	}
}

func message(text string) func(*models.Asset) string {
	return func(*models.Asset) string { return text }
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
