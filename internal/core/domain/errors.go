package domain

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError collects field level violations. Field keys use the
// client-facing names (e.g. "balance", "configuration") so the HTTP layer
// can return them verbatim.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError returns a validation error holding a single message.
func NewValidationError(field, msg string) *ValidationError {
	v := &ValidationError{}
	v.Add(field, msg)
	return v
}

// Add records msg against field.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

// Merge copies every violation of other into e.
func (e *ValidationError) Merge(other *ValidationError) {
	if other == nil {
		return
	}
	for field, msgs := range other.Fields {
		for _, m := range msgs {
			e.Add(field, m)
		}
	}
}

// Has reports whether field has at least one violation.
func (e *ValidationError) Has(field string) bool {
	return len(e.Fields[field]) > 0
}

// Err returns nil when no violation was recorded. Callers accumulate into
// a ValidationError and return Err() so a typed nil never escapes.
func (e *ValidationError) Err() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// NotFoundError is returned when an entity does not exist or was
// tombstoned.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// ConflictError reports a uniqueness violation on Field.
type ConflictError struct {
	Field   string
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// AsValidation converts the conflict into a field level validation error.
func (e *ConflictError) AsValidation() *ValidationError {
	return NewValidationError(e.Field, e.Message)
}

// InvalidTransitionError is returned when a lifecycle action is not legal
// from the campaign's current status.
type InvalidTransitionError struct {
	Action string
	From   CampaignStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a campaign in status %q", e.Action, e.From)
}
