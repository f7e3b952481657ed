package core

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorKind enumerates the recoverable failure classes. Every kind is
// converted to a structured Result at the boundary where it occurs; none of
// them may cross the Agent Manager or Workflow Engine as a raised fault.
type ErrorKind string

const (
	// KindValidation marks a request missing required input fields.
	KindValidation ErrorKind = "validation"
	// KindNotFound marks an unknown agent, workflow or message receiver.
	KindNotFound ErrorKind = "not_found"
	// KindUnavailable marks a receiver that is registered but offline.
	KindUnavailable ErrorKind = "unavailable"
	// KindCollaborator marks an unexpected fault from the external
	// generation collaborator.
	KindCollaborator ErrorKind = "collaborator"
)

// Error is a recoverable, classified failure. It implements error so it can
// travel through ordinary Go plumbing, but its terminal form is the Result
// produced by ToResult.
type Error struct {
	Kind    ErrorKind
	Message string
	// Fields lists the missing input fields for KindValidation errors.
	Fields []string
	// Subject names the offending identifier for KindNotFound and
	// KindUnavailable errors (agent name, workflow name, receiver id).
	Subject string
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// ToResult converts the error into the uniform result envelope. Validation
// errors expose the missing field list under data.missing_fields so callers
// can inspect exactly which fields were absent.
func (e *Error) ToResult() Result {
	r := Result{Status: StatusError, Message: e.Message}
	if e.Kind == KindValidation && len(e.Fields) > 0 {
		r.Data = map[string]any{"missing_fields": e.Fields}
	}
	return r
}

// NewValidationError builds a validation error naming the missing fields.
// The field list is sorted so the message is deterministic.
func NewValidationError(missing []string) *Error {
	fields := append([]string(nil), missing...)
	sort.Strings(fields)
	return &Error{
		Kind:    KindValidation,
		Message: fmt.Sprintf("missing required fields: %s", strings.Join(fields, ", ")),
		Fields:  fields,
	}
}

// NewNotFoundError builds a not-found error for the given entity kind
// ("agent", "workflow", "receiver") and identifier.
func NewNotFoundError(entity, id string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", entity, id),
		Subject: id,
	}
}

// NewUnavailableError builds an unavailable error for an offline receiver.
func NewUnavailableError(id string) *Error {
	return &Error{
		Kind:    KindUnavailable,
		Message: fmt.Sprintf("receiver agent offline: %s", id),
		Subject: id,
	}
}

// NewCollaboratorError wraps a fault raised by the external generation call.
func NewCollaboratorError(err error) *Error {
	return &Error{
		Kind:    KindCollaborator,
		Message: fmt.Sprintf("generation failed: %v", err),
	}
}
