package workflow

import (
	"fmt"
	"strings"

	"grafica_xpto/internal/domain/entities"
)

// Typed rejection values produced by the guard and the workflow usecases.
// Each carries enough structure for the HTTP layer to explain the rejection
// (allowed targets, required roles, offending field) without guessing.

// SameStateError rejects a no-op transition. No-op requests are rejected,
// not silently accepted.
type SameStateError struct {
	Status string
}

func (e *SameStateError) Error() string {
	return fmt.Sprintf("entity is already in status %s", e.Status)
}

// InvalidTransitionError rejects a target state unreachable from the current
// one. Allowed lists the valid targets for caller feedback.
type InvalidTransitionError struct {
	From    string
	To      string
	Allowed []string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("transition %s -> %s is not allowed (allowed: %s)",
		e.From, e.To, strings.Join(e.Allowed, ", "))
}

// PermissionError rejects a role that may not set the requested target state.
type PermissionError struct {
	Role     entities.Role
	Target   string
	Required []entities.Role
}

func (e *PermissionError) Error() string {
	req := make([]string, len(e.Required))
	for i, r := range e.Required {
		req[i] = string(r)
	}
	return fmt.Sprintf("role %s may not set status %s (requires: %s)",
		e.Role, e.Target, strings.Join(req, ", "))
}

// InvalidStateError rejects a compound operation whose precondition is not
// met (e.g. converting a budget that is not APPROVED). Distinct from a normal
// transition rejection.
type InvalidStateError struct {
	Operation string
	Expected  string
	Actual    string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s requires status %s, entity is %s", e.Operation, e.Expected, e.Actual)
}

// ImmutableFieldError rejects an attempt to alter a write-once field through
// a generic update.
type ImmutableFieldError struct {
	Field     string
	Current   string
	Attempted string
}

func (e *ImmutableFieldError) Error() string {
	return fmt.Sprintf("field %s is immutable (current: %s, attempted: %s)",
		e.Field, e.Current, e.Attempted)
}

// ConflictError reports a lost concurrent-write race: the stored status no
// longer matched the one the transition was validated against.
type ConflictError struct {
	Expected string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("entity was modified concurrently (expected status %s)", e.Expected)
}

// ValidationError rejects malformed input shape or values.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
