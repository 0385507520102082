// Package errors provides centralized error definitions and error handling utilities
// for the team builder. It defines the roster error taxonomy, typed errors that
// carry lookup and roster context, and helpers that turn any error into the
// single status line shown to the user.
//
// # Error Taxonomy
//
// Every failed roster operation resolves to one of three sentinels:
//   - ErrEmptyInput: the requested name was blank
//   - ErrRosterFull: the roster already holds the maximum number of creatures
//   - ErrNotFound: the lookup failed, whether the service answered "not found",
//     the transport failed, or the payload could not be decoded
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewLookupError("pikachu", cause).WithStatusCode(404)
//	err := errors.NewRosterError("add", errors.ErrRosterFull).WithSize(6)
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrNotFound) { ... }
//
//	var lookupErr *errors.LookupError
//	if errors.As(err, &lookupErr) { ... }
//
// Displaying errors:
//
//	status := errors.UserMessage(err) // "Pokémon not found!"
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Roster sentinel errors
var (
	// ErrEmptyInput indicates that the requested creature name was blank.
	ErrEmptyInput = New("empty creature name")
	// ErrRosterFull indicates that the roster has no free slot.
	ErrRosterFull = New("roster is full")
	// ErrNotFound indicates that a creature could not be resolved.
	ErrNotFound = New("creature not found")
)

// User-facing status messages, one per sentinel.
const (
	MessageEmptyInput = "Please enter a Pokémon name!"
	MessageRosterFull = "Your team is full!"
	MessageNotFound   = "Pokémon not found!"
)

// -----------------------------------------------------------------------------
// Base Error Implementation
// -----------------------------------------------------------------------------

// baseError provides common functionality for all error types.
type baseError struct {
	message  string
	cause    error
	severity Severity
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// LookupError represents a failed creature lookup. It always matches
// ErrNotFound: a missing creature, a failed request and an unreadable
// payload are indistinguishable to the user.
//
// Example:
//
//	err := errors.NewLookupError("qqzzz", nil).WithStatusCode(404)
//	fmt.Println(err) // "lookup error [name=qqzzz, status=404]: creature not found"
type LookupError struct {
	baseError
	Name       string
	StatusCode int
}

// NewLookupError creates a new LookupError for the given normalized name.
func NewLookupError(name string, cause error) *LookupError {
	return &LookupError{
		baseError: baseError{
			message:  ErrNotFound.Error(),
			cause:    cause,
			severity: SeverityWarning,
		},
		Name: name,
	}
}

// WithStatusCode records the HTTP status returned by the lookup service.
func (e *LookupError) WithStatusCode(code int) *LookupError {
	e.StatusCode = code
	return e
}

// Error returns the formatted error message.
func (e *LookupError) Error() string {
	var parts []string
	if e.Name != "" {
		parts = append(parts, fmt.Sprintf("name=%s", e.Name))
	}
	if e.StatusCode != 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.StatusCode))
	}

	prefix := "lookup error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("lookup error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is reports whether target is ErrNotFound or matches the wrapped cause.
func (e *LookupError) Is(target error) bool {
	if target == ErrNotFound {
		return true
	}
	if _, ok := target.(*LookupError); ok {
		return true
	}
	return false
}

// RosterError represents a rejected roster operation.
//
// Example:
//
//	err := errors.NewRosterError("add", errors.ErrRosterFull).WithSize(6)
//	fmt.Println(err) // "roster error [op=add, size=6]: roster is full"
type RosterError struct {
	baseError
	Op   string
	Size int
	Name string
}

// NewRosterError creates a new RosterError for the operation op. The cause
// is normally one of the roster sentinels.
func NewRosterError(op string, cause error) *RosterError {
	return &RosterError{
		baseError: baseError{
			message:  op,
			cause:    cause,
			severity: SeverityInfo,
		},
		Op: op,
	}
}

// WithSize records the roster size at the time of the failure.
func (e *RosterError) WithSize(size int) *RosterError {
	e.Size = size
	return e
}

// WithName records the creature name involved.
func (e *RosterError) WithName(name string) *RosterError {
	e.Name = name
	return e
}

// Error returns the formatted error message.
func (e *RosterError) Error() string {
	parts := []string{fmt.Sprintf("op=%s", e.Op), fmt.Sprintf("size=%d", e.Size)}
	if e.Name != "" {
		parts = append(parts, fmt.Sprintf("name=%s", e.Name))
	}
	prefix := fmt.Sprintf("roster error [%s]", strings.Join(parts, ", "))
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", prefix, e.cause)
	}
	return prefix
}

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// UserMessage returns the status line to display for err. The three roster
// sentinels map to fixed messages; anything else falls back to err.Error().
// A nil error yields the empty string, which clears the status.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case Is(err, ErrEmptyInput):
		return MessageEmptyInput
	case Is(err, ErrRosterFull):
		return MessageRosterFull
	case Is(err, ErrNotFound):
		return MessageNotFound
	default:
		return err.Error()
	}
}

// GetSeverity returns the severity of err. Errors without a severity are
// reported as SeverityError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityInfo
	}
	var s interface{ Severity() Severity }
	if As(err, &s) {
		return s.Severity()
	}
	return SeverityError
}

// IsRosterError reports whether err belongs to the roster taxonomy.
func IsRosterError(err error) bool {
	return Is(err, ErrEmptyInput) || Is(err, ErrRosterFull) || Is(err, ErrNotFound)
}
