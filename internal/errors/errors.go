package errors

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/coachdesk/internal/logger"
)

var (
	// ErrNotFound is matched by every NotFoundError
	ErrNotFound = stderrors.New("not found")
	// ErrInvalidTransition is matched by every TransitionError
	ErrInvalidTransition = stderrors.New("invalid status transition")
	// ErrValidation is matched by every ValidationError
	ErrValidation = stderrors.New("validation failed")
)

// ValidationError reports the draft fields that are missing or malformed.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "missing required fields"
	}
	if len(e.Fields) == 0 {
		return reason
	}
	return fmt.Sprintf("%s: %s", reason, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Has reports whether field is among the offending fields.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// NotFoundError is returned when an operation references an unknown id.
type NotFoundError struct {
	Kind string // "session", "client", "method"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// TransitionError is returned when a status change is not allowed from the current status.
type TransitionError struct {
	ID   string
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("session %s: cannot move from %s to %s", e.ID, e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// ReferentialIntegrityWarning marks a session whose client is absent from the catalog.
// It is informational: callers degrade to a placeholder label instead of failing.
type ReferentialIntegrityWarning struct {
	SessionID string
	ClientID  string
}

func (w *ReferentialIntegrityWarning) Error() string {
	if w.SessionID == "" {
		return fmt.Sprintf("unknown client reference: %s", w.ClientID)
	}
	return fmt.Sprintf("session %s references unknown client %s", w.SessionID, w.ClientID)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
