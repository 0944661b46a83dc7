package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "simple error",
			err:      errors.New("something went wrong"),
			expected: "Error: something went wrong",
		},
		{
			name:     "not found",
			err:      &NotFoundError{Kind: "session", ID: "s-1"},
			expected: "Error: session not found: s-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.err)
			if result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	result := Formatf("failed to load %s", "sessions")
	if result != "Error: failed to load sessions" {
		t.Errorf("Formatf() = %q", result)
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		expected string
	}{
		{
			name:     "default reason",
			err:      &ValidationError{Fields: []string{"client", "title"}},
			expected: "missing required fields: client, title",
		},
		{
			name:     "custom reason",
			err:      &ValidationError{Fields: []string{"duration"}, Reason: "session would cross midnight"},
			expected: "session would cross midnight: duration",
		},
		{
			name:     "no fields",
			err:      &ValidationError{Reason: "bad input"},
			expected: "bad input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}

	verr := &ValidationError{Fields: []string{"client"}}
	if !verr.Has("client") || verr.Has("title") {
		t.Error("Has() reported wrong fields")
	}
}

func TestSentinelMatching(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", &NotFoundError{Kind: "client", ID: "c-9"}, ErrNotFound},
		{"transition", &TransitionError{ID: "s-1", From: "completed", To: "cancelled"}, ErrInvalidTransition},
		{"validation", &ValidationError{Fields: []string{"date"}}, ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("command failed: %w", tt.err)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", wrapped, tt.sentinel)
			}
		})
	}

	if errors.Is(&NotFoundError{}, ErrInvalidTransition) {
		t.Error("NotFoundError must not match ErrInvalidTransition")
	}
}

func TestReferentialIntegrityWarning(t *testing.T) {
	w := &ReferentialIntegrityWarning{SessionID: "s-1", ClientID: "c-9"}
	if got := w.Error(); got != "session s-1 references unknown client c-9" {
		t.Errorf("Error() = %q", got)
	}
	w = &ReferentialIntegrityWarning{ClientID: "c-9"}
	if got := w.Error(); got != "unknown client reference: c-9" {
		t.Errorf("Error() = %q", got)
	}
}
