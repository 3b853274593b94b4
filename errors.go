package gtable

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for validation failures.
const (
	ErrCodeRequired      = "required"
	ErrCodeMin           = "min"
	ErrCodeMax           = "max"
	ErrCodeOneOf         = "oneof"
	ErrCodeInvalidType   = "invalid_type"
	ErrCodeUnknownKey    = "unknown_key"
	ErrCodeInvalidID     = "invalid_id"
	ErrCodeOverlap       = "overlapping_columns"
	ErrCodeUnknownColumn = "unknown_column"
	ErrCodeDuplicate     = "duplicate_column"
	ErrCodeLength        = "length_mismatch"
	ErrCodeReserved      = "reserved_name"
	ErrCodeInvalidLocale = "invalid_locale"
	ErrCodeInvalidAlign  = "invalid_alignment"
)

// ErrNilTable is returned when an operation receives a nil table or one not
// produced by Build.
var ErrNilTable = errors.New("gtable: table is nil")

// ValidationError aggregates field-level validation failures.
type ValidationError struct {
	FieldErrors []FieldError
}

// Error formats validation errors as a multi-line message.
func (e *ValidationError) Error() string {
	if len(e.FieldErrors) == 0 {
		return "validation failed: no errors"
	}

	var b strings.Builder
	if len(e.FieldErrors) == 1 {
		b.WriteString("validation failed: 1 error\n")
	} else {
		fmt.Fprintf(&b, "validation failed: %d errors\n", len(e.FieldErrors))
	}

	for _, fe := range e.FieldErrors {
		fmt.Fprintf(&b, "  - %s: %s (%s)\n", fe.FieldPath, fe.Code, fe.Message)
	}

	return strings.TrimRight(b.String(), "\n")
}

// Has reports whether any field error carries the given code.
func (e *ValidationError) Has(code string) bool {
	for _, fe := range e.FieldErrors {
		if fe.Code == code {
			return true
		}
	}
	return false
}

// FieldError represents a single validation failure.
type FieldError struct {
	FieldPath string // Dot notation (e.g., "groupname_col", "row_group.sep")
	Code      string // Error code (e.g., "required", "invalid_id")
	Message   string // Human-readable description
}

// fieldErrors collects FieldErrors and converts them into a *ValidationError.
type fieldErrors []FieldError

func (fe *fieldErrors) add(path, code, format string, args ...any) {
	*fe = append(*fe, FieldError{
		FieldPath: path,
		Code:      code,
		Message:   fmt.Sprintf(format, args...),
	})
}

// err returns nil when nothing was collected.
func (fe fieldErrors) err() error {
	if len(fe) == 0 {
		return nil
	}
	return &ValidationError{FieldErrors: fe}
}
