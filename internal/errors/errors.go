// Package errors provides a lightweight structured error type (CatalogError)
// for category-based classification in the CLI and pipeline stages.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a catalog error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Corpus and extraction errors
	CategoryCorpus  ErrorCategory = "corpus"
	CategoryExtract ErrorCategory = "extract"

	// Snapshot and artifact errors
	CategoryConsistency ErrorCategory = "consistency"
	CategoryArtifact    ErrorCategory = "artifact"

	// Audit and runtime errors
	CategoryAudit    ErrorCategory = "audit"
	CategoryRuntime  ErrorCategory = "runtime"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// CatalogError is a structured error with category, severity, and context
type CatalogError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for CatalogError
type ContextFields map[string]any

// Error implements the error interface
func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *CatalogError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *CatalogError) WithContext(key string, value any) *CatalogError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new CatalogError
func New(category ErrorCategory, severity ErrorSeverity, message string) *CatalogError {
	return &CatalogError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new CatalogError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *CatalogError {
	return &CatalogError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if ce, ok := err.(*CatalogError); ok {
		return ce.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a CatalogError
func GetCategory(err error) ErrorCategory {
	if ce, ok := err.(*CatalogError); ok {
		return ce.Category
	}
	return CategoryInternal
}

// ConsistencyError creates a fatal cross-artifact consistency violation.
// This is the invariant the generator must never soft-log: all artifacts
// in one run derive from one snapshot and must agree on totals.
func ConsistencyError(message string) *CatalogError {
	return &CatalogError{
		Category: CategoryConsistency,
		Severity: SeverityFatal,
		Message:  message,
	}
}

// CorpusError creates a fatal corpus-root error (missing/unreadable tree).
func CorpusError(err error, message string) *CatalogError {
	return &CatalogError{
		Category: CategoryCorpus,
		Severity: SeverityFatal,
		Message:  message,
		Cause:    err,
	}
}
