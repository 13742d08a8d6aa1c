// Package pipelineerror defines the error taxonomy of the statement
// pipeline. Expected AI failures are recovered via fallback paths and
// never surface to callers; these types exist so logs and diagnostics can
// tell failure classes apart.
package pipelineerror

import "fmt"

// ServiceError represents a transient AI completion service failure
// (network, timeout, non-2xx). Always recovered locally via fallback.
type ServiceError struct {
	Operation string
	Err       error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: AI service failure: %v", e.Operation, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// UnparseableResponseError represents an AI response that could not be
// parsed as JSON after fence stripping and repair. Treated identically to
// a service failure.
type UnparseableResponseError struct {
	Operation string
	Snippet   string
	Err       error
}

func (e *UnparseableResponseError) Error() string {
	if e.Snippet != "" {
		return fmt.Sprintf("%s: AI response unparseable: %v. Response snippet: %q",
			e.Operation, e.Err, e.Snippet)
	}
	return fmt.Sprintf("%s: AI response unparseable: %v", e.Operation, e.Err)
}

func (e *UnparseableResponseError) Unwrap() error {
	return e.Err
}

// TaxonomyError represents a malformed category definition. This is a
// programming-contract violation and the only error class that propagates
// as a hard failure.
type TaxonomyError struct {
	Key    string
	Reason string
}

func (e *TaxonomyError) Error() string {
	return fmt.Sprintf("invalid category definition %q: %s", e.Key, e.Reason)
}

// Snippet trims a raw AI response for inclusion in error messages.
func Snippet(s string) string {
	const max = 120
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
