package errors

import (
	"errors"
	"fmt"
)

// Error types for the verification domain
type ErrorType string

const (
	// ErrorTypeMissingMandatory marks the absence of a node that aborts the run.
	ErrorTypeMissingMandatory ErrorType = "MISSING_MANDATORY_NODE"
	// ErrorTypeMissingOptional marks the absence of a node that only degrades the report.
	ErrorTypeMissingOptional ErrorType = "MISSING_OPTIONAL_NODE"
	// ErrorTypeMalformedContent marks content that exists but could not be decoded.
	ErrorTypeMalformedContent ErrorType = "MALFORMED_CONTENT"
	// ErrorTypeScanFailure marks a data-file read or analysis failure.
	// Unreadable and undecodable shards are deliberately not distinguished;
	// both carry their cause and neither affects the exit code.
	ErrorTypeScanFailure ErrorType = "SCAN_FAILURE"
)

// Sentinel errors for the mandatory bundle nodes
var (
	ErrBundleRootNotFound = errors.New("export bundle root not found")
	ErrExportTreeNotFound = errors.New("firestore export directory not found")
	ErrDataShardNotFound  = errors.New("export data file not found")
)

// VerificationError represents a verification failure or deficiency with context
type VerificationError struct {
	Type    ErrorType              `json:"type"`
	Message string                 `json:"message"`
	Node    string                 `json:"node,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *VerificationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *VerificationError) Unwrap() error {
	return e.Cause
}

// NewVerificationError creates a new verification error
func NewVerificationError(errorType ErrorType, message string) *VerificationError {
	return &VerificationError{
		Type:    errorType,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// WithNode records the bundle node the error refers to
func (e *VerificationError) WithNode(node string) *VerificationError {
	e.Node = node
	return e
}

// WithCause adds the underlying cause
func (e *VerificationError) WithCause(cause error) *VerificationError {
	e.Cause = cause
	return e
}

// WithDetail adds a detail field
func (e *VerificationError) WithDetail(key string, value interface{}) *VerificationError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// Common error constructors

// NewMissingMandatoryError creates an error for an absent mandatory node
func NewMissingMandatoryError(node string) *VerificationError {
	return NewVerificationError(ErrorTypeMissingMandatory, fmt.Sprintf("%s not found", node)).WithNode(node)
}

// NewMissingOptionalError creates a deficiency for an absent optional node
func NewMissingOptionalError(node string) *VerificationError {
	return NewVerificationError(ErrorTypeMissingOptional, fmt.Sprintf("%s not found", node)).WithNode(node)
}

// NewMalformedContentError creates an error for undecodable content
func NewMalformedContentError(node string, cause error) *VerificationError {
	return NewVerificationError(ErrorTypeMalformedContent, fmt.Sprintf("could not parse %s", node)).
		WithNode(node).
		WithCause(cause)
}

// NewScanFailureError creates an error for a failed data-file analysis
func NewScanFailureError(node string, cause error) *VerificationError {
	return NewVerificationError(ErrorTypeScanFailure, fmt.Sprintf("could not analyze %s", node)).
		WithNode(node).
		WithCause(cause)
}

// Helper functions for common error scenarios

// IsMissingMandatory checks if an error is a missing mandatory node error
func IsMissingMandatory(err error) bool {
	var verr *VerificationError
	if errors.As(err, &verr) {
		return verr.Type == ErrorTypeMissingMandatory
	}
	return errors.Is(err, ErrBundleRootNotFound) ||
		errors.Is(err, ErrExportTreeNotFound) ||
		errors.Is(err, ErrDataShardNotFound)
}

// IsMissingOptional checks if an error is a missing optional node deficiency
func IsMissingOptional(err error) bool {
	var verr *VerificationError
	if errors.As(err, &verr) {
		return verr.Type == ErrorTypeMissingOptional
	}
	return false
}

// IsMalformedContent checks if an error is a malformed content error
func IsMalformedContent(err error) bool {
	var verr *VerificationError
	if errors.As(err, &verr) {
		return verr.Type == ErrorTypeMalformedContent
	}
	return false
}

// IsScanFailure checks if an error is a data-file scan failure
func IsScanFailure(err error) bool {
	var verr *VerificationError
	if errors.As(err, &verr) {
		return verr.Type == ErrorTypeScanFailure
	}
	return false
}

// IsFatal reports whether an error aborts the verification run.
// Mandatory-node presence is the sole success criterion; every other
// category is a report deficiency.
func IsFatal(err error) bool {
	return IsMissingMandatory(err)
}
