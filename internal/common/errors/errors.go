// Package errors provides standardized error handling for the
// question-answering pipeline.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeOutOfDomain ErrorCode = "OUT_OF_DOMAIN"

	ErrCodeCatalogQueryFailed ErrorCode = "CATALOG_QUERY_FAILED"
	ErrCodeCatalogTimeout     ErrorCode = "CATALOG_TIMEOUT"

	ErrCodeGenerationTransportFailed ErrorCode = "GENERATION_TRANSPORT_FAILED"
	ErrCodeGenerationParseFailed     ErrorCode = "GENERATION_PARSE_FAILED"

	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrCodeInternalError  ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewCatalogQueryError wraps a failed catalog read. Retryable because
// connection-level failures usually clear up.
func NewCatalogQueryError(query string, cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogQueryFailed,
		Message:   fmt.Sprintf("catalog query %q failed", query),
		Details:   cause.Error(),
		Retryable: true,
		Metadata:  map[string]interface{}{"query": query},
		Timestamp: time.Now(),
	}
}

// NewGenerationTransportError wraps a failed round-trip to the
// generation backend.
func NewGenerationTransportError(cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeGenerationTransportFailed,
		Message:   "generation service call failed",
		Details:   cause.Error(),
		Retryable: true,
		Timestamp: time.Now(),
	}
}

// NewGenerationParseError records a response body that yielded no
// answer text through any parser.
func NewGenerationParseError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeGenerationParseFailed,
		Message:   "generation response contained no answer",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now(),
	}
}

// NewInvalidRequestError reports a request that failed schema validation.
func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "request validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now(),
	}
}

// NewInternalError wraps an unexpected failure inside the pipeline.
func NewInternalError(cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternalError,
		Message:   "unexpected internal failure",
		Details:   cause.Error(),
		Retryable: false,
		Timestamp: time.Now(),
	}
}
