// Package errors provides standardized error handling for the matching and
// brief generation workers.
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
	// Lookup errors: surfaced to the caller, never retried.
	ErrCodeCampaignNotFound ErrorCode = "CAMPAIGN_NOT_FOUND"
	ErrCodeCreatorNotFound  ErrorCode = "CREATOR_NOT_FOUND"

	// Generation errors. Malformed output is recovered locally by the
	// repair loop and only surfaces after the attempt budget is spent.
	ErrCodeMalformedProviderOutput ErrorCode = "MALFORMED_PROVIDER_OUTPUT"
	ErrCodeGenerationExhausted     ErrorCode = "GENERATION_EXHAUSTED"
	ErrCodeProviderCallFailed      ErrorCode = "PROVIDER_CALL_FAILED"

	// Collaborator errors: propagated unchanged, retryable at the job level.
	ErrCodeStorageFailure ErrorCode = "STORAGE_FAILURE"

	ErrCodeOutreachSendFailed ErrorCode = "OUTREACH_SEND_FAILED"
	ErrCodeInvalidInput       ErrorCode = "INVALID_INPUT"
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

// NewCampaignNotFoundError creates a non-retryable lookup error.
func NewCampaignNotFoundError(campaignID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCampaignNotFound,
		Message:   "Campaign not found",
		Details:   fmt.Sprintf("campaignId: %s", campaignID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCreatorNotFoundError creates a non-retryable lookup error.
func NewCreatorNotFoundError(creatorID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCreatorNotFound,
		Message:   "Creator not found",
		Details:   fmt.Sprintf("creatorId: %s", creatorID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMalformedProviderOutputError records one invalid generation attempt.
// Not surfaced directly; the repair loop consumes it.
func NewMalformedProviderOutputError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedProviderOutput,
		Message:   "Provider output failed parsing or schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewGenerationExhaustedError creates the terminal repair-loop failure. It
// carries the last recorded error and the attempt count and is never retried
// by an outer layer.
func NewGenerationExhaustedError(attempts int, lastError string) *StandardError {
	return &StandardError{
		Code:      ErrCodeGenerationExhausted,
		Message:   fmt.Sprintf("Brief generation failed after %d attempts", attempts),
		Details:   lastError,
		Retryable: false,
		Metadata:  map[string]interface{}{"attempts": attempts},
		Timestamp: time.Now().UTC(),
	}
}

// NewProviderCallFailedError wraps a transport-level provider failure.
func NewProviderCallFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeProviderCallFailed,
		Message:   "Generation provider call failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewStorageFailureError propagates a persistence error unchanged.
func NewStorageFailureError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStorageFailure,
		Message:   "Persistence collaborator error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewOutreachSendFailedError creates a retryable delivery error.
func NewOutreachSendFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeOutreachSendFailed,
		Message:   "Outreach email delivery failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidInputError creates a non-retryable input validation error.
func NewInvalidInputError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidInput,
		Message:   "Job input validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
