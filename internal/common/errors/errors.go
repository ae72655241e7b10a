// Package errors provides standardized error handling for the tool layer.
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

// Absence of a record or a record section is a narratable result, not an
// error; the services answer those with found flags and messages. Only
// conditions that abort a tool call carry a code here.
const (
	ErrCodeValidationFailed     ErrorCode = "VALIDATION_FAILED"
	ErrCodeUnknownJobID         ErrorCode = "UNKNOWN_JOB_ID"
	ErrCodeInvalidDateOfBirth   ErrorCode = "INVALID_DATE_OF_BIRTH"
	ErrCodeDuplicateApplication ErrorCode = "DUPLICATE_APPLICATION"

	ErrCodeNotificationFailed ErrorCode = "NOTIFICATION_SEND_FAILED"

	ErrCodeStoreReadFailed  ErrorCode = "STORE_READ_FAILED"
	ErrCodeStoreWriteFailed ErrorCode = "STORE_WRITE_FAILED"

	ErrCodeUnknownTool        ErrorCode = "UNKNOWN_TOOL"
	ErrCodeInputSchemaInvalid ErrorCode = "INPUT_SCHEMA_INVALID"
)

// StandardError represents a structured application error. Tool handlers
// convert these into narratable results; they never escape the dispatch
// boundary as panics or fatal errors.
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

// NewValidationFailedError creates a non-retryable user-facing validation error.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Input validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnknownJobIDError creates a non-retryable unknown job id error.
func NewUnknownJobIDError(jobID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownJobID,
		Message:   "Job id is not in the open positions list",
		Details:   fmt.Sprintf("jobId: %s", jobID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidDateOfBirthError creates a non-retryable date parse error.
func NewInvalidDateOfBirthError(raw string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidDateOfBirth,
		Message:   "Date of birth could not be understood, expected something like 14-03-1992",
		Details:   fmt.Sprintf("dob: %s", raw),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDuplicateApplicationError creates a non-retryable duplicate application error.
func NewDuplicateApplicationError(applicationID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDuplicateApplication,
		Message:   "Application already exists",
		Details:   fmt.Sprintf("applicationId: %s", applicationID),
		Retryable: false,
		Metadata:  map[string]interface{}{"applicationId": applicationID},
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationFailedError creates a retryable notification send error.
func NewNotificationFailedError(channel string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationFailed,
		Message:   "Notification delivery failed",
		Details:   fmt.Sprintf("channel: %s, error: %s", channel, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewStoreReadFailedError wraps an unexpected record store read failure.
func NewStoreReadFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStoreReadFailed,
		Message:   "Record store read failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewStoreWriteFailedError wraps an unexpected record store write failure.
func NewStoreWriteFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStoreWriteFailed,
		Message:   "Record store write failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnknownToolError signals a dispatch request for an unregistered tool name.
func NewUnknownToolError(name string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownTool,
		Message:   "Tool is not registered",
		Details:   fmt.Sprintf("tool: %s", name),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInputSchemaInvalidError signals tool arguments rejected by the registry schema.
func NewInputSchemaInvalidError(tool, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInputSchemaInvalid,
		Message:   "Tool arguments failed schema validation",
		Details:   fmt.Sprintf("tool: %s, %s", tool, details),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
