// internal/common/errors/errors_test.go
package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors_CodesAndRetryability(t *testing.T) {
	tests := []struct {
		name      string
		err       *StandardError
		code      ErrorCode
		retryable bool
	}{
		{"validation", NewValidationFailedError("name is required"), ErrCodeValidationFailed, false},
		{"unknown job", NewUnknownJobIDError("JR-9999"), ErrCodeUnknownJobID, false},
		{"bad dob", NewInvalidDateOfBirthError("sometime"), ErrCodeInvalidDateOfBirth, false},
		{"duplicate", NewDuplicateApplicationError("app-1"), ErrCodeDuplicateApplication, false},
		{"notification", NewNotificationFailedError("email", fmt.Errorf("boom")), ErrCodeNotificationFailed, true},
		{"store read", NewStoreReadFailedError(fmt.Errorf("boom")), ErrCodeStoreReadFailed, true},
		{"store write", NewStoreWriteFailedError(fmt.Errorf("boom")), ErrCodeStoreWriteFailed, true},
		{"unknown tool", NewUnknownToolError("no_such_tool"), ErrCodeUnknownTool, false},
		{"schema", NewInputSchemaInvalidError("create_job_application", "email is required"), ErrCodeInputSchemaInvalid, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.retryable, tt.err.Retryable)
			assert.NotEmpty(t, tt.err.Message)
			assert.False(t, tt.err.Timestamp.IsZero())
		})
	}
}

func TestDuplicateApplicationError_CarriesExistingID(t *testing.T) {
	err := NewDuplicateApplicationError("app-42")
	assert.Equal(t, "app-42", err.Metadata["applicationId"])
}

func TestStandardError_Error(t *testing.T) {
	err := NewUnknownToolError("ghost")
	assert.Contains(t, err.Error(), "UNKNOWN_TOOL")
	assert.Contains(t, err.Error(), "Tool is not registered")
}
