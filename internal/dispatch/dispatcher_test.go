// internal/dispatch/dispatcher_test.go
package dispatch

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-voice-tools/internal/common/errors"
	"hr-voice-tools/internal/common/logger/loggertest"
	"hr-voice-tools/internal/common/observability"
	"hr-voice-tools/pkg/registry"
)

// ==========================
// Test Helper Functions
// ==========================

func testRegistry() *registry.ToolRegistry {
	return &registry.ToolRegistry{
		Version: "1.0.0",
		Tools: []registry.Tool{
			{
				Name:     "echo_email",
				Category: "test",
				InputSchema: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"email": map[string]interface{}{"type": "string", "minLength": float64(3)},
					},
					"required": []interface{}{"email"},
				},
			},
			{Name: "no_schema"},
		},
	}
}

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	return NewDispatcher(testRegistry(), loggertest.New(t), observability.New("dispatch-test"))
}

func echoHandler(_ context.Context, args json.RawMessage) (interface{}, error) {
	var input struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(args, &input); err != nil {
		return nil, err
	}
	return map[string]string{"email": input.Email}, nil
}

// ==========================
// Bind
// ==========================

func TestDispatcher_Bind_RejectsUndeclaredTool(t *testing.T) {
	d := newTestDispatcher(t)
	err := d.Bind("not_in_registry", echoHandler)
	assert.Error(t, err)
}

func TestDispatcher_Bind_RejectsDouble(t *testing.T) {
	d := newTestDispatcher(t)
	require.NoError(t, d.Bind("echo_email", echoHandler))
	assert.Error(t, d.Bind("echo_email", echoHandler))
}

func TestDispatcher_Unbound(t *testing.T) {
	d := newTestDispatcher(t)
	require.NoError(t, d.Bind("echo_email", echoHandler))
	assert.Equal(t, []string{"no_schema"}, d.Unbound())
}

// ==========================
// Dispatch
// ==========================

func TestDispatcher_Dispatch_Success(t *testing.T) {
	d := newTestDispatcher(t)
	require.NoError(t, d.Bind("echo_email", echoHandler))

	res, err := d.Dispatch(context.Background(), "echo_email", json.RawMessage(`{"email":"jane@x.com"}`))
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Nil(t, res.Error)
	assert.Equal(t, map[string]string{"email": "jane@x.com"}, res.Data)
}

func TestDispatcher_Dispatch_SchemaRejectsMissingField(t *testing.T) {
	d := newTestDispatcher(t)
	require.NoError(t, d.Bind("echo_email", echoHandler))

	res, err := d.Dispatch(context.Background(), "echo_email", json.RawMessage(`{}`))
	require.NoError(t, err)
	assert.False(t, res.OK)
	require.NotNil(t, res.Error)
	assert.Equal(t, errors.ErrCodeInputSchemaInvalid, res.Error.Code)
}

func TestDispatcher_Dispatch_SchemaRejectsWrongType(t *testing.T) {
	d := newTestDispatcher(t)
	require.NoError(t, d.Bind("echo_email", echoHandler))

	res, err := d.Dispatch(context.Background(), "echo_email", json.RawMessage(`{"email":42}`))
	require.NoError(t, err)
	require.NotNil(t, res.Error)
	assert.Equal(t, errors.ErrCodeInputSchemaInvalid, res.Error.Code)
}

func TestDispatcher_Dispatch_UnknownTool(t *testing.T) {
	d := newTestDispatcher(t)

	res, err := d.Dispatch(context.Background(), "ghost", json.RawMessage(`{}`))
	require.NoError(t, err)
	require.NotNil(t, res.Error)
	assert.Equal(t, errors.ErrCodeUnknownTool, res.Error.Code)
}

func TestDispatcher_Dispatch_StandardErrorPassesThrough(t *testing.T) {
	d := newTestDispatcher(t)
	require.NoError(t, d.Bind("no_schema", func(context.Context, json.RawMessage) (interface{}, error) {
		return nil, errors.NewUnknownJobIDError("JR-9999")
	}))

	res, err := d.Dispatch(context.Background(), "no_schema", nil)
	require.NoError(t, err)
	require.NotNil(t, res.Error)
	assert.Equal(t, errors.ErrCodeUnknownJobID, res.Error.Code)
	assert.False(t, res.Error.Retryable)
}

func TestDispatcher_Dispatch_EmptyArgsDefaultToObject(t *testing.T) {
	d := newTestDispatcher(t)
	require.NoError(t, d.Bind("no_schema", func(_ context.Context, args json.RawMessage) (interface{}, error) {
		assert.JSONEq(t, `{}`, string(args))
		return "ok", nil
	}))

	res, err := d.Dispatch(context.Background(), "no_schema", nil)
	require.NoError(t, err)
	assert.True(t, res.OK)
}
