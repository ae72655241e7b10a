// internal/tools/handovertools/handler_test.go
package handovertools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-voice-tools/internal/common/logger/loggertest"
	"hr-voice-tools/internal/common/observability"
	"hr-voice-tools/internal/dispatch"
	"hr-voice-tools/pkg/registry"
)

func TestRegister_TransfersToTarget(t *testing.T) {
	reg := &registry.ToolRegistry{Tools: []registry.Tool{
		{Name: "handover_to_onboarding"},
		{Name: "handover_to_applications"},
	}}
	d := dispatch.NewDispatcher(reg, loggertest.New(t), observability.New("handover-test"))
	require.NoError(t, Register(d))

	res, err := d.Dispatch(context.Background(), "handover_to_onboarding", nil)
	require.NoError(t, err)
	require.True(t, res.OK)

	transfer, ok := res.Data.(*Transfer)
	require.True(t, ok)
	assert.Equal(t, AgentOnboarding, transfer.TransferTo)
	assert.NotEmpty(t, transfer.Message)

	res, err = d.Dispatch(context.Background(), "handover_to_applications", nil)
	require.NoError(t, err)
	transfer = res.Data.(*Transfer)
	assert.Equal(t, AgentApplications, transfer.TransferTo)
}
