// Package handovertools exposes the persona-transfer tools. The tools carry
// no state themselves; the result is a directive the conversation layer acts
// on by swapping the active agent persona.
package handovertools

import (
	"context"
	"encoding/json"

	"hr-voice-tools/internal/dispatch"
)

const (
	AgentApplications = "applications"
	AgentOnboarding   = "onboarding"
)

// Transfer tells the conversation layer which persona takes over and what to
// say while the swap happens.
type Transfer struct {
	TransferTo string `json:"transfer_to"`
	Message    string `json:"message"`
}

func Register(d *dispatch.Dispatcher) error {
	targets := map[string]string{
		"handover_to_onboarding":   AgentOnboarding,
		"handover_to_applications": AgentApplications,
	}
	for name, target := range targets {
		if err := d.Bind(name, transfer(target)); err != nil {
			return err
		}
	}
	return nil
}

func transfer(target string) dispatch.Handler {
	return func(_ context.Context, _ json.RawMessage) (interface{}, error) {
		return &Transfer{TransferTo: target, Message: "wait for a moment"}, nil
	}
}
