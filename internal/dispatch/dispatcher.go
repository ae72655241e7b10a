// Package dispatch routes tool invocations to their handlers. The registry
// file declares every tool and its input schema; a handler can only be bound
// to a declared name, and arguments are validated against the schema before
// the handler runs. Handler errors come back as structured results, never as
// transport-level failures, so the conversation layer can narrate them.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"hr-voice-tools/internal/common/errors"
	"hr-voice-tools/internal/common/logger"
	"hr-voice-tools/internal/common/metrics"
	"hr-voice-tools/internal/common/observability"
	"hr-voice-tools/pkg/registry"
)

// Handler executes one tool against already-validated JSON arguments.
type Handler func(ctx context.Context, args json.RawMessage) (interface{}, error)

// Result is the envelope every invocation returns. Exactly one of Data and
// Error is set.
type Result struct {
	Tool  string                `json:"tool"`
	OK    bool                  `json:"ok"`
	Data  interface{}           `json:"data,omitempty"`
	Error *errors.StandardError `json:"error,omitempty"`
}

type binding struct {
	tool    *registry.Tool
	schema  *gojsonschema.Schema
	handler Handler
}

type Dispatcher struct {
	registry *registry.ToolRegistry
	bindings map[string]binding
	logger   logger.Logger
	obs      *observability.Observability
}

func NewDispatcher(reg *registry.ToolRegistry, log logger.Logger, obs *observability.Observability) *Dispatcher {
	return &Dispatcher{
		registry: reg,
		bindings: make(map[string]binding),
		logger:   log.WithFields(map[string]interface{}{"component": "dispatch"}),
		obs:      obs,
	}
}

// Bind attaches a handler to a tool name declared in the registry. The input
// schema is compiled once here; a registry entry with a broken schema fails
// at startup rather than on first call.
func (d *Dispatcher) Bind(name string, handler Handler) error {
	tool := d.registry.Find(name)
	if tool == nil {
		return fmt.Errorf("tool %q is not declared in the registry", name)
	}
	if _, dup := d.bindings[name]; dup {
		return fmt.Errorf("tool %q is already bound", name)
	}

	var schema *gojsonschema.Schema
	if tool.InputSchema != nil {
		compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(tool.InputSchema))
		if err != nil {
			return fmt.Errorf("compile input schema for %q: %w", name, err)
		}
		schema = compiled
	}

	d.bindings[name] = binding{tool: tool, schema: schema, handler: handler}
	return nil
}

// Unbound returns registry tool names that have no handler yet. The server
// refuses to start while this is non-empty.
func (d *Dispatcher) Unbound() []string {
	var missing []string
	for _, tool := range d.registry.Tools {
		if _, ok := d.bindings[tool.Name]; !ok {
			missing = append(missing, tool.Name)
		}
	}
	return missing
}

// Tools lists the declared tools for discovery.
func (d *Dispatcher) Tools() []registry.Tool {
	return d.registry.Tools
}

// Dispatch validates and executes one invocation. The returned Result always
// has OK or Error set; the error return is reserved for context cancellation.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args json.RawMessage) (*Result, error) {
	start := time.Now()
	metrics.ToolInvocations.WithLabelValues(name).Inc()

	b, ok := d.bindings[name]
	if !ok {
		return d.failure(ctx, name, start, errors.NewUnknownToolError(name)), nil
	}

	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	if b.schema != nil {
		validation, err := b.schema.Validate(gojsonschema.NewBytesLoader(args))
		if err != nil {
			return d.failure(ctx, name, start, errors.NewInputSchemaInvalidError(name, err.Error())), nil
		}
		if !validation.Valid() {
			details := ""
			for i, desc := range validation.Errors() {
				if i > 0 {
					details += "; "
				}
				details += desc.String()
			}
			return d.failure(ctx, name, start, errors.NewInputSchemaInvalidError(name, details)), nil
		}
	}

	data, err := b.handler(ctx, args)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		stdErr, ok := err.(*errors.StandardError)
		if !ok {
			stdErr = &errors.StandardError{
				Code:      errors.ErrCodeStoreReadFailed,
				Message:   "Tool execution failed",
				Details:   err.Error(),
				Retryable: true,
				Timestamp: time.Now().UTC(),
			}
		}
		return d.failure(ctx, name, start, stdErr), nil
	}

	duration := time.Since(start)
	metrics.ToolInvocationDuration.WithLabelValues(name).Observe(duration.Seconds())
	d.obs.RecordInvocation(ctx, name, "success")
	d.obs.RecordDuration(ctx, name, duration)

	d.logger.Debug("tool dispatched", map[string]interface{}{
		"tool":       name,
		"durationMs": duration.Milliseconds(),
	})
	return &Result{Tool: name, OK: true, Data: data}, nil
}

func (d *Dispatcher) failure(ctx context.Context, name string, start time.Time, stdErr *errors.StandardError) *Result {
	duration := time.Since(start)
	metrics.ToolInvocationErrors.WithLabelValues(name, string(stdErr.Code)).Inc()
	metrics.ToolInvocationDuration.WithLabelValues(name).Observe(duration.Seconds())
	d.obs.RecordInvocation(ctx, name, "error")
	d.obs.RecordDuration(ctx, name, duration)

	d.logger.Warn("tool invocation failed", map[string]interface{}{
		"tool":      name,
		"errorCode": string(stdErr.Code),
		"details":   stdErr.Details,
	})
	return &Result{Tool: name, Error: stdErr}
}
