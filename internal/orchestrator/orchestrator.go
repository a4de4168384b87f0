// Package orchestrator turns a free-text study goal into an ordered plan of
// agent invocations and executes it step by step, streaming progress as
// events.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/agent"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/events"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/llm"
)

// DefaultEventBuffer is the capacity of the event channel returned by Run.
// A small buffer lets the run progress while a slow consumer drains events,
// without unbounded memory growth.
const DefaultEventBuffer = 16

// PlanStep is one entry in a decomposed task plan: which agent to invoke,
// which of its actions, and with what parameters.
type PlanStep struct {
	Agent  string         `json:"agent"`
	Action string         `json:"action"`
	Params map[string]any `json:"params"`
}

// Orchestrator coordinates the agent capability set to achieve a user's
// goal. It holds no per-run state; concurrent Run calls for different goals
// are independent.
type Orchestrator struct {
	provider llm.Provider
	registry *agent.Registry
	logger   *slog.Logger
	buffer   int
}

// New creates an Orchestrator that plans with the given provider and
// dispatches steps against the given registry.
func New(provider llm.Provider, registry *agent.Registry, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		provider: provider,
		registry: registry,
		logger:   logger.With("component", "orchestrator"),
		buffer:   DefaultEventBuffer,
	}
}

// Run decomposes the goal into a plan and executes it, emitting events on
// the returned channel in strict execution order. The channel is closed when
// the run terminates; a done event is always the last event unless the
// context is cancelled first. ownerID identifies the caller and is injected
// into every step's parameters so owner-scoped agents stay isolated to the
// caller's data.
func (o *Orchestrator) Run(ctx context.Context, ownerID, goal string) <-chan events.AgentEvent {
	ch := make(chan events.AgentEvent, o.buffer)

	go func() {
		defer close(ch)
		o.run(ctx, ch, ownerID, goal)
	}()

	return ch
}

func (o *Orchestrator) run(ctx context.Context, ch chan<- events.AgentEvent, ownerID, goal string) {
	// emit delivers one event, or reports cancellation. After cancellation
	// nothing further is sent, including the done event.
	emit := func(ev events.AgentEvent) bool {
		select {
		case ch <- ev:
			return true
		case <-ctx.Done():
			return false
		}
	}

	if !emit(events.NewThought("Interpreting your goal...")) {
		return
	}

	plan, err := o.decomposeGoal(ctx, goal)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		o.logger.WarnContext(ctx, "plan decomposition failed",
			"owner_id", ownerID,
			"error", err)
		emit(events.NewError(fmt.Sprintf("Sorry, I couldn't create a plan. Error: %v", err)))
		emit(events.NewDone("Run terminated."))
		return
	}

	if !emit(events.NewPlan(plan)) {
		return
	}

	for i, step := range plan {
		if ctx.Err() != nil {
			return
		}

		action, err := o.registry.Lookup(step.Agent, step.Action)
		if err != nil {
			// Unknown capabilities are soft errors: report and move on.
			if errors.Is(err, agent.ErrUnknownAgent) {
				if !emit(events.NewError(fmt.Sprintf("Unknown agent: %s", step.Agent))) {
					return
				}
				continue
			}
			if !emit(events.NewError(fmt.Sprintf("Unknown action: %s", step.Action))) {
				return
			}
			continue
		}

		params := withOwner(step.Params, ownerID)

		if !emit(events.NewThought(fmt.Sprintf(
			"Step %d: Executing %s.%s", i+1, step.Agent, step.Action))) {
			return
		}

		result, err := action(ctx, params)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			o.logger.WarnContext(ctx, "plan step failed",
				"owner_id", ownerID,
				"step", i+1,
				"agent", step.Agent,
				"action", step.Action,
				"error", err)
			// First hard failure aborts the remaining steps.
			emit(events.NewError(fmt.Sprintf(
				"Error in step %d (%s.%s): %v", i+1, step.Agent, step.Action, err)))
			break
		}

		if !emit(events.NewResult(i+1, result)) {
			return
		}
	}

	emit(events.NewDone("All tasks completed!"))
}

// decomposeGoal asks the model to break the goal into an ordered plan of
// registered capabilities.
func (o *Orchestrator) decomposeGoal(ctx context.Context, goal string) ([]PlanStep, error) {
	reply, err := o.provider.Complete(ctx, llm.Request{
		System:    planDecompositionPrompt,
		User:      goal,
		MaxTokens: 500,
	})
	if err != nil {
		return nil, err
	}

	var plan []PlanStep
	if err := json.Unmarshal([]byte(llm.ExtractJSON(reply)), &plan); err != nil {
		return nil, fmt.Errorf("decoding plan: %w", err)
	}
	if len(plan) == 0 {
		return nil, errors.New("empty plan")
	}
	return plan, nil
}

// withOwner returns a copy of params with the caller identity injected under
// "user_id" when the plan did not set one. The original map is not mutated.
func withOwner(params map[string]any, ownerID string) map[string]any {
	out := make(map[string]any, len(params)+1)
	for k, v := range params {
		out[k] = v
	}
	if _, ok := out["user_id"]; !ok && ownerID != "" {
		out["user_id"] = ownerID
	}
	return out
}
