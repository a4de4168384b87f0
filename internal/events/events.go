package events

// Type identifies the kind of an AgentEvent.
type Type string

// Event types emitted during an orchestration run, in the order they may
// appear: thoughts and the plan first, then interleaved thoughts, results and
// errors per step, and exactly one done event last.
const (
	// EventThought is a human-readable progress note.
	EventThought Type = "thought"

	// EventPlan carries the full resolved task plan.
	EventPlan Type = "plan"

	// EventResult carries the value returned by one executed plan step.
	EventResult Type = "result"

	// EventError reports a soft or hard failure; hard failures are followed
	// directly by the done event.
	EventError Type = "error"

	// EventDone terminates the stream. It is always the last event.
	EventDone Type = "done"
)

// AgentEvent is one entry in the ordered event stream of an orchestration
// run. Data is a small JSON-marshalable payload whose keys depend on Type.
type AgentEvent struct {
	Type Type           `json:"type"`
	Data map[string]any `json:"data"`
}

// NewThought creates a thought event with the given progress text.
func NewThought(text string) AgentEvent {
	return AgentEvent{Type: EventThought, Data: map[string]any{"text": text}}
}

// NewPlan creates a plan event carrying the resolved task plan.
func NewPlan(plan any) AgentEvent {
	return AgentEvent{Type: EventPlan, Data: map[string]any{"plan": plan}}
}

// NewResult creates a result event for the 1-based plan step with the value
// the agent returned.
func NewResult(step int, result any) AgentEvent {
	return AgentEvent{Type: EventResult, Data: map[string]any{"step": step, "result": result}}
}

// NewError creates an error event with the given description.
func NewError(text string) AgentEvent {
	return AgentEvent{Type: EventError, Data: map[string]any{"text": text}}
}

// NewDone creates the terminal event of a run.
func NewDone(text string) AgentEvent {
	return AgentEvent{Type: EventDone, Data: map[string]any{"text": text}}
}
