package agent

import "errors"

// Dispatch and execution errors. The orchestrator distinguishes unknown
// agent/action lookups (soft errors, the run continues) from execution
// failures (hard errors, the run stops).
var (
	// ErrUnknownAgent indicates a plan step named an agent that is not
	// registered.
	ErrUnknownAgent = errors.New("unknown agent")

	// ErrUnknownAction indicates a plan step named an action the agent does
	// not provide.
	ErrUnknownAction = errors.New("unknown action")

	// ErrInvalidParams indicates the step's parameters could not be bound to
	// the action's expected shape, or a required parameter was missing.
	ErrInvalidParams = errors.New("invalid action parameters")

	// ErrMalformedOutput indicates the model reply could not be decoded into
	// the action's output schema.
	ErrMalformedOutput = errors.New("malformed model output")
)
