// Package agent implements the stateless task executors the orchestrator
// dispatches to: teacher, planner, quiz generator, evaluator, placement and
// scheduler. Each action formats a fixed instruction prompt with its
// parameters and any retrieved grounding context, calls the text-completion
// provider, and decodes the reply into a typed schema.
//
// Actions are exposed through an explicit Registry keyed by
// (agent name, action name); the orchestrator resolves plan steps against it
// and treats unregistered pairs as soft errors.
package agent
