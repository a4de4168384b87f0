// Package events defines the ordered event stream emitted during one
// orchestration run.
//
// An orchestrator produces AgentEvent values describing its progress
// (thoughts, the resolved plan, per-step results, errors, completion) into a
// bounded channel; the caller consumes them in order and forwards them over
// whatever push channel it serves. The stream is append-only and scoped to a
// single run: channel closure signals end-of-run.
package events
