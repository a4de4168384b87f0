package agent

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/llm"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/retrieval"
)

// Action executes one capability with loosely-typed parameters, as they
// arrive from a decoded plan step or an API request body. Implementations
// bind params to a typed struct before doing any work.
type Action func(ctx context.Context, params map[string]any) (any, error)

type actionKey struct {
	agent  string
	action string
}

// Registry maps (agent name, action name) pairs to their Action. All
// capabilities are registered explicitly at startup; there is no reflective
// dispatch, so the set of invokable actions is exactly the set registered
// here.
type Registry struct {
	actions map[actionKey]Action
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{actions: make(map[actionKey]Action)}
}

// Register adds an action under the given agent and action names. Registering
// the same pair twice panics; that is a wiring bug, not a runtime condition.
func (r *Registry) Register(agentName, actionName string, action Action) {
	key := actionKey{agent: agentName, action: actionName}
	if _, exists := r.actions[key]; exists {
		panic(fmt.Sprintf("agent action registered twice: %s.%s", agentName, actionName))
	}
	r.actions[key] = action
}

// HasAgent reports whether any action is registered under agentName.
func (r *Registry) HasAgent(agentName string) bool {
	for key := range r.actions {
		if key.agent == agentName {
			return true
		}
	}
	return false
}

// Lookup resolves an (agent, action) pair. It returns ErrUnknownAgent when
// no action is registered under agentName at all, and ErrUnknownAction when
// the agent exists but does not provide actionName.
func (r *Registry) Lookup(agentName, actionName string) (Action, error) {
	if action, ok := r.actions[actionKey{agent: agentName, action: actionName}]; ok {
		return action, nil
	}
	if r.HasAgent(agentName) {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownAction, agentName, actionName)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownAgent, agentName)
}

// Invoke resolves and executes an action in one call.
func (r *Registry) Invoke(ctx context.Context, agentName, actionName string, params map[string]any) (any, error) {
	action, err := r.Lookup(agentName, actionName)
	if err != nil {
		return nil, err
	}
	return action(ctx, params)
}

// AgentNames returns the sorted distinct agent names with at least one
// registered action. The orchestrator embeds this list in its planning
// prompt.
func (r *Registry) AgentNames() []string {
	seen := make(map[string]struct{})
	for key := range r.actions {
		seen[key.agent] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewDefaultRegistry constructs all built-in agents against the given
// provider and retriever and registers every capability the platform
// exposes.
func NewDefaultRegistry(provider llm.Provider, retriever retrieval.Retriever, logger *slog.Logger) *Registry {
	registry := NewRegistry()

	teacher := NewTeacherAgent(provider, retriever, logger)
	registry.Register("teacher", "generate_lesson", teacher.generateLessonAction)

	planner := NewPlannerAgent(provider, logger)
	registry.Register("planner", "generate_plan", planner.generatePlanAction)

	quizgen := NewQuizGenAgent(provider, retriever, logger)
	registry.Register("quizgen", "generate_questions", quizgen.generateQuestionsAction)
	registry.Register("quizgen", "generate_mock_exam", quizgen.generateMockExamAction)

	evaluator := NewEvaluatorAgent(provider, logger)
	registry.Register("evaluator", "grade_submission", evaluator.gradeSubmissionAction)

	placement := NewPlacementAgent(provider, logger)
	registry.Register("placement", "generate_interview_prep", placement.generateInterviewPrepAction)
	registry.Register("placement", "create_study_roadmap", placement.createStudyRoadmapAction)

	scheduler := NewSchedulerAgent(provider, logger)
	registry.Register("scheduler", "create_schedule", scheduler.createScheduleAction)

	return registry
}
