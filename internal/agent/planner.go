package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/llm"
)

// PlannerAgent produces dated study plans leading up to an exam.
type PlannerAgent struct {
	provider llm.Provider
	logger   *slog.Logger
}

// NewPlannerAgent creates a new PlannerAgent.
func NewPlannerAgent(provider llm.Provider, logger *slog.Logger) *PlannerAgent {
	return &PlannerAgent{
		provider: provider,
		logger:   logger.With("agent", "planner"),
	}
}

// PlanParams are the parameters for GeneratePlan. Topics may be empty when
// the exam type alone describes the scope.
type PlanParams struct {
	Topics      []string `json:"topics"`
	ExamType    string   `json:"exam_type"`
	ExamDate    string   `json:"exam_date"`
	HoursPerDay float64  `json:"hours_per_day"`
}

// GeneratePlan creates a structured study plan from the topics, exam type,
// exam date and available daily study time.
func (a *PlannerAgent) GeneratePlan(ctx context.Context, params PlanParams) (*StudyPlan, error) {
	if params.ExamType == "" && len(params.Topics) == 0 {
		return nil, fmt.Errorf("%w: either exam_type or topics is required", ErrInvalidParams)
	}
	if params.HoursPerDay <= 0 {
		params.HoursPerDay = 2
	}

	userPrompt := fmt.Sprintf(
		"Topics: %s\nExam Type: %s\nExam Date: %s\nAvailable study time: %g hours per day",
		strings.Join(params.Topics, ", "), params.ExamType, params.ExamDate, params.HoursPerDay)

	var plan StudyPlan
	if err := completeJSON(ctx, a.provider, planSystemPrompt, userPrompt, 2000, &plan); err != nil {
		return nil, err
	}

	a.logger.DebugContext(ctx, "study plan generated",
		"exam_type", params.ExamType,
		"blocks", len(plan.Blocks))
	return &plan, nil
}

func (a *PlannerAgent) generatePlanAction(ctx context.Context, params map[string]any) (any, error) {
	var p PlanParams
	if err := bindParams(params, &p); err != nil {
		return nil, err
	}
	return a.GeneratePlan(ctx, p)
}
