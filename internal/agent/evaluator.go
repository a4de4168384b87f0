package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/llm"
)

// EvaluatorAgent grades submissions against their original questions.
type EvaluatorAgent struct {
	provider llm.Provider
	logger   *slog.Logger
}

// NewEvaluatorAgent creates a new EvaluatorAgent.
func NewEvaluatorAgent(provider llm.Provider, logger *slog.Logger) *EvaluatorAgent {
	return &EvaluatorAgent{
		provider: provider,
		logger:   logger.With("agent", "evaluator"),
	}
}

// GradeParams are the parameters for GradeSubmission. Questions and Answers
// are kept loosely typed: submissions mix multiple-choice and free-text
// shapes and the model sees them verbatim.
type GradeParams struct {
	Questions []map[string]any `json:"questions"`
	Answers   []map[string]any `json:"answers"`
}

// GradeSubmission grades the answers against the questions and returns a
// structured report with a 0-100 score and per-question feedback.
func (a *EvaluatorAgent) GradeSubmission(ctx context.Context, params GradeParams) (*Evaluation, error) {
	if len(params.Questions) == 0 {
		return nil, fmt.Errorf("%w: questions are required", ErrInvalidParams)
	}
	if len(params.Answers) == 0 {
		return nil, fmt.Errorf("%w: answers are required", ErrInvalidParams)
	}

	questionsJSON, err := json.Marshal(params.Questions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	answersJSON, err := json.Marshal(params.Answers)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}

	userPrompt := fmt.Sprintf(
		"Questions:\n%s\n\nStudent's Answers:\n%s",
		questionsJSON, answersJSON)

	var evaluation Evaluation
	if err := completeJSON(ctx, a.provider, gradeSystemPrompt, userPrompt, 3000, &evaluation); err != nil {
		return nil, err
	}
	if evaluation.Score < 0 || evaluation.Score > 100 {
		return nil, fmt.Errorf("%w: score %g out of range", ErrMalformedOutput, evaluation.Score)
	}

	a.logger.DebugContext(ctx, "submission graded",
		"answers", len(params.Answers),
		"score", evaluation.Score)
	return &evaluation, nil
}

func (a *EvaluatorAgent) gradeSubmissionAction(ctx context.Context, params map[string]any) (any, error) {
	var p GradeParams
	if err := bindParams(params, &p); err != nil {
		return nil, err
	}
	return a.GradeSubmission(ctx, p)
}
