package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/llm"
)

// PlacementAgent produces interview preparation kits and long-horizon study
// roadmaps for placement preparation.
type PlacementAgent struct {
	provider llm.Provider
	logger   *slog.Logger
}

// NewPlacementAgent creates a new PlacementAgent.
func NewPlacementAgent(provider llm.Provider, logger *slog.Logger) *PlacementAgent {
	return &PlacementAgent{
		provider: provider,
		logger:   logger.With("agent", "placement"),
	}
}

// InterviewPrepParams are the parameters for GenerateInterviewPrep.
type InterviewPrepParams struct {
	Topic       string `json:"topic"`
	Difficulty  string `json:"difficulty"`
	CompanyType string `json:"company_type"`
}

// GenerateInterviewPrep builds interview preparation materials for the topic
// at the given difficulty and company type.
func (a *PlacementAgent) GenerateInterviewPrep(ctx context.Context, params InterviewPrepParams) (*InterviewPrep, error) {
	if params.Topic == "" {
		return nil, fmt.Errorf("%w: topic is required", ErrInvalidParams)
	}
	if params.Difficulty == "" {
		params.Difficulty = "medium"
	}
	if params.CompanyType == "" {
		params.CompanyType = "general"
	}

	userPrompt := fmt.Sprintf(
		"Topic: %s\nDifficulty Level: %s\nCompany Type: %s",
		params.Topic, params.Difficulty, params.CompanyType)

	var prep InterviewPrep
	if err := completeJSON(ctx, a.provider, interviewPrepSystemPrompt, userPrompt, 3000, &prep); err != nil {
		return nil, err
	}

	a.logger.DebugContext(ctx, "interview prep generated",
		"topic", params.Topic,
		"questions", len(prep.CommonQuestions),
		"problems", len(prep.CodingProblems))
	return &prep, nil
}

// RoadmapParams are the parameters for CreateStudyRoadmap.
type RoadmapParams struct {
	TargetRole    string   `json:"target_role"`
	CurrentSkills []string `json:"current_skills"`
	TargetDate    string   `json:"target_date"`
}

// CreateStudyRoadmap builds a phased preparation plan toward the target role
// given the student's current skills and deadline.
func (a *PlacementAgent) CreateStudyRoadmap(ctx context.Context, params RoadmapParams) (*Roadmap, error) {
	if params.TargetRole == "" {
		return nil, fmt.Errorf("%w: target_role is required", ErrInvalidParams)
	}

	userPrompt := fmt.Sprintf(
		"Target Role: %s\nCurrent Skills: %s\nTarget Date: %s",
		params.TargetRole, strings.Join(params.CurrentSkills, ", "), params.TargetDate)

	var roadmap Roadmap
	if err := completeJSON(ctx, a.provider, roadmapSystemPrompt, userPrompt, 3000, &roadmap); err != nil {
		return nil, err
	}
	if len(roadmap.Phases) == 0 {
		return nil, fmt.Errorf("%w: roadmap has no phases", ErrMalformedOutput)
	}

	a.logger.DebugContext(ctx, "study roadmap generated",
		"target_role", params.TargetRole,
		"phases", len(roadmap.Phases))
	return &roadmap, nil
}

func (a *PlacementAgent) generateInterviewPrepAction(ctx context.Context, params map[string]any) (any, error) {
	var p InterviewPrepParams
	if err := bindParams(params, &p); err != nil {
		return nil, err
	}
	return a.GenerateInterviewPrep(ctx, p)
}

func (a *PlacementAgent) createStudyRoadmapAction(ctx context.Context, params map[string]any) (any, error) {
	var p RoadmapParams
	if err := bindParams(params, &p); err != nil {
		return nil, err
	}
	return a.CreateStudyRoadmap(ctx, p)
}
