package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/llm"
)

// SchedulerAgent turns topics and a date range into a concrete calendar of
// study sessions.
type SchedulerAgent struct {
	provider llm.Provider
	logger   *slog.Logger
}

// NewSchedulerAgent creates a new SchedulerAgent.
func NewSchedulerAgent(provider llm.Provider, logger *slog.Logger) *SchedulerAgent {
	return &SchedulerAgent{
		provider: provider,
		logger:   logger.With("agent", "scheduler"),
	}
}

// ScheduleParams are the parameters for CreateSchedule. Preferences is an
// optional free-form map (preferred times of day, rest days, and so on)
// passed to the model verbatim.
type ScheduleParams struct {
	Topics      []string       `json:"topics"`
	StartDate   string         `json:"start_date"`
	EndDate     string         `json:"end_date"`
	HoursPerDay float64        `json:"hours_per_day"`
	Preferences map[string]any `json:"preferences"`
}

// CreateSchedule produces a day-by-day study schedule with timed blocks.
func (a *SchedulerAgent) CreateSchedule(ctx context.Context, params ScheduleParams) (*Schedule, error) {
	if len(params.Topics) == 0 {
		return nil, fmt.Errorf("%w: topics are required", ErrInvalidParams)
	}
	if params.HoursPerDay <= 0 {
		params.HoursPerDay = 2
	}

	var preferences string
	if len(params.Preferences) > 0 {
		raw, err := json.Marshal(params.Preferences)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
		}
		preferences = fmt.Sprintf("\nUser Preferences: %s", raw)
	}

	userPrompt := fmt.Sprintf(
		"Topics: %s\nStart Date: %s\nEnd Date: %s\nAvailable hours per day: %g%s",
		strings.Join(params.Topics, ", "), params.StartDate, params.EndDate,
		params.HoursPerDay, preferences)

	var schedule Schedule
	if err := completeJSON(ctx, a.provider, scheduleSystemPrompt, userPrompt, 3000, &schedule); err != nil {
		return nil, err
	}

	a.logger.DebugContext(ctx, "schedule created",
		"topics", len(params.Topics),
		"blocks", len(schedule.Schedule))
	return &schedule, nil
}

func (a *SchedulerAgent) createScheduleAction(ctx context.Context, params map[string]any) (any, error) {
	var p ScheduleParams
	if err := bindParams(params, &p); err != nil {
		return nil, err
	}
	return a.CreateSchedule(ctx, p)
}
