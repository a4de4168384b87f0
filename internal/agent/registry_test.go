package agent

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/llm"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	logger := testLogger()
	return NewDefaultRegistry(llm.NewMockProvider(logger), nil, logger)
}

func TestRegistryLookupUnknownAgent(t *testing.T) {
	t.Parallel() // Enable parallel execution
	registry := newTestRegistry(t)

	_, err := registry.Lookup("coach", "motivate")
	assert.ErrorIs(t, err, ErrUnknownAgent)
	assert.Contains(t, err.Error(), "coach")
}

func TestRegistryLookupUnknownAction(t *testing.T) {
	t.Parallel()
	registry := newTestRegistry(t)

	_, err := registry.Lookup("teacher", "grade_submission")
	assert.ErrorIs(t, err, ErrUnknownAction)
	assert.NotErrorIs(t, err, ErrUnknownAgent)
}

func TestRegistryListsAllBuiltInAgents(t *testing.T) {
	t.Parallel()
	registry := newTestRegistry(t)

	assert.Equal(t,
		[]string{"evaluator", "placement", "planner", "quizgen", "scheduler", "teacher"},
		registry.AgentNames())
}

func TestRegistryInvokeDispatchesToAction(t *testing.T) {
	t.Parallel()
	registry := newTestRegistry(t)

	result, err := registry.Invoke(context.Background(), "teacher", "generate_lesson",
		map[string]any{"topic": "photosynthesis", "user_id": "user-1"})
	require.NoError(t, err)

	lesson, ok := result.(*Lesson)
	require.True(t, ok, "generate_lesson must return a *Lesson")
	assert.NotEmpty(t, lesson.Title)
	assert.NotEmpty(t, lesson.Explanation)
}

func TestRegistryDoubleRegistrationPanics(t *testing.T) {
	t.Parallel()
	registry := NewRegistry()
	noop := func(ctx context.Context, params map[string]any) (any, error) { return nil, nil }

	registry.Register("teacher", "generate_lesson", noop)
	assert.Panics(t, func() {
		registry.Register("teacher", "generate_lesson", noop)
	})
}
