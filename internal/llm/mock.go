package llm

import (
	"context"
	"log/slog"
	"strings"
)

// MockProvider is a deterministic Provider used when no model credential is
// configured, and in tests. It inspects the request's system prompt to decide
// which canned reply shape to return, so every agent and the orchestrator
// keep producing schema-correct output without network access.
//
// Replies are wrapped in ```json fences on purpose: real model output
// usually is, and the fence-stripping path should stay exercised.
type MockProvider struct {
	logger *slog.Logger
}

// NewMockProvider creates a new MockProvider.
func NewMockProvider(logger *slog.Logger) *MockProvider {
	return &MockProvider{
		logger: logger.With("component", "mock_llm_provider"),
	}
}

// Complete implements the Provider interface with canned, deterministic
// replies keyed off the request's system prompt.
func (p *MockProvider) Complete(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	reply := p.cannedReply(req)
	p.logger.DebugContext(ctx, "returning mock completion",
		"system_prompt_length", len(req.System),
		"reply_length", len(reply))
	return reply, nil
}

func (p *MockProvider) cannedReply(req Request) string {
	system := req.System

	switch {
	case strings.Contains(system, "AI orchestrator"):
		return fence(`[{"agent": "teacher", "action": "generate_lesson", "params": {"topic": "study skills"}}]`)

	case strings.Contains(system, "expert teacher AI"):
		return fence(`{
  "title": "Introduction to the Topic",
  "key_concepts": ["core idea", "common pitfall"],
  "explanation": "A placeholder lesson generated without a model credential.",
  "example": "A worked example would appear here.",
  "summary": "Configure a model API key for real lessons."
}`)

	case strings.Contains(system, "expert study planner"):
		return fence(`{
  "startDate": "2025-01-06",
  "endDate": "2025-01-19",
  "weeklyGoal": "Cover one topic per day with a review block at the end of the week.",
  "blocks": [
    {"day": "Monday", "date": "2025-01-06", "topic": "Fundamentals", "duration_hours": 2, "activities": ["Review notes", "Practice problems"]}
  ]
}`)

	case strings.Contains(system, "quiz generation AI"):
		return fence(`[
  {"question": "Placeholder question?", "options": ["A", "B", "C", "D"], "correct_answer": "A", "explanation": "Placeholder explanation."}
]`)

	case strings.Contains(system, "expert exam creator"):
		return fence(`{
  "title": "Mock Exam",
  "instructions": ["Answer all questions.", "No external resources."],
  "questions": [
    {"type": "multiple-choice", "question": "Placeholder question?", "options": ["A", "B", "C", "D"], "marks": 5, "topic": "Fundamentals"}
  ]
}`)

	case strings.Contains(system, "AI evaluator"):
		return fence(`{
  "score": 80,
  "feedback": "Solid work overall; review the missed questions.",
  "questionFeedback": [
    {"question": "Placeholder question?", "submitted_answer": "A", "is_correct": true, "feedback": "Correct.", "marks_awarded": 5}
  ],
  "strengths": ["Consistent reasoning"],
  "areasForImprovement": ["Edge cases"],
  "studyRecommendations": ["Revisit the fundamentals chapter"]
}`)

	case strings.Contains(system, "interview coach"):
		return fence(`{
  "topic": "general",
  "keyConceptsToKnow": ["fundamentals"],
  "commonQuestions": [
    {"question": "Placeholder interview question?", "hints": ["Think aloud"], "approach": "Clarify, then solve.", "sampleAnswer": "A sample answer."}
  ],
  "codingProblems": [
    {"title": "Placeholder problem", "description": "Solve the placeholder.", "difficulty": "Easy", "hints": ["Start simple"], "solution": "A solution sketch."}
  ],
  "tipsAndTricks": ["Practice on a whiteboard"],
  "recommendedResources": ["A standard textbook"]
}`)

	case strings.Contains(system, "career counselor"):
		return fence(`{
  "phases": [
    {"phase": "Phase 1: Fundamentals", "duration_weeks": 4, "topics": ["Data structures"], "goals": ["Fluency with the basics"], "practiceProblems": 50, "milestones": ["First mock interview"]}
  ],
  "weeklySchedule": {"dataStructures": 10, "algorithms": 10, "systemDesign": 5, "behavioralPrep": 3, "mockInterviews": 2},
  "resources": [{"type": "Course", "name": "A placeholder course", "priority": "High"}],
  "estimatedTotalHours": 200
}`)

	case strings.Contains(system, "expert study scheduler"):
		return fence(`{
  "schedule": [
    {"date": "2025-01-06", "startTime": "18:00", "endTime": "20:00", "topic": "Fundamentals", "activity": "Read and take notes", "duration_minutes": 120}
  ],
  "totalHours": 2,
  "weeklyBreakdown": {"week1": {"hours": 2, "topics": ["Fundamentals"]}}
}`)

	case strings.Contains(system, "flashcard generation AI"):
		return fence(`[
  {"front": "Placeholder front", "back": "Placeholder back"}
]`)

	default:
		return fence(`{}`)
	}
}

func fence(body string) string {
	return "```json\n" + body + "\n```"
}
