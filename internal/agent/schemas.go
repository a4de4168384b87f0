package agent

// Output schemas for every agent action. JSON tags match the shapes the
// instruction prompts demand from the model, so a schema-correct reply
// decodes without any translation layer.

// Lesson is a micro-lesson produced by the teacher agent.
type Lesson struct {
	Title       string   `json:"title"`
	KeyConcepts []string `json:"key_concepts"`
	Explanation string   `json:"explanation"`
	Example     string   `json:"example"`
	Summary     string   `json:"summary"`
}

// StudyPlan is a dated sequence of study blocks produced by the planner.
type StudyPlan struct {
	StartDate  string       `json:"startDate"`
	EndDate    string       `json:"endDate"`
	WeeklyGoal string       `json:"weeklyGoal"`
	Blocks     []StudyBlock `json:"blocks"`
}

// StudyBlock is one scheduled slot within a StudyPlan.
type StudyBlock struct {
	Day           string   `json:"day"`
	Date          string   `json:"date"`
	Topic         string   `json:"topic"`
	DurationHours float64  `json:"duration_hours"`
	Activities    []string `json:"activities"`
}

// Question is one multiple-choice practice question.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// MockExam is a full timed exam assembled across several topics.
type MockExam struct {
	Title        string         `json:"title"`
	Instructions []string       `json:"instructions"`
	Questions    []ExamQuestion `json:"questions"`
}

// ExamQuestion is one question within a MockExam. Options is empty for
// non-multiple-choice types.
type ExamQuestion struct {
	Type     string   `json:"type"`
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
	Marks    float64  `json:"marks"`
	Topic    string   `json:"topic"`
}

// Evaluation is the evaluator's graded report for a submission.
type Evaluation struct {
	Score                float64            `json:"score"`
	Feedback             string             `json:"feedback"`
	QuestionFeedback     []QuestionFeedback `json:"questionFeedback"`
	Strengths            []string           `json:"strengths"`
	AreasForImprovement  []string           `json:"areasForImprovement"`
	StudyRecommendations []string           `json:"studyRecommendations"`
}

// QuestionFeedback grades one answer within an Evaluation.
type QuestionFeedback struct {
	Question        string  `json:"question"`
	SubmittedAnswer string  `json:"submitted_answer"`
	IsCorrect       bool    `json:"is_correct"`
	Feedback        string  `json:"feedback"`
	MarksAwarded    float64 `json:"marks_awarded"`
}

// InterviewPrep is the placement agent's preparation kit for one topic.
type InterviewPrep struct {
	Topic                string              `json:"topic"`
	KeyConceptsToKnow    []string            `json:"keyConceptsToKnow"`
	CommonQuestions      []InterviewQuestion `json:"commonQuestions"`
	CodingProblems       []CodingProblem     `json:"codingProblems"`
	TipsAndTricks        []string            `json:"tipsAndTricks"`
	RecommendedResources []string            `json:"recommendedResources"`
}

// InterviewQuestion is a behavioral or conceptual interview question.
type InterviewQuestion struct {
	Question     string   `json:"question"`
	Hints        []string `json:"hints"`
	Approach     string   `json:"approach"`
	SampleAnswer string   `json:"sampleAnswer"`
}

// CodingProblem is a practice problem with a worked solution.
type CodingProblem struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Difficulty  string   `json:"difficulty"`
	Hints       []string `json:"hints"`
	Solution    string   `json:"solution"`
}

// Roadmap is a phased preparation plan toward a target role.
type Roadmap struct {
	Phases              []RoadmapPhase    `json:"phases"`
	WeeklySchedule      map[string]int    `json:"weeklySchedule"`
	Resources           []RoadmapResource `json:"resources"`
	EstimatedTotalHours float64           `json:"estimatedTotalHours"`
}

// RoadmapPhase is one multi-week stage of a Roadmap.
type RoadmapPhase struct {
	Phase            string   `json:"phase"`
	DurationWeeks    int      `json:"duration_weeks"`
	Topics           []string `json:"topics"`
	Goals            []string `json:"goals"`
	PracticeProblems int      `json:"practiceProblems"`
	Milestones       []string `json:"milestones"`
}

// RoadmapResource is a recommended book, course, or platform.
type RoadmapResource struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	Priority string `json:"priority"`
}

// Schedule is a concrete calendar of study sessions.
type Schedule struct {
	Schedule        []ScheduleBlock        `json:"schedule"`
	TotalHours      float64                `json:"totalHours"`
	WeeklyBreakdown map[string]WeekSummary `json:"weeklyBreakdown"`
}

// ScheduleBlock is one timed session within a Schedule.
type ScheduleBlock struct {
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Topic           string `json:"topic"`
	Activity        string `json:"activity"`
	DurationMinutes int    `json:"duration_minutes"`
}

// WeekSummary aggregates one week of a Schedule.
type WeekSummary struct {
	Hours  float64  `json:"hours"`
	Topics []string `json:"topics"`
}
