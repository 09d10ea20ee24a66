package models

// Suggestion is the AI task-analysis payload. It deliberately has no
// priority field: users set priority themselves.
type Suggestion struct {
	Suggestion    string   `json:"suggestion"`
	EstimatedTime string   `json:"estimatedTime"`
	Category      string   `json:"category"`
	Subtasks      []string `json:"subtasks"`
	Deadline      string   `json:"deadline"`
	Difficulty    string   `json:"difficulty"`
}

// CategoryResponse is the /categorize payload.
type CategoryResponse struct {
	Category string `json:"category"`
}

// ScheduleSlot is one entry of a generated daily schedule.
type ScheduleSlot struct {
	Time     string `json:"time"`
	Task     string `json:"task"`
	Duration string `json:"duration"`
	Reason   string `json:"reason"`
}

// SchedulePlan is the /generate-schedule payload.
type SchedulePlan struct {
	Schedule []ScheduleSlot `json:"schedule"`
	Summary  string         `json:"summary"`
}

// AIAnalysis is the coaching triple attached to productivity insights.
type AIAnalysis struct {
	Analysis   string `json:"analysis"`
	Advice     string `json:"advice"`
	Motivation string `json:"motivation"`
}

// InsightsResponse is the /productivity-insights payload.
type InsightsResponse struct {
	CompletionRate int        `json:"completionRate"`
	TotalCompleted int64      `json:"totalCompleted"`
	TotalPending   int64      `json:"totalPending"`
	Productivity   string     `json:"productivity"`
	AIAnalysis     AIAnalysis `json:"aiAnalysis"`
}

// SearchMatches is what the model returns for /search before local filtering.
type SearchMatches struct {
	Matches     []string `json:"matches"`
	Suggestions []string `json:"suggestions"`
}

// SearchResponse is the /search payload.
type SearchResponse struct {
	Tasks       []Task   `json:"tasks"`
	Suggestions []string `json:"suggestions"`
}

// DeleteResponse acknowledges a successful delete.
type DeleteResponse struct {
	Message string `json:"message"`
}

// ErrorBody is the canonical error envelope used by every non-2xx response.
type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}
