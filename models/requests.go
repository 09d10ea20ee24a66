package models

// CreateTaskRequest is the body for POST /api/tasks. Fields other than the
// title are optional; enum fields are normalized before persistence.
type CreateTaskRequest struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	Priority      string   `json:"priority"`
	Category      string   `json:"category"`
	EstimatedTime string   `json:"estimatedTime"`
	Difficulty    string   `json:"difficulty"`
	Subtasks      []string `json:"subtasks"`
	Deadline      string   `json:"deadline"`
}

// SuggestRequest is shared by /ai-suggest and /categorize.
type SuggestRequest struct {
	TaskTitle       string `json:"taskTitle" binding:"required"`
	TaskDescription string `json:"taskDescription"`
}

// SearchRequest is the body for /search.
type SearchRequest struct {
	Query string `json:"query" binding:"required"`
}
