package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"SmartTodoGo/config"
	"SmartTodoGo/models"
)

// AssistantService runs every AI-backed operation. All methods are
// best-effort: a model failure or an unparseable response degrades to the
// operation's fallback payload, never to an error. Task management must keep
// working when the model does not.
type AssistantService struct {
	model llms.Model
}

func NewAssistantService(model llms.Model) *AssistantService {
	return &AssistantService{
		model: model,
	}
}

const allowedCategoriesStr = "Work, Personal, Health, Learning, Shopping, Finance, Home, Social, Academic, Fitness"

// ScheduleFailureSummary is returned when schedule generation degrades.
const ScheduleFailureSummary = "Unable to generate a schedule right now. Work through your tasks in priority order."

// FallbackSuggestion is the ai-suggest payload used when the model is
// unavailable or returns nothing usable.
func FallbackSuggestion() models.Suggestion {
	return models.Suggestion{
		Suggestion:    "Focus on breaking this task into smaller, manageable steps.",
		EstimatedTime: "30 mins",
		Category:      "Personal",
		Subtasks:      []string{"Plan the approach", "Execute the task", "Review completion"},
		Deadline:      "3 days",
		Difficulty:    "medium",
	}
}

// FallbackAnalysis is the insights triple used when the model is unavailable.
func FallbackAnalysis() models.AIAnalysis {
	return models.AIAnalysis{
		Analysis:   "Unable to generate detailed analysis at the moment.",
		Advice:     "Focus on completing one task at a time.",
		Motivation: "Keep going - progress is progress!",
	}
}

// complete sends one system+user exchange and returns the raw response text.
func (s *AssistantService) complete(ctx context.Context, system, user string) (string, error) {
	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(system)},
		},
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(user)},
		},
	}

	response, err := s.model.GenerateContent(ctx, messages,
		llms.WithTemperature(0),
		llms.WithMaxTokens(5000),
	)
	if err != nil {
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}
	return response.Choices[0].Content, nil
}

// askJSON is the shared shape of every JSON-producing AI call: prompt the
// model, extract an object of type T, run the caller's validation, and fall
// back on any failure along the way.
func askJSON[T any](ctx context.Context, s *AssistantService, system, user string, fallback T, validate func(*T)) T {
	content, err := s.complete(ctx, system, user)
	if err != nil {
		config.Logger.Errorw("model call failed", "error", err)
		return fallback
	}

	result := ExtractJSON(content, fallback)
	if validate != nil {
		validate(&result)
	}
	return result
}

// SuggestTask analyzes a task draft. The response never carries a priority;
// users set that themselves.
func (s *AssistantService) SuggestTask(ctx context.Context, title, description string) models.Suggestion {
	if description == "" {
		description = "No description"
	}

	prompt := fmt.Sprintf(`Analyze this task and provide comprehensive insights:
Task Title: %s
Task Description: %s

IMPORTANT: Use only these exact categories: %s
IMPORTANT: Use only these exact difficulties: easy, medium, hard
NOTE: Do NOT suggest priority - the user will set this themselves

Return strictly in JSON format:
{
  "suggestion": "Brief helpful suggestion for completing this task",
  "estimatedTime": "30 mins",
  "category": "one of the allowed categories exactly as listed",
  "subtasks": ["subtask 1", "subtask 2"],
  "deadline": "suggested deadline in days from now",
  "difficulty": "easy/medium/hard"
}`, title, description, allowedCategoriesStr)

	system := "You are an AI productivity assistant. Do not suggest priority levels as users will set these themselves."

	return askJSON(ctx, s, system, prompt, FallbackSuggestion(), func(sg *models.Suggestion) {
		sg.Category = NormalizeCategory(sg.Category)
		sg.Difficulty = NormalizeDifficulty(sg.Difficulty)
		if sg.Subtasks == nil {
			sg.Subtasks = []string{}
		}
	})
}

// CategorizeTask maps a task draft onto one canonical category.
func (s *AssistantService) CategorizeTask(ctx context.Context, title, description string) string {
	prompt := fmt.Sprintf(`Categorize this task into one of these EXACT categories: %s

Task: %s
Description: %s

Return only the category name exactly as listed above.`, allowedCategoriesStr, title, description)

	system := "You are a task categorization expert. Use only the exact category names provided."

	content, err := s.complete(ctx, system, prompt)
	if err != nil {
		config.Logger.Errorw("categorization failed", "error", err)
		return models.DefaultCategory
	}
	return NormalizeCategory(strings.TrimSpace(content))
}

// GenerateSchedule plans the given pending tasks across a working day.
func (s *AssistantService) GenerateSchedule(ctx context.Context, tasks []models.Task) models.SchedulePlan {
	var list strings.Builder
	for _, task := range tasks {
		priority := task.Priority
		if priority == "" {
			priority = models.DefaultPriority
		}
		estimated := task.EstimatedTime
		if estimated == "" {
			estimated = "unknown"
		}
		fmt.Fprintf(&list, "%s (Priority: %s, Est: %s)\n", task.Title, priority, estimated)
	}

	prompt := fmt.Sprintf(`Create an optimized daily schedule for these tasks:

%s
Consider:
- Task priorities
- Estimated time
- Typical work hours (9 AM - 6 PM)
- Break times
- Energy levels throughout the day

Return as JSON:
{
  "schedule": [
    {
      "time": "9:00 AM",
      "task": "Task name",
      "duration": "30 mins",
      "reason": "Why this time slot"
    }
  ],
  "summary": "Overall scheduling strategy"
}`, list.String())

	fallback := models.SchedulePlan{
		Schedule: []models.ScheduleSlot{},
		Summary:  ScheduleFailureSummary,
	}

	return askJSON(ctx, s, "You are a productivity scheduling expert.", prompt, fallback, func(plan *models.SchedulePlan) {
		if plan.Schedule == nil {
			plan.Schedule = []models.ScheduleSlot{}
		}
	})
}

// ProductivityInsights turns completion counts into an analysis triple.
// Fields the model leaves blank are backfilled so the client always gets a
// complete triple.
func (s *AssistantService) ProductivityInsights(ctx context.Context, completed, pending int64, completionRate int) models.AIAnalysis {
	prompt := fmt.Sprintf(`Analyze this productivity data and provide insights:

Completed Tasks: %d
Pending Tasks: %d
Completion Rate: %d%%

IMPORTANT: Return ONLY valid JSON with no extra text. Use this exact structure:
{
  "analysis": "Brief analysis of current productivity level",
  "advice": "Specific actionable advice to improve productivity",
  "motivation": "Encouraging and motivational message"
}`, completed, pending, completionRate)

	system := "You are a productivity coach. Return only valid JSON with proper double quotes around all strings."

	return askJSON(ctx, s, system, prompt, FallbackAnalysis(), func(a *models.AIAnalysis) {
		if a.Analysis == "" {
			a.Analysis = "Your current productivity shows room for improvement."
		}
		if a.Advice == "" {
			a.Advice = "Try breaking large tasks into smaller, manageable chunks."
		}
		if a.Motivation == "" {
			a.Motivation = "Every completed task is progress toward your goals!"
		}
	})
}

// SearchTasks asks the model which task titles match the query. The caller
// filters the real task list against the returned titles.
func (s *AssistantService) SearchTasks(ctx context.Context, query string, tasks []models.Task) models.SearchMatches {
	var list strings.Builder
	for _, task := range tasks {
		fmt.Fprintf(&list, "%s: %s\n", task.Title, task.Description)
	}

	prompt := fmt.Sprintf(`Based on this search query: "%s"

Find relevant tasks from this list:
%s
Return matching task titles as JSON array:
{
  "matches": ["task title 1", "task title 2"],
  "suggestions": ["suggestion 1", "suggestion 2"]
}`, query, list.String())

	fallback := models.SearchMatches{
		Matches:     []string{},
		Suggestions: []string{},
	}

	return askJSON(ctx, s, "You are a smart search assistant.", prompt, fallback, func(m *models.SearchMatches) {
		if m.Matches == nil {
			m.Matches = []string{}
		}
		if m.Suggestions == nil {
			m.Suggestions = []string{}
		}
	})
}
