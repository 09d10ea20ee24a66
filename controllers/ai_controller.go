package controllers

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"SmartTodoGo/config"
	"SmartTodoGo/models"
)

// Assistant is the AI surface the handlers need. Methods never fail: a model
// problem degrades to the operation's fallback payload.
type Assistant interface {
	SuggestTask(ctx context.Context, title, description string) models.Suggestion
	CategorizeTask(ctx context.Context, title, description string) string
	GenerateSchedule(ctx context.Context, tasks []models.Task) models.SchedulePlan
	ProductivityInsights(ctx context.Context, completed, pending int64, completionRate int) models.AIAnalysis
	SearchTasks(ctx context.Context, query string, tasks []models.Task) models.SearchMatches
}

const noPendingSummary = "No pending tasks found. Great job staying on top of your work!"

const categorizeCacheTTL = 12 * time.Hour

type AIController struct {
	store     TaskStore
	assistant Assistant
}

func NewAIController(store TaskStore, assistant Assistant) *AIController {
	return &AIController{
		store:     store,
		assistant: assistant,
	}
}

// AISuggest analyzes a task draft. Always 200 once the input validates; AI
// failures surface as the fixed fallback suggestion. The response never
// carries a priority key.
func (ac *AIController) AISuggest(c *gin.Context) {
	var req models.SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, kindBadRequest, "taskTitle is required")
		return
	}

	suggestion := ac.assistant.SuggestTask(c.Request.Context(), req.TaskTitle, req.TaskDescription)
	c.JSON(http.StatusOK, suggestion)
}

// Categorize returns one canonical category for the draft. Results are
// cached in Redis; the cache is skipped entirely when Redis is not wired.
func (ac *AIController) Categorize(c *gin.Context) {
	var req models.SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, kindBadRequest, "taskTitle is required")
		return
	}

	cacheKey := fmt.Sprintf("categorize:%s|%s", strings.ToLower(req.TaskTitle), strings.ToLower(req.TaskDescription))
	if config.RedisClient != nil {
		if cached, err := config.RedisClient.Get(c.Request.Context(), cacheKey).Result(); err == nil && cached != "" {
			c.JSON(http.StatusOK, models.CategoryResponse{Category: cached})
			return
		}
	}

	category := ac.assistant.CategorizeTask(c.Request.Context(), req.TaskTitle, req.TaskDescription)

	if config.RedisClient != nil {
		if err := config.RedisClient.Set(c.Request.Context(), cacheKey, category, categorizeCacheTTL).Err(); err != nil {
			config.Logger.Errorw("categorize cache write failed", "error", err, "key", cacheKey)
		}
	}

	c.JSON(http.StatusOK, models.CategoryResponse{Category: category})
}

// GenerateSchedule plans the pending tasks, highest priority first.
func (ac *AIController) GenerateSchedule(c *gin.Context) {
	tasks, err := ac.store.FindIncomplete(c.Request.Context())
	if err != nil {
		config.Logger.Errorw("load pending tasks failed", "error", err)
		respondError(c, http.StatusInternalServerError, kindInternal, err.Error())
		return
	}

	if len(tasks) == 0 {
		c.JSON(http.StatusOK, models.SchedulePlan{
			Schedule: []models.ScheduleSlot{},
			Summary:  noPendingSummary,
		})
		return
	}

	c.JSON(http.StatusOK, ac.assistant.GenerateSchedule(c.Request.Context(), tasks))
}

// ProductivityInsights combines completion counts with an AI coaching triple.
func (ac *AIController) ProductivityInsights(c *gin.Context) {
	completed, pending, err := ac.store.CountByCompletion(c.Request.Context())
	if err != nil {
		config.Logger.Errorw("count tasks failed", "error", err)
		respondError(c, http.StatusInternalServerError, kindInternal, err.Error())
		return
	}

	total := completed + pending
	completionRate := 0
	if total > 0 {
		completionRate = int(math.Round(float64(completed) / float64(total) * 100))
	}

	productivity := "Low"
	switch {
	case completed > pending:
		productivity = "High"
	case completed == pending:
		productivity = "Moderate"
	}

	c.JSON(http.StatusOK, models.InsightsResponse{
		CompletionRate: completionRate,
		TotalCompleted: completed,
		TotalPending:   pending,
		Productivity:   productivity,
		AIAnalysis:     ac.assistant.ProductivityInsights(c.Request.Context(), completed, pending, completionRate),
	})
}

// Search asks the model for matching titles and filters the stored tasks by
// case-insensitive substring containment in either direction.
func (ac *AIController) Search(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, kindBadRequest, "Search query is required")
		return
	}

	allTasks, err := ac.store.List(c.Request.Context())
	if err != nil {
		config.Logger.Errorw("list tasks failed", "error", err)
		respondError(c, http.StatusInternalServerError, kindInternal, err.Error())
		return
	}

	if len(allTasks) == 0 {
		c.JSON(http.StatusOK, models.SearchResponse{
			Tasks:       []models.Task{},
			Suggestions: []string{"Add some tasks first to enable smart search functionality"},
		})
		return
	}

	results := ac.assistant.SearchTasks(c.Request.Context(), req.Query, allTasks)

	matched := []models.Task{}
	for _, task := range allTasks {
		title := strings.ToLower(task.Title)
		for _, match := range results.Matches {
			m := strings.ToLower(match)
			if strings.Contains(title, m) || strings.Contains(m, title) {
				matched = append(matched, task)
				break
			}
		}
	}

	c.JSON(http.StatusOK, models.SearchResponse{
		Tasks:       matched,
		Suggestions: results.Suggestions,
	})
}
