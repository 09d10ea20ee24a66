package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"SmartTodoGo/config"
	"SmartTodoGo/models"
	"SmartTodoGo/services"
)

// TaskStore is the document-store surface the handlers need. Unknown
// identifiers are reported as mongo.ErrNoDocuments.
type TaskStore interface {
	List(ctx context.Context) ([]models.Task, error)
	Get(ctx context.Context, id string) (models.Task, error)
	Insert(ctx context.Context, task *models.Task) error
	Update(ctx context.Context, id string, fields map[string]interface{}) (models.Task, error)
	Delete(ctx context.Context, id string) error
	FindIncomplete(ctx context.Context) ([]models.Task, error)
	CountByCompletion(ctx context.Context) (completed, pending int64, err error)
}

type TaskController struct {
	store TaskStore
}

func NewTaskController(store TaskStore) *TaskController {
	return &TaskController{
		store: store,
	}
}

func (tc *TaskController) GetTasks(c *gin.Context) {
	tasks, err := tc.store.List(c.Request.Context())
	if err != nil {
		config.Logger.Errorw("list tasks failed", "error", err)
		respondError(c, http.StatusInternalServerError, kindInternal, err.Error())
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (tc *TaskController) GetTask(c *gin.Context) {
	task, err := tc.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respondError(c, http.StatusNotFound, kindNotFound, "Task not found")
			return
		}
		config.Logger.Errorw("get task failed", "error", err, "id", c.Param("id"))
		respondError(c, http.StatusInternalServerError, kindInternal, err.Error())
		return
	}
	c.JSON(http.StatusOK, task)
}

// CreateTask persists a new task. Enum fields are coerced onto their closed
// sets before the document is written; the title is the only required field.
func (tc *TaskController) CreateTask(c *gin.Context) {
	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, kindBadRequest, "Invalid request: "+err.Error())
		return
	}

	task := models.Task{
		Title:         req.Title,
		Description:   req.Description,
		Priority:      services.NormalizePriority(req.Priority),
		Category:      services.NormalizeCategory(req.Category),
		EstimatedTime: req.EstimatedTime,
		Difficulty:    services.NormalizeDifficulty(req.Difficulty),
		Subtasks:      req.Subtasks,
		Deadline:      req.Deadline,
		Completed:     false,
	}

	if err := tc.store.Insert(c.Request.Context(), &task); err != nil {
		config.Logger.Errorw("insert task failed", "error", err, "title", req.Title)
		respondError(c, http.StatusInternalServerError, kindInternal, err.Error())
		return
	}

	config.Logger.Infow("task created", "id", task.ID, "category", task.Category)
	c.JSON(http.StatusOK, task)
}

// UpdateTask merges the provided fields into the stored document. Completion
// is set to the value the client sends, never toggled server-side.
func (tc *TaskController) UpdateTask(c *gin.Context) {
	fields := map[string]interface{}{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondError(c, http.StatusBadRequest, kindBadRequest, "Invalid request: "+err.Error())
		return
	}

	// Store-assigned fields are not client-writable.
	delete(fields, "id")
	delete(fields, "_id")
	delete(fields, "createdAt")
	delete(fields, "lastModified")

	if raw, ok := fields["category"]; ok {
		s, _ := raw.(string)
		fields["category"] = services.NormalizeCategory(s)
	}
	if raw, ok := fields["priority"]; ok {
		s, _ := raw.(string)
		fields["priority"] = services.NormalizePriority(s)
	}
	if raw, ok := fields["difficulty"]; ok {
		s, _ := raw.(string)
		fields["difficulty"] = services.NormalizeDifficulty(s)
	}

	task, err := tc.store.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respondError(c, http.StatusNotFound, kindNotFound, "Task not found")
			return
		}
		config.Logger.Errorw("update task failed", "error", err, "id", c.Param("id"))
		respondError(c, http.StatusInternalServerError, kindInternal, err.Error())
		return
	}
	c.JSON(http.StatusOK, task)
}

func (tc *TaskController) DeleteTask(c *gin.Context) {
	if err := tc.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respondError(c, http.StatusNotFound, kindNotFound, "Task not found")
			return
		}
		config.Logger.Errorw("delete task failed", "error", err, "id", c.Param("id"))
		respondError(c, http.StatusInternalServerError, kindInternal, err.Error())
		return
	}
	c.JSON(http.StatusOK, models.DeleteResponse{Message: "Task deleted successfully"})
}
