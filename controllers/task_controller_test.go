package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"SmartTodoGo/config"
	"SmartTodoGo/controllers"
	"SmartTodoGo/models"
	"SmartTodoGo/routes"
)

func TestMain(m *testing.M) {
	config.Logger = zap.NewNop().Sugar()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// fakeStore is an in-memory TaskStore. Unknown ids surface as
// mongo.ErrNoDocuments, matching the real store.
type fakeStore struct {
	tasks   []models.Task
	updates int
}

func (f *fakeStore) List(ctx context.Context) ([]models.Task, error) {
	return f.tasks, nil
}

func (f *fakeStore) Get(ctx context.Context, id string) (models.Task, error) {
	for _, t := range f.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Task{}, mongo.ErrNoDocuments
}

func (f *fakeStore) Insert(ctx context.Context, task *models.Task) error {
	task.ID = fmt.Sprintf("task-%d", len(f.tasks)+1)
	f.tasks = append(f.tasks, *task)
	return nil
}

func (f *fakeStore) Update(ctx context.Context, id string, fields map[string]interface{}) (models.Task, error) {
	for i, t := range f.tasks {
		if t.ID != id {
			continue
		}
		if v, ok := fields["title"].(string); ok {
			t.Title = v
		}
		if v, ok := fields["category"].(string); ok {
			t.Category = v
		}
		if v, ok := fields["priority"].(string); ok {
			t.Priority = v
		}
		if v, ok := fields["completed"].(bool); ok {
			t.Completed = v
		}
		f.tasks[i] = t
		f.updates++
		return t, nil
	}
	return models.Task{}, mongo.ErrNoDocuments
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeStore) FindIncomplete(ctx context.Context) ([]models.Task, error) {
	pending := []models.Task{}
	for _, t := range f.tasks {
		if !t.Completed {
			pending = append(pending, t)
		}
	}
	return pending, nil
}

func (f *fakeStore) CountByCompletion(ctx context.Context) (completed, pending int64, err error) {
	for _, t := range f.tasks {
		if t.Completed {
			completed++
		} else {
			pending++
		}
	}
	return completed, pending, nil
}

// fakeAssistant returns canned AI payloads.
type fakeAssistant struct {
	suggestion models.Suggestion
	category   string
	plan       models.SchedulePlan
	analysis   models.AIAnalysis
	matches    models.SearchMatches
}

func (f *fakeAssistant) SuggestTask(ctx context.Context, title, description string) models.Suggestion {
	return f.suggestion
}

func (f *fakeAssistant) CategorizeTask(ctx context.Context, title, description string) string {
	return f.category
}

func (f *fakeAssistant) GenerateSchedule(ctx context.Context, tasks []models.Task) models.SchedulePlan {
	return f.plan
}

func (f *fakeAssistant) ProductivityInsights(ctx context.Context, completed, pending int64, completionRate int) models.AIAnalysis {
	return f.analysis
}

func (f *fakeAssistant) SearchTasks(ctx context.Context, query string, tasks []models.Task) models.SearchMatches {
	return f.matches
}

func newRouter(store controllers.TaskStore, assistant controllers.Assistant) *gin.Engine {
	r := gin.New()
	routes.RegisterRoutes(r, store, assistant)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func errKind(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Kind
}

func TestCreateTask(t *testing.T) {
	t.Run("synonym category is normalized before persistence", func(t *testing.T) {
		store := &fakeStore{}
		r := newRouter(store, &fakeAssistant{})

		rec := doJSON(r, http.MethodPost, "/api/tasks", `{"title": "Study exam", "category": "academic"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		if assert.Len(t, store.tasks, 1) {
			assert.Equal(t, "Learning", store.tasks[0].Category)
			assert.Equal(t, "medium", store.tasks[0].Priority)
			assert.Equal(t, "medium", store.tasks[0].Difficulty)
			assert.False(t, store.tasks[0].Completed)
			assert.NotEmpty(t, store.tasks[0].ID)
		}
	})

	t.Run("missing title is rejected", func(t *testing.T) {
		store := &fakeStore{}
		r := newRouter(store, &fakeAssistant{})

		rec := doJSON(r, http.MethodPost, "/api/tasks", `{"description": "no title"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "bad_request", errKind(t, rec))
		assert.Empty(t, store.tasks)
	})
}

func TestGetTask(t *testing.T) {
	store := &fakeStore{tasks: []models.Task{{ID: "task-1", Title: "Write report", Category: "Work"}}}
	r := newRouter(store, &fakeAssistant{})

	t.Run("found", func(t *testing.T) {
		rec := doJSON(r, http.MethodGet, "/api/tasks/task-1", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var task models.Task
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &task))
		assert.Equal(t, "Write report", task.Title)
	})

	t.Run("unknown id", func(t *testing.T) {
		rec := doJSON(r, http.MethodGet, "/api/tasks/nope", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not_found", errKind(t, rec))
	})

	t.Run("list", func(t *testing.T) {
		rec := doJSON(r, http.MethodGet, "/api/tasks", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var tasks []models.Task
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
		assert.Len(t, tasks, 1)
	})
}

func TestUpdateTask(t *testing.T) {
	t.Run("unknown id leaves the store untouched", func(t *testing.T) {
		store := &fakeStore{tasks: []models.Task{{ID: "task-1", Title: "Write report"}}}
		r := newRouter(store, &fakeAssistant{})

		rec := doJSON(r, http.MethodPut, "/api/tasks/nope", `{"completed": true}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not_found", errKind(t, rec))
		assert.Equal(t, 0, store.updates)
		assert.False(t, store.tasks[0].Completed)
	})

	t.Run("completion is set by value", func(t *testing.T) {
		store := &fakeStore{tasks: []models.Task{{ID: "task-1", Title: "Write report"}}}
		r := newRouter(store, &fakeAssistant{})

		rec := doJSON(r, http.MethodPut, "/api/tasks/task-1", `{"completed": true}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, store.tasks[0].Completed)

		var task models.Task
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &task))
		assert.True(t, task.Completed)
	})

	t.Run("category update is normalized", func(t *testing.T) {
		store := &fakeStore{tasks: []models.Task{{ID: "task-1", Title: "Write report", Category: "Work"}}}
		r := newRouter(store, &fakeAssistant{})

		rec := doJSON(r, http.MethodPut, "/api/tasks/task-1", `{"category": "banking"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Finance", store.tasks[0].Category)
	})
}

func TestDeleteTask(t *testing.T) {
	store := &fakeStore{tasks: []models.Task{{ID: "task-1", Title: "Write report"}}}
	r := newRouter(store, &fakeAssistant{})

	t.Run("unknown id", func(t *testing.T) {
		rec := doJSON(r, http.MethodDelete, "/api/tasks/nope", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not_found", errKind(t, rec))
	})

	t.Run("delete", func(t *testing.T) {
		rec := doJSON(r, http.MethodDelete, "/api/tasks/task-1", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, store.tasks)
	})
}
