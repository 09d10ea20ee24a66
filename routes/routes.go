package routes

import (
	"github.com/gin-gonic/gin"

	"SmartTodoGo/controllers"
)

func RegisterRoutes(r *gin.Engine, store controllers.TaskStore, assistant controllers.Assistant) {
	taskController := controllers.NewTaskController(store)
	aiController := controllers.NewAIController(store, assistant)

	tasks := r.Group("/api/tasks")
	{
		tasks.GET("", taskController.GetTasks)
		tasks.POST("", taskController.CreateTask)
		tasks.GET("/:id", taskController.GetTask)
		tasks.PUT("/:id", taskController.UpdateTask)
		tasks.DELETE("/:id", taskController.DeleteTask)

		// AI-powered endpoints
		tasks.POST("/ai-suggest", aiController.AISuggest)
		tasks.POST("/categorize", aiController.Categorize)
		tasks.POST("/generate-schedule", aiController.GenerateSchedule)
		tasks.POST("/productivity-insights", aiController.ProductivityInsights)
		tasks.POST("/search", aiController.Search)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
