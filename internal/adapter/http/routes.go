package http

import (
	"workforce/internal/adapter/http/handlers"
	"workforce/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, taskHandler *handlers.TaskHandler) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		tm := api.Group("/task-mgmt")
		tm.GET("/task/:id", taskHandler.GetTask)
		tm.GET("/priority/:priority", taskHandler.ListTasksByPriority)
		tm.POST("/create", taskHandler.CreateTasks)
		tm.POST("/update", taskHandler.UpdateTasks)
		tm.POST("/update-priority", taskHandler.UpdateTaskPriority)
		tm.POST("/assign-by-ref", taskHandler.AssignByReference)
		tm.POST("/fetch-by-date", taskHandler.FetchTasksByDate)
		tm.POST("/comment", taskHandler.CommentOnTask)
	}
}
