package api

import (
	"net/http"

	"fittrack/fitness-tracker/internal/repository"
	"fittrack/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupRoutes(
	router *gin.Engine,
	plannerService service.PlannerService,
	exerciseService service.ExerciseService,
	todoService service.TodoService,
	userService service.UserService,
	searchHistory repository.SearchHistoryRepository,
	log *zap.Logger,
) {
	plannerHandler := NewPlannerHandler(plannerService)
	exerciseHandler := NewExerciseHandler(exerciseService, searchHistory, log)
	todoHandler := NewTodoHandler(todoService)
	userHandler := NewUserHandler(userService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		exerciseGroup := apiV1.Group("/exercises")
		{
			exerciseGroup.GET("/search", exerciseHandler.Search)
			exerciseGroup.GET("/:id", exerciseHandler.GetByID)
		}

		apiV1.POST("/users", userHandler.Create)

		userGroup := apiV1.Group("/users/:userId")
		{
			userGroup.GET("/profile", userHandler.GetProfile)
			userGroup.PUT("/profile", userHandler.UpdateProfile)
			userGroup.POST("/plan/generate", plannerHandler.GeneratePlan)
			userGroup.GET("/plans", plannerHandler.ListPlans)
			userGroup.GET("/search-history", exerciseHandler.SearchHistory)
			userGroup.POST("/todo", todoHandler.Add)
			userGroup.GET("/todo", todoHandler.List)
			userGroup.PUT("/todo/:itemId", todoHandler.Update)
			userGroup.DELETE("/todo/:itemId", todoHandler.Remove)
		}
	}
}
