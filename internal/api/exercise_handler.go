package api

import (
	"errors"
	"net/http"
	"time"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"
	"fittrack/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
	searchHistory   repository.SearchHistoryRepository
	log             *zap.Logger
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService, searchHistory repository.SearchHistoryRepository, log *zap.Logger) *ExerciseHandler {
	return &ExerciseHandler{
		exerciseService: exerciseService,
		searchHistory:   searchHistory,
		log:             log,
	}
}

// --- DTOs ---

// ExerciseResponse is the DTO for returning catalog entries.
type ExerciseResponse struct {
	ID          string `json:"id"`
	WorkoutName string `json:"workout_name"`
	Instruction string `json:"instruction,omitempty"`
}

// MapExerciseToResponse converts a domain.Exercise to ExerciseResponse DTO.
func MapExerciseToResponse(ex *domain.Exercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	return ExerciseResponse{
		ID:          ex.ID.Hex(),
		WorkoutName: ex.WorkoutName,
		Instruction: ex.Instruction,
	}
}

// MapExercisesToResponse converts a slice of domain.Exercise to DTOs.
func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i, ex := range exercises {
		responses[i] = MapExerciseToResponse(&ex)
	}
	return responses
}

// --- Handler Methods ---

// Search handles GET /exercises/search?q=<query>&user_id=<id>.
// Matching ignores case, spaces and hyphens. When a user id is supplied the
// query is logged to that user's search history (best effort).
func (h *ExerciseHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		abortWithError(c, http.StatusBadRequest, "Search content cannot be empty.")
		return
	}

	results, err := h.exerciseService.Search(c.Request.Context(), query)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to search exercises.")
		return
	}

	if userID := c.Query("user_id"); userID != "" {
		record := &domain.SearchRecord{
			UserID:  userID,
			Content: query,
			Time:    time.Now().UTC(),
		}
		if err := h.searchHistory.Add(c.Request.Context(), record); err != nil {
			h.log.Warn("failed to record search history",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
	}

	if results == nil {
		c.JSON(http.StatusOK, []ExerciseResponse{})
		return
	}
	c.JSON(http.StatusOK, MapExercisesToResponse(results))
}

// SearchHistory handles GET /users/:userId/search-history, returning the
// user's past queries newest first.
func (h *ExerciseHandler) SearchHistory(c *gin.Context) {
	userID := c.Param("userId")

	records, err := h.searchHistory.ListByUser(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve search history.")
		return
	}
	if records == nil {
		records = []domain.SearchRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// GetByID handles GET /exercises/:id, returning the catalog entry with its
// instruction text.
func (h *ExerciseHandler) GetByID(c *gin.Context) {
	exerciseID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return
	}

	exercise, err := h.exerciseService.GetExerciseByID(c.Request.Context(), exerciseID)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercise.")
		}
		return
	}

	resp := MapExerciseToResponse(exercise)
	if resp.Instruction == "" {
		resp.Instruction = "No instructions for this exercise."
	}
	c.JSON(http.StatusOK, resp)
}
