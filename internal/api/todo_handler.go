package api

import (
	"errors"
	"net/http"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TodoHandler holds the todo service dependency.
type TodoHandler struct {
	todoService service.TodoService
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(todoService service.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// --- DTOs ---

// AddTodoRequest defines the expected JSON for adding a to-do item by hand.
type AddTodoRequest struct {
	ExerciseID  string `json:"exercise_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	WorkingTime string `json:"working_time"`
	Reps        *int   `json:"reps"`
	Weight      *int   `json:"weight"`
}

// UpdateTodoRequest carries the editable fields of a scheduled item.
// Pointers distinguish "not sent" from a zero value.
type UpdateTodoRequest struct {
	Date        string  `json:"date" binding:"required"`
	WorkingTime *string `json:"working_time"`
	Reps        *int    `json:"reps"`
	Weight      *int    `json:"weight"`
}

// TodoItemResponse is the DTO for one scheduled exercise.
type TodoItemResponse struct {
	ItemID      string `json:"exercise_todo_id"`
	ExerciseID  string `json:"exercise_id"`
	WorkoutName string `json:"workout_name"`
	WorkingTime string `json:"working_time,omitempty"`
	Reps        *int   `json:"reps,omitempty"`
	Weight      *int   `json:"weight,omitempty"`
	Time        string `json:"time"`
}

// TodoEntryResponse is the DTO for one day's to-do list.
type TodoEntryResponse struct {
	UserID string             `json:"user_id"`
	Date   string             `json:"date"`
	Items  []TodoItemResponse `json:"todo"`
}

// MapTodoItemToResponse converts a domain.TodoItem to its DTO.
func MapTodoItemToResponse(item domain.TodoItem) TodoItemResponse {
	return TodoItemResponse{
		ItemID:      item.ItemID,
		ExerciseID:  item.ExerciseID.Hex(),
		WorkoutName: item.WorkoutName,
		WorkingTime: item.WorkingTime,
		Reps:        item.Reps,
		Weight:      item.Weight,
		Time:        item.CreatedAt.Format(dateLayout),
	}
}

// MapTodoEntryToResponse converts a domain.TodoEntry to its DTO.
func MapTodoEntryToResponse(entry *domain.TodoEntry) TodoEntryResponse {
	items := make([]TodoItemResponse, len(entry.Items))
	for i, item := range entry.Items {
		items[i] = MapTodoItemToResponse(item)
	}
	return TodoEntryResponse{
		UserID: entry.UserID,
		Date:   entry.Date.Format(dateLayout),
		Items:  items,
	}
}

// --- Handler Methods ---

// Add handles POST /users/:userId/todo.
func (h *TodoHandler) Add(c *gin.Context) {
	userID := c.Param("userId")

	var req AddTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exerciseID, err := primitive.ObjectIDFromHex(req.ExerciseID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return
	}
	date, err := parseDateParam(req.Date)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "date must be YYYY-MM-DD.")
		return
	}

	item, err := h.todoService.AddExercise(c.Request.Context(), userID, date, exerciseID, req.WorkingTime, req.Reps, req.Weight)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to add todo item.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapTodoItemToResponse(*item))
}

// List handles GET /users/:userId/todo?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *TodoHandler) List(c *gin.Context) {
	userID := c.Param("userId")

	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr == "" || toStr == "" {
		abortWithError(c, http.StatusBadRequest, "from and to are required.")
		return
	}
	from, err := parseDateParam(fromStr)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "from must be YYYY-MM-DD.")
		return
	}
	to, err := parseDateParam(toStr)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "to must be YYYY-MM-DD.")
		return
	}

	entries, err := h.todoService.GetByDateRange(c.Request.Context(), userID, from, to)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve todos.")
		return
	}

	responses := make([]TodoEntryResponse, len(entries))
	for i := range entries {
		responses[i] = MapTodoEntryToResponse(&entries[i])
	}
	c.JSON(http.StatusOK, responses)
}

// Update handles PUT /users/:userId/todo/:itemId.
func (h *TodoHandler) Update(c *gin.Context) {
	userID := c.Param("userId")
	itemID := c.Param("itemId")

	var req UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	date, err := parseDateParam(req.Date)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "date must be YYYY-MM-DD.")
		return
	}
	if req.WorkingTime == nil && req.Reps == nil && req.Weight == nil {
		abortWithError(c, http.StatusBadRequest, "No item fields supplied.")
		return
	}

	if err := h.todoService.UpdateItem(c.Request.Context(), userID, date, itemID, req.WorkingTime, req.Reps, req.Weight); err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			abortWithError(c, http.StatusNotFound, "Todo item not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update todo item.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// Remove handles DELETE /users/:userId/todo/:itemId?date=YYYY-MM-DD.
func (h *TodoHandler) Remove(c *gin.Context) {
	userID := c.Param("userId")
	itemID := c.Param("itemId")

	date, err := parseDateParam(c.Query("date"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "date must be YYYY-MM-DD.")
		return
	}

	if err := h.todoService.RemoveItem(c.Request.Context(), userID, date, itemID); err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			abortWithError(c, http.StatusNotFound, "Todo item not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete todo item.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
