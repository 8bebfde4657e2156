package api

import (
	"errors"
	"net/http"

	"fittrack/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserHandler holds the user service dependency.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// --- DTOs ---

// CreateUserRequest defines the expected JSON for registering a user.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
}

// UpdateProfileRequest carries the biometric fields the planner prompt reads.
// Pointers distinguish "not sent" from a zero value.
type UpdateProfileRequest struct {
	Name           *string  `json:"name"`
	Sex            *string  `json:"sex"`
	Height         *float64 `json:"height"`
	Weight         *float64 `json:"weight"`
	GoalWeight     *float64 `json:"goal_weight"`
	FatRate        *float64 `json:"fat_rate"`
	GoalFatRate    *float64 `json:"goal_fat_rate"`
	AdditionalNote *string  `json:"additional_note"`
}

func (r UpdateProfileRequest) fields() map[string]any {
	out := map[string]any{}
	if r.Name != nil {
		out["name"] = *r.Name
	}
	if r.Sex != nil {
		out["sex"] = *r.Sex
	}
	if r.Height != nil {
		out["height"] = *r.Height
	}
	if r.Weight != nil {
		out["weight"] = *r.Weight
	}
	if r.GoalWeight != nil {
		out["goal_weight"] = *r.GoalWeight
	}
	if r.FatRate != nil {
		out["fat_rate"] = *r.FatRate
	}
	if r.GoalFatRate != nil {
		out["goal_fat_rate"] = *r.GoalFatRate
	}
	if r.AdditionalNote != nil {
		out["additional_note"] = *r.AdditionalNote
	}
	return out
}

// --- Handler Methods ---

// Create handles POST /users.
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			abortWithError(c, http.StatusConflict, "Username already exists.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create user.")
		}
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetProfile handles GET /users/:userId/profile.
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format.")
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve profile.")
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PUT /users/:userId/profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format.")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	fields := req.fields()
	if len(fields) == 0 {
		abortWithError(c, http.StatusBadRequest, "No profile fields supplied.")
		return
	}

	if err := h.userService.UpdateProfile(c.Request.Context(), userID, fields); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update profile.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
