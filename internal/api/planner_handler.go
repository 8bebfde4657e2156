package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlannerHandler holds the planner service dependency.
type PlannerHandler struct {
	plannerService service.PlannerService
}

// NewPlannerHandler creates a new PlannerHandler.
func NewPlannerHandler(plannerService service.PlannerService) *PlannerHandler {
	return &PlannerHandler{plannerService: plannerService}
}

// --- DTOs ---

// GeneratePlanRequest optionally overrides the anchor date (day 0 of the
// plan). Defaults to today.
type GeneratePlanRequest struct {
	AnchorDate string `json:"anchor_date"`
}

// --- Handler Methods ---

// GeneratePlan handles POST /users/:userId/plan/generate. On success the
// response carries the full generated plan, regardless of how many of its
// exercises were actually resolved and scheduled.
func (h *PlannerHandler) GeneratePlan(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format.")
		return
	}

	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	anchorDate := time.Now().UTC()
	if req.AnchorDate != "" {
		anchorDate, err = parseDateParam(req.AnchorDate)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "anchor_date must be YYYY-MM-DD.")
			return
		}
	}

	plan, err := h.plannerService.GenerateAndSchedule(c.Request.Context(), userID, anchorDate)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, "User not found.")
		case errors.Is(err, service.ErrPlanTimeout):
			// Retriable: the model ran out of time.
			abortWithError(c, http.StatusGatewayTimeout, "Plan generation timed out, please retry.")
		default:
			abortWithError(c, http.StatusBadGateway, "Failed to generate plan.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "plan": plan})
}

// ListPlans handles GET /users/:userId/plans, returning saved plan
// snapshots newest first.
func (h *PlannerHandler) ListPlans(c *gin.Context) {
	userID := c.Param("userId")

	records, err := h.plannerService.ListPlans(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve plans.")
		return
	}
	if records == nil {
		records = []domain.PlanRecord{}
	}
	c.JSON(http.StatusOK, records)
}
