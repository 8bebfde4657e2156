package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubPlannerService returns a canned plan or error.
type stubPlannerService struct {
	plan       *domain.GeneratedPlan
	err        error
	gotUserID  primitive.ObjectID
	gotAnchor  time.Time
	distribute service.DistributionResult
	records    []domain.PlanRecord
}

func (s *stubPlannerService) GenerateAndSchedule(ctx context.Context, userID primitive.ObjectID, anchorDate time.Time) (*domain.GeneratedPlan, error) {
	s.gotUserID = userID
	s.gotAnchor = anchorDate
	if s.err != nil {
		return nil, s.err
	}
	return s.plan, nil
}

func (s *stubPlannerService) Distribute(ctx context.Context, userID string, anchorDate time.Time, plan *domain.GeneratedPlan) service.DistributionResult {
	return s.distribute
}

func (s *stubPlannerService) ListPlans(ctx context.Context, userID string) ([]domain.PlanRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func planRouter(svc service.PlannerService) *gin.Engine {
	router := gin.New()
	handler := NewPlannerHandler(svc)
	router.POST("/api/v1/users/:userId/plan/generate", handler.GeneratePlan)
	router.GET("/api/v1/users/:userId/plans", handler.ListPlans)
	return router
}

func TestGeneratePlanSuccess(t *testing.T) {
	svc := &stubPlannerService{
		plan: &domain.GeneratedPlan{
			Monday:     []string{"Push Up"},
			Explaining: "A balanced week.",
		},
	}
	router := planRouter(svc)

	userID := primitive.NewObjectID()
	body := strings.NewReader(`{"anchor_date":"2024-12-01"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/"+userID.Hex()+"/plan/generate", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, svc.gotUserID)
	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), svc.gotAnchor)

	var resp struct {
		Success bool                 `json:"success"`
		Plan    domain.GeneratedPlan `json:"plan"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, []string{"Push Up"}, resp.Plan.Monday)
	assert.Equal(t, "A balanced week.", resp.Plan.Explaining)
}

func TestGeneratePlanDefaultsAnchorToToday(t *testing.T) {
	svc := &stubPlannerService{plan: &domain.GeneratedPlan{}}
	router := planRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/"+primitive.NewObjectID().Hex()+"/plan/generate", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.WithinDuration(t, time.Now().UTC(), svc.gotAnchor, time.Minute)
}

func TestGeneratePlanErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"timeout is retriable", fmt.Errorf("%w: slow model", service.ErrPlanTimeout), http.StatusGatewayTimeout},
		{"generation failure", fmt.Errorf("%w: bad schema", service.ErrPlanGeneration), http.StatusBadGateway},
		{"unknown user", service.ErrUserNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := planRouter(&stubPlannerService{err: tt.err})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/users/"+primitive.NewObjectID().Hex()+"/plan/generate", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestListPlansHandler(t *testing.T) {
	svc := &stubPlannerService{
		records: []domain.PlanRecord{
			{
				UserID: "user-1",
				Date:   "2024-12-01",
				Plan:   domain.GeneratedPlan{Monday: []string{"Push Up"}, Explaining: "A balanced week."},
			},
		},
	}
	router := planRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/user-1/plans", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var records []domain.PlanRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "2024-12-01", records[0].Date)
	assert.Equal(t, []string{"Push Up"}, records[0].Plan.Monday)
}

func TestListPlansHandlerEmptyHistory(t *testing.T) {
	router := planRouter(&stubPlannerService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/user-1/plans", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	// A user with no snapshots gets an empty list, not null.
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGeneratePlanRejectsBadInput(t *testing.T) {
	router := planRouter(&stubPlannerService{plan: &domain.GeneratedPlan{}})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/not-an-id/plan/generate", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := strings.NewReader(`{"anchor_date":"12/01/2024"}`)
	req = httptest.NewRequest(http.MethodPost, "/api/v1/users/"+primitive.NewObjectID().Hex()+"/plan/generate", body)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
