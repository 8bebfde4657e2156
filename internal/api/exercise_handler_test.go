package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// stubExerciseService serves a fixed catalog.
type stubExerciseService struct {
	exercises []domain.Exercise
}

func (s *stubExerciseService) GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error) {
	for i := range s.exercises {
		if s.exercises[i].ID == exerciseID {
			return &s.exercises[i], nil
		}
	}
	return nil, service.ErrExerciseNotFound
}

func (s *stubExerciseService) ListAll(ctx context.Context) ([]domain.Exercise, error) {
	return s.exercises, nil
}

func (s *stubExerciseService) ListWorkoutNames(ctx context.Context) ([]string, error) {
	names := make([]string, len(s.exercises))
	for i, ex := range s.exercises {
		names[i] = ex.WorkoutName
	}
	return names, nil
}

func (s *stubExerciseService) Search(ctx context.Context, query string) ([]domain.Exercise, error) {
	return s.exercises, nil
}

func (s *stubExerciseService) ResolveExact(ctx context.Context, name string) ([]domain.Exercise, error) {
	return nil, nil
}

// stubSearchHistory records added entries.
type stubSearchHistory struct {
	records []domain.SearchRecord
}

func (s *stubSearchHistory) Add(ctx context.Context, record *domain.SearchRecord) error {
	s.records = append(s.records, *record)
	return nil
}

func (s *stubSearchHistory) ListByUser(ctx context.Context, userID string) ([]domain.SearchRecord, error) {
	return s.records, nil
}

func exerciseRouter(svc service.ExerciseService, history *stubSearchHistory) *gin.Engine {
	router := gin.New()
	handler := NewExerciseHandler(svc, history, zap.NewNop())
	router.GET("/api/v1/exercises/search", handler.Search)
	router.GET("/api/v1/exercises/:id", handler.GetByID)
	router.GET("/api/v1/users/:userId/search-history", handler.SearchHistory)
	return router
}

func TestSearchHandler(t *testing.T) {
	svc := &stubExerciseService{exercises: []domain.Exercise{
		{ID: primitive.NewObjectID(), WorkoutName: "Push Up"},
	}}
	history := &stubSearchHistory{}
	router := exerciseRouter(svc, history)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/exercises/search?q=push&user_id=user-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var results []ExerciseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "Push Up", results[0].WorkoutName)

	// The query was logged against the supplied user.
	require.Len(t, history.records, 1)
	assert.Equal(t, "user-1", history.records[0].UserID)
	assert.Equal(t, "push", history.records[0].Content)
}

func TestSearchHandlerRejectsEmptyQuery(t *testing.T) {
	router := exerciseRouter(&stubExerciseService{}, &stubSearchHistory{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/exercises/search", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchHistoryHandler(t *testing.T) {
	svc := &stubExerciseService{exercises: []domain.Exercise{
		{ID: primitive.NewObjectID(), WorkoutName: "Push Up"},
	}}
	history := &stubSearchHistory{}
	router := exerciseRouter(svc, history)

	// Two logged searches come back on the history endpoint.
	for _, q := range []string{"push", "pull"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/exercises/search?q="+q+"&user_id=user-1", nil)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/user-1/search-history", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var records []domain.SearchRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "push", records[0].Content)
	assert.Equal(t, "pull", records[1].Content)
}

func TestSearchHistoryHandlerEmpty(t *testing.T) {
	router := exerciseRouter(&stubExerciseService{}, &stubSearchHistory{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/user-1/search-history", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetByIDFallsBackToDefaultInstruction(t *testing.T) {
	ex := domain.Exercise{ID: primitive.NewObjectID(), WorkoutName: "Push Up"}
	router := exerciseRouter(&stubExerciseService{exercises: []domain.Exercise{ex}}, &stubSearchHistory{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/exercises/"+ex.ID.Hex(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp ExerciseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "No instructions for this exercise.", resp.Instruction)
}

func TestGetByIDNotFound(t *testing.T) {
	router := exerciseRouter(&stubExerciseService{}, &stubSearchHistory{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/exercises/"+primitive.NewObjectID().Hex(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
