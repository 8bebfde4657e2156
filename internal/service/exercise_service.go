package service

import (
	"context"
	"errors"
	"strings"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/normalize"
	"fittrack/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
)

// ExerciseService exposes the workout catalog plus the two name-resolution
// modes: fuzzy substring search for interactive use, and exact-after-
// normalization resolution for plan distribution.
type ExerciseService interface {
	GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error)
	ListAll(ctx context.Context) ([]domain.Exercise, error)
	ListWorkoutNames(ctx context.Context) ([]string, error)

	// Search returns every catalog entry whose normalized name contains the
	// normalized query as a substring, in catalog storage order. An empty or
	// unmatched query yields an empty result, never an error.
	Search(ctx context.Context, query string) ([]domain.Exercise, error)

	// ResolveExact returns every catalog entry whose normalized name equals
	// the normalized input. Multiple entries can share a normalized key;
	// callers take the first.
	ResolveExact(ctx context.Context, name string) ([]domain.Exercise, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
	}
}

func (s *exerciseService) GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

func (s *exerciseService) ListAll(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.ListAll(ctx)
}

// ListWorkoutNames returns the canonical names of every catalog entry, in
// storage order. The planner feeds these to the model so it only proposes
// resolvable exercises.
func (s *exerciseService) ListWorkoutNames(ctx context.Context) ([]string, error) {
	exercises, err := s.exerciseRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(exercises))
	for _, ex := range exercises {
		names = append(names, ex.WorkoutName)
	}
	return names, nil
}

func (s *exerciseService) Search(ctx context.Context, query string) ([]domain.Exercise, error) {
	key := normalize.Key(query)
	if key == "" {
		return nil, nil
	}

	exercises, err := s.exerciseRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var matches []domain.Exercise
	for _, ex := range exercises {
		if strings.Contains(normalize.Key(ex.WorkoutName), key) {
			matches = append(matches, ex)
		}
	}
	return matches, nil
}

func (s *exerciseService) ResolveExact(ctx context.Context, name string) ([]domain.Exercise, error) {
	key := normalize.Key(name)
	if key == "" {
		return nil, nil
	}

	exercises, err := s.exerciseRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var matches []domain.Exercise
	for _, ex := range exercises {
		if normalize.Key(ex.WorkoutName) == key {
			matches = append(matches, ex)
		}
	}
	return matches, nil
}
