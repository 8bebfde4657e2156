package service

import (
	"context"
	"errors"
	"time"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrTodoNotFound = errors.New("todo entry not found")
)

// TodoService covers the manual to-do surface: users adding, listing,
// editing and removing single exercises by hand. The plan pipeline writes
// through the same repository but never through this service.
type TodoService interface {
	AddExercise(ctx context.Context, userID string, date time.Time, exerciseID primitive.ObjectID, workingTime string, reps, weight *int) (*domain.TodoItem, error)
	GetByDate(ctx context.Context, userID string, date time.Time) (*domain.TodoEntry, error)
	GetByDateRange(ctx context.Context, userID string, from, to time.Time) ([]domain.TodoEntry, error)
	UpdateItem(ctx context.Context, userID string, date time.Time, itemID string, workingTime *string, reps, weight *int) error
	RemoveItem(ctx context.Context, userID string, date time.Time, itemID string) error
}

// todoService implements the TodoService interface.
type todoService struct {
	todoRepo     repository.TodoRepository
	exerciseRepo repository.ExerciseRepository
}

// NewTodoService creates a new instance of todoService.
func NewTodoService(todoRepo repository.TodoRepository, exerciseRepo repository.ExerciseRepository) TodoService {
	return &todoService{
		todoRepo:     todoRepo,
		exerciseRepo: exerciseRepo,
	}
}

// AddExercise appends one catalog exercise to the user's list for date. The
// workout name is denormalized from the catalog at append time.
func (s *todoService) AddExercise(ctx context.Context, userID string, date time.Time, exerciseID primitive.ObjectID, workingTime string, reps, weight *int) (*domain.TodoItem, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	item := domain.TodoItem{
		ItemID:      uuid.NewString(),
		ExerciseID:  exercise.ID,
		WorkoutName: exercise.WorkoutName,
		WorkingTime: workingTime,
		Reps:        reps,
		Weight:      weight,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.todoRepo.AppendOrCreate(ctx, userID, date, item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *todoService) GetByDate(ctx context.Context, userID string, date time.Time) (*domain.TodoEntry, error) {
	entry, err := s.todoRepo.FindByDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}
	return entry, nil
}

func (s *todoService) GetByDateRange(ctx context.Context, userID string, from, to time.Time) ([]domain.TodoEntry, error) {
	return s.todoRepo.FindByDateRange(ctx, userID, from, to)
}

// UpdateItem edits the working time, reps and weight of one scheduled item.
// Nil fields keep their current value.
func (s *todoService) UpdateItem(ctx context.Context, userID string, date time.Time, itemID string, workingTime *string, reps, weight *int) error {
	err := s.todoRepo.UpdateItem(ctx, userID, date, itemID, workingTime, reps, weight)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTodoNotFound
		}
		return err
	}
	return nil
}

func (s *todoService) RemoveItem(ctx context.Context, userID string, date time.Time, itemID string) error {
	err := s.todoRepo.RemoveItem(ctx, userID, date, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTodoNotFound
		}
		return err
	}
	return nil
}
