package repository

import (
	"context"
	"time"

	"fittrack/fitness-tracker/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
// The plan pipeline only reads profiles; writes belong to the profile
// endpoints.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, fields map[string]any) error
}

// ExerciseRepository defines the interface for the workout catalog. The
// resolver and the planner both work off ListAll; name matching happens in
// memory against normalized keys.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	ListAll(ctx context.Context) ([]domain.Exercise, error)
}

// TodoRepository is the schedule store: one document per (user, date) with
// an ordered item list. AppendOrCreate pushes onto an existing day document
// or inserts a fresh one with the item as its only element; it never
// deduplicates.
type TodoRepository interface {
	AppendOrCreate(ctx context.Context, userID string, date time.Time, item domain.TodoItem) error
	FindByDate(ctx context.Context, userID string, date time.Time) (*domain.TodoEntry, error)
	FindByDateRange(ctx context.Context, userID string, from, to time.Time) ([]domain.TodoEntry, error)
	UpdateItem(ctx context.Context, userID string, date time.Time, itemID string, workingTime *string, reps, weight *int) error
	RemoveItem(ctx context.Context, userID string, date time.Time, itemID string) error
}

// PlanRepository stores snapshots of generated plans.
type PlanRepository interface {
	Save(ctx context.Context, record *domain.PlanRecord) (primitive.ObjectID, error)
	ListByUser(ctx context.Context, userID string) ([]domain.PlanRecord, error)
}

// SearchHistoryRepository logs catalog searches per user.
type SearchHistoryRepository interface {
	Add(ctx context.Context, record *domain.SearchRecord) error
	ListByUser(ctx context.Context, userID string) ([]domain.SearchRecord, error)
}
