package service

import (
	"context"
	"testing"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeExerciseRepo is an in-memory ExerciseRepository for tests.
type fakeExerciseRepo struct {
	exercises []domain.Exercise
	listErr   error
}

func (f *fakeExerciseRepo) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	exercise.ID = primitive.NewObjectID()
	f.exercises = append(f.exercises, *exercise)
	return exercise.ID, nil
}

func (f *fakeExerciseRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	for i := range f.exercises {
		if f.exercises[i].ID == id {
			return &f.exercises[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeExerciseRepo) ListAll(ctx context.Context) ([]domain.Exercise, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.exercises, nil
}

func newCatalog(names ...string) *fakeExerciseRepo {
	repo := &fakeExerciseRepo{}
	for _, name := range names {
		repo.exercises = append(repo.exercises, domain.Exercise{
			ID:          primitive.NewObjectID(),
			WorkoutName: name,
		})
	}
	return repo
}

func workoutNames(exercises []domain.Exercise) []string {
	names := make([]string, len(exercises))
	for i, ex := range exercises {
		names[i] = ex.WorkoutName
	}
	return names
}

func TestSearchRecall(t *testing.T) {
	svc := NewExerciseService(newCatalog("Push Up", "Pull Up", "Sit Up", "Squat"))

	results, err := svc.Search(context.Background(), "up")
	require.NoError(t, err)
	assert.Equal(t, []string{"Push Up", "Pull Up", "Sit Up"}, workoutNames(results))
}

func TestSearchIgnoresCaseSpacesHyphens(t *testing.T) {
	svc := NewExerciseService(newCatalog("Push-Up", "Squat"))

	for _, query := range []string{"push up", "PUSH-UP", "pushup", "sh-u"} {
		results, err := svc.Search(context.Background(), query)
		require.NoError(t, err)
		assert.Equal(t, []string{"Push-Up"}, workoutNames(results), "query %q", query)
	}
}

func TestSearchEmptyAndUnmatchedQueries(t *testing.T) {
	svc := NewExerciseService(newCatalog("Push Up"))

	results, err := svc.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = svc.Search(context.Background(), " -- ")
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = svc.Search(context.Background(), "burpee")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestResolveExactPrecision(t *testing.T) {
	svc := NewExerciseService(newCatalog("Push Up", "Pull Up", "Push Up Variation"))

	// "Pull Up" and the longer "Push Up Variation" must never appear for an
	// exact lookup of "Push Up".
	results, err := svc.ResolveExact(context.Background(), "Push Up")
	require.NoError(t, err)
	assert.Equal(t, []string{"Push Up"}, workoutNames(results))
}

func TestResolveExactAcrossDisplayVariants(t *testing.T) {
	svc := NewExerciseService(newCatalog("Push-Up"))

	for _, name := range []string{"push up", "PUSHUP", "Push-Up"} {
		results, err := svc.ResolveExact(context.Background(), name)
		require.NoError(t, err)
		assert.Len(t, results, 1, "variant %q", name)
	}
}

func TestResolveExactDuplicateNamesReturnsAllInCatalogOrder(t *testing.T) {
	repo := newCatalog("Push-Up", "push up", "Squat")
	svc := NewExerciseService(repo)

	results, err := svc.ResolveExact(context.Background(), "PUSHUP")
	require.NoError(t, err)
	require.Len(t, results, 2)
	// Catalog storage order, so the caller's first-match-wins rule is
	// deterministic.
	assert.Equal(t, repo.exercises[0].ID, results[0].ID)
	assert.Equal(t, repo.exercises[1].ID, results[1].ID)
}

func TestResolveExactUnmatched(t *testing.T) {
	svc := NewExerciseService(newCatalog("Push Up"))

	results, err := svc.ResolveExact(context.Background(), "Nonexistent")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestListWorkoutNames(t *testing.T) {
	svc := NewExerciseService(newCatalog("Push Up", "Squat"))

	names, err := svc.ListWorkoutNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Push Up", "Squat"}, names)
}
