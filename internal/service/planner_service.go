package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/genai"
	"fittrack/fitness-tracker/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// --- Error Definitions ---
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrPlanGeneration = errors.New("plan generation failed")
	// ErrPlanTimeout is the retriable failure: the model call ran out of
	// time. Callers may repeat the whole GenerateAndSchedule call.
	ErrPlanTimeout = errors.New("plan generation timed out")
)

// planPromptPrefix is the fixed instruction the user profile gets appended
// to. The available workout list rides along in the profile payload so the
// model only proposes names the catalog can resolve.
const planPromptPrefix = "You are a fitness coach. Create a one-week workout plan for the " +
	"following user. Choose exercises ONLY from the provided workout list, " +
	"spread them over the seven days, keep the volume appropriate for the " +
	"user's goals, and explain your reasoning briefly. User information: "

// planSchema is the enforced response shape: the seven weekday keys, each an
// array of exercise-name strings, plus a single Explaining string. All keys
// are required.
var planSchema = map[string]any{
	"type": "OBJECT",
	"required": []string{
		"Monday", "Tuesday", "Wednesday", "Thursday",
		"Friday", "Saturday", "Sunday", "Explaining",
	},
	"properties": map[string]any{
		"Monday":     weekdaySchema(),
		"Tuesday":    weekdaySchema(),
		"Wednesday":  weekdaySchema(),
		"Thursday":   weekdaySchema(),
		"Friday":     weekdaySchema(),
		"Saturday":   weekdaySchema(),
		"Sunday":     weekdaySchema(),
		"Explaining": map[string]any{"type": "STRING"},
	},
}

func weekdaySchema() map[string]any {
	return map[string]any{
		"type":  "ARRAY",
		"items": map[string]any{"type": "STRING"},
	}
}

// DistributionResult counts what happened to a plan's items during
// scheduling. Skipped items had no exact catalog match; Failed items
// resolved but their schedule write errored.
type DistributionResult struct {
	Scheduled int
	Skipped   int
	Failed    int
}

// PlannerService generates a weekly plan from the user's profile and
// schedules its resolvable exercises onto the user's to-do lists.
type PlannerService interface {
	// GenerateAndSchedule runs the whole pipeline and returns the raw plan
	// for display. The plan comes back even when some (or all) of its items
	// failed to resolve or schedule; only plan generation itself can fail.
	GenerateAndSchedule(ctx context.Context, userID primitive.ObjectID, anchorDate time.Time) (*domain.GeneratedPlan, error)

	// Distribute schedules a plan's exercises starting at anchorDate. Day i
	// of the plan (Monday first) lands on anchorDate+i days: weekday labels
	// are ordinal slots, not calendar weekdays. Unresolved names are
	// skipped, write failures do not abort sibling writes, and repeated
	// distribution of the same plan appends duplicates.
	Distribute(ctx context.Context, userID string, anchorDate time.Time, plan *domain.GeneratedPlan) DistributionResult

	// ListPlans returns the user's saved plan snapshots, newest first.
	ListPlans(ctx context.Context, userID string) ([]domain.PlanRecord, error)
}

// plannerService implements the PlannerService interface.
type plannerService struct {
	userRepo        repository.UserRepository
	planRepo        repository.PlanRepository
	todoRepo        repository.TodoRepository
	exerciseService ExerciseService
	model           genai.Client
	log             *zap.Logger
}

// NewPlannerService creates a new instance of plannerService.
func NewPlannerService(
	userRepo repository.UserRepository,
	planRepo repository.PlanRepository,
	todoRepo repository.TodoRepository,
	exerciseService ExerciseService,
	model genai.Client,
	log *zap.Logger,
) PlannerService {
	return &plannerService{
		userRepo:        userRepo,
		planRepo:        planRepo,
		todoRepo:        todoRepo,
		exerciseService: exerciseService,
		model:           model,
		log:             log,
	}
}

// planUserInfo is the profile payload serialized into the prompt.
type planUserInfo struct {
	Workout        []string `json:"workout"`
	UserID         string   `json:"user_id"`
	Sex            string   `json:"sex,omitempty"`
	Height         *float64 `json:"height,omitempty"`
	Weight         *float64 `json:"weight,omitempty"`
	GoalWeight     *float64 `json:"goal_weight,omitempty"`
	FatRate        *float64 `json:"fat_rate,omitempty"`
	GoalFatRate    *float64 `json:"goal_fat_rate,omitempty"`
	AdditionalNote string   `json:"additional_note,omitempty"`
}

func buildPrompt(user *domain.User, workouts []string) (string, error) {
	info := planUserInfo{
		Workout:        workouts,
		UserID:         user.ID.Hex(),
		Sex:            user.Sex,
		Height:         user.Height,
		Weight:         user.Weight,
		GoalWeight:     user.GoalWeight,
		FatRate:        user.FatRate,
		GoalFatRate:    user.GoalFatRate,
		AdditionalNote: user.AdditionalNote,
	}
	payload, err := json.Marshal(info)
	if err != nil {
		return "", err
	}
	return planPromptPrefix + string(payload), nil
}

// requestPlan asks the model for a schema-constrained weekly plan. Timeouts
// surface as ErrPlanTimeout; every other failure (prompt construction,
// transport, malformed response) collapses into ErrPlanGeneration.
func (s *plannerService) requestPlan(ctx context.Context, user *domain.User, workouts []string) (*domain.GeneratedPlan, error) {
	prompt, err := buildPrompt(user, workouts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPlanGeneration, err)
	}

	raw, err := s.model.GenerateJSON(ctx, prompt, planSchema)
	if err != nil {
		if errors.Is(err, genai.ErrTimeout) {
			return nil, fmt.Errorf("%w: %w", ErrPlanTimeout, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrPlanGeneration, err)
	}

	// Round-trip through JSON to map the schema-shaped object onto the
	// typed plan.
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPlanGeneration, err)
	}
	var plan domain.GeneratedPlan
	if err := json.Unmarshal(encoded, &plan); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPlanGeneration, err)
	}
	return &plan, nil
}

func (s *plannerService) GenerateAndSchedule(ctx context.Context, userID primitive.ObjectID, anchorDate time.Time) (*domain.GeneratedPlan, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	workouts, err := s.exerciseService.ListWorkoutNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPlanGeneration, err)
	}

	plan, err := s.requestPlan(ctx, user, workouts)
	if err != nil {
		return nil, err
	}

	// Snapshot the raw plan so it stays viewable after the to-do lists
	// change. Best effort: the pipeline does not depend on it.
	record := &domain.PlanRecord{
		UserID: userID.Hex(),
		Date:   anchorDate.UTC().Format("2006-01-02"),
		Plan:   *plan,
	}
	if _, err := s.planRepo.Save(ctx, record); err != nil {
		s.log.Warn("failed to save plan snapshot",
			zap.String("user_id", userID.Hex()),
			zap.Error(err),
		)
	}

	result := s.Distribute(ctx, userID.Hex(), anchorDate, plan)
	s.log.Info("plan distributed",
		zap.String("user_id", userID.Hex()),
		zap.String("anchor_date", anchorDate.UTC().Format("2006-01-02")),
		zap.Int("scheduled", result.Scheduled),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed),
	)

	// The caller gets the full plan text even when items failed to resolve
	// or schedule; the counts above are the visibility into that gap.
	return plan, nil
}

func (s *plannerService) ListPlans(ctx context.Context, userID string) ([]domain.PlanRecord, error) {
	return s.planRepo.ListByUser(ctx, userID)
}

func (s *plannerService) Distribute(ctx context.Context, userID string, anchorDate time.Time, plan *domain.GeneratedPlan) DistributionResult {
	if plan == nil {
		return DistributionResult{}
	}

	var scheduled, skipped, failed atomic.Int64

	// Each day targets a distinct date, so days can run in parallel without
	// two goroutines ever appending to the same (user, date) document.
	// Items within one day stay sequential to preserve append order.
	var g errgroup.Group
	for dayIdx, names := range plan.Days() {
		names := names
		targetDate := domain.Midnight(anchorDate).AddDate(0, 0, dayIdx)
		g.Go(func() error {
			for _, name := range names {
				matches, err := s.exerciseService.ResolveExact(ctx, name)
				if err != nil {
					failed.Add(1)
					s.log.Warn("exercise resolution errored",
						zap.String("workout_name", name),
						zap.Error(err),
					)
					continue
				}
				if len(matches) == 0 {
					skipped.Add(1)
					s.log.Debug("no catalog match for planned exercise",
						zap.String("workout_name", name),
					)
					continue
				}

				// First match wins when duplicate names share a key.
				match := matches[0]
				item := domain.TodoItem{
					ItemID:      uuid.NewString(),
					ExerciseID:  match.ID,
					WorkoutName: match.WorkoutName,
					CreatedAt:   time.Now().UTC(),
				}
				if err := s.todoRepo.AppendOrCreate(ctx, userID, targetDate, item); err != nil {
					failed.Add(1)
					s.log.Warn("schedule write failed",
						zap.String("user_id", userID),
						zap.Time("date", targetDate),
						zap.String("workout_name", match.WorkoutName),
						zap.Error(err),
					)
					continue
				}
				scheduled.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait() // day workers never return errors; failures are counted

	return DistributionResult{
		Scheduled: int(scheduled.Load()),
		Skipped:   int(skipped.Load()),
		Failed:    int(failed.Load()),
	}
}
