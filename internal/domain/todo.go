package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TodoItem is one scheduled exercise inside a day's to-do list. The workout
// name is denormalized from the catalog so the list renders without a join.
type TodoItem struct {
	ItemID      string             `bson:"exercise_todo_id" json:"exercise_todo_id"`
	ExerciseID  primitive.ObjectID `bson:"exercise_id" json:"exercise_id"`
	WorkoutName string             `bson:"workout_name" json:"workout_name"`
	WorkingTime string             `bson:"working_time,omitempty" json:"working_time,omitempty"`
	Reps        *int               `bson:"reps,omitempty" json:"reps,omitempty"`
	Weight      *int               `bson:"weight,omitempty" json:"weight,omitempty"`
	CreatedAt   time.Time          `bson:"time" json:"time"`
}

// TodoEntry is the per-user, per-date container of scheduled exercises.
// Date is always midnight UTC so range queries by day are exact. Items are
// appended in arrival order and duplicates are allowed: scheduling the same
// plan twice doubles its items.
type TodoEntry struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID string             `bson:"user_id" json:"user_id"`
	Date   time.Time          `bson:"date" json:"date"`
	Items  []TodoItem         `bson:"todo" json:"todo"`
}

// Midnight truncates t to 00:00:00 UTC of the same calendar day.
func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
