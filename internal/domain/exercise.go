package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is one entry of the workout catalog. WorkoutName is the canonical
// display name; matching against it always goes through normalization (see
// the normalize package), never raw string comparison.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WorkoutName string             `bson:"workout_name" json:"workout_name"`
	Instruction string             `bson:"instruction,omitempty" json:"instruction,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
