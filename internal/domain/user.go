package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User holds the account and the biometric profile the planner is prompted
// with. The profile fields are owned by the user-management endpoints; the
// plan pipeline only ever reads them.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`

	Sex         string   `bson:"sex,omitempty" json:"sex,omitempty"`
	Height      *float64 `bson:"height,omitempty" json:"height,omitempty"`
	Weight      *float64 `bson:"weight,omitempty" json:"weight,omitempty"`
	GoalWeight  *float64 `bson:"goal_weight,omitempty" json:"goal_weight,omitempty"`
	FatRate     *float64 `bson:"fat_rate,omitempty" json:"fat_rate,omitempty"`
	GoalFatRate *float64 `bson:"goal_fat_rate,omitempty" json:"goal_fat_rate,omitempty"`

	// Free-text note for the planner, e.g. "I don't like doing yoga".
	AdditionalNote string `bson:"additional_note,omitempty" json:"additional_note,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
