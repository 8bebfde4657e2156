package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Weekdays is the fixed key order of a generated plan. Distribution walks it
// front to back, so index i always lands on anchor date + i days regardless
// of which calendar weekday the anchor falls on.
var Weekdays = [7]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// GeneratedPlan is the structured output of one plan-generation call: seven
// ordered lists of free-text exercise names plus the model's explanation.
// It is returned to the caller for display; only its resolved, scheduled
// items are persisted.
type GeneratedPlan struct {
	Monday     []string `json:"Monday"`
	Tuesday    []string `json:"Tuesday"`
	Wednesday  []string `json:"Wednesday"`
	Thursday   []string `json:"Thursday"`
	Friday     []string `json:"Friday"`
	Saturday   []string `json:"Saturday"`
	Sunday     []string `json:"Sunday"`
	Explaining string   `json:"Explaining"`
}

// Days returns the seven exercise lists in Weekdays order.
func (p *GeneratedPlan) Days() [7][]string {
	return [7][]string{
		p.Monday,
		p.Tuesday,
		p.Wednesday,
		p.Thursday,
		p.Friday,
		p.Saturday,
		p.Sunday,
	}
}

// PlanRecord is a persisted snapshot of a generated plan, kept so the user
// can revisit what the model proposed even after the to-do lists change.
type PlanRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Date      string             `bson:"date" json:"date"` // YYYY-MM-DD of the generation day
	Plan      GeneratedPlan      `bson:"plan" json:"plan"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
