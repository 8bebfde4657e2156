package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SearchRecord logs one catalog search made by a user. Newest-first history
// feeds the search page's suggestions.
type SearchRecord struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID  string             `bson:"user_id" json:"user_id"`
	Content string             `bson:"content" json:"content"`
	Time    time.Time          `bson:"time" json:"time"`
}
