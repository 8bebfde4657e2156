package mongo

import (
	"context"
	"errors"
	"time"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const searchHistoryCollectionName = "search_history"

// mongoSearchHistoryRepository implements repository.SearchHistoryRepository
type mongoSearchHistoryRepository struct {
	collection *mongo.Collection
}

// NewMongoSearchHistoryRepository creates a new SearchHistory repository backed by MongoDB.
func NewMongoSearchHistoryRepository(db *mongo.Database) repository.SearchHistoryRepository {
	return &mongoSearchHistoryRepository{
		collection: db.Collection(searchHistoryCollectionName),
	}
}

// Add logs one search query for a user.
func (r *mongoSearchHistoryRepository) Add(ctx context.Context, record *domain.SearchRecord) error {
	if record.UserID == "" || record.Content == "" {
		return errors.New("user ID and content are required")
	}
	record.ID = primitive.NewObjectID()
	if record.Time.IsZero() {
		record.Time = time.Now().UTC()
	}

	_, err := r.collection.InsertOne(ctx, record)
	return err
}

// ListByUser returns a user's search history, newest first.
func (r *mongoSearchHistoryRepository) ListByUser(ctx context.Context, userID string) ([]domain.SearchRecord, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "time", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []domain.SearchRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// EnsureSearchHistoryIndexes creates necessary indexes for the search_history collection.
func EnsureSearchHistoryIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "time", Value: -1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
