package mongo

import (
	"context"
	"errors"
	"time"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const todoCollectionName = "todo"

// mongoTodoRepository implements repository.TodoRepository
type mongoTodoRepository struct {
	collection *mongo.Collection
}

// NewMongoTodoRepository creates a new Todo repository backed by MongoDB.
func NewMongoTodoRepository(db *mongo.Database) repository.TodoRepository {
	return &mongoTodoRepository{
		collection: db.Collection(todoCollectionName),
	}
}

// AppendOrCreate pushes item onto the (userID, date) day document, creating
// the document if this is the first write for that day. The upsert is a
// single atomic operation, so concurrent appends to the same day serialize
// on the server and none are lost. Appends are not deduplicated.
func (r *mongoTodoRepository) AppendOrCreate(ctx context.Context, userID string, date time.Time, item domain.TodoItem) error {
	if userID == "" {
		return errors.New("user ID is required")
	}
	day := domain.Midnight(date)

	filter := bson.M{"user_id": userID, "date": day}
	update := bson.M{
		"$push": bson.M{"todo": item},
		"$setOnInsert": bson.M{
			"user_id": userID,
			"date":    day,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return err
	}
	if result.ModifiedCount == 0 && result.UpsertedCount == 0 {
		return repository.ErrUpdateFailed
	}
	return nil
}

// FindByDate returns the day document for (userID, date), or ErrNotFound.
func (r *mongoTodoRepository) FindByDate(ctx context.Context, userID string, date time.Time) (*domain.TodoEntry, error) {
	day := domain.Midnight(date)

	var entry domain.TodoEntry
	err := r.collection.FindOne(ctx, bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": day, "$lt": day.AddDate(0, 0, 1)},
	}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// FindByDateRange returns the user's day documents with from <= date <= to,
// oldest first. Both bounds are normalized to midnight.
func (r *mongoTodoRepository) FindByDateRange(ctx context.Context, userID string, from, to time.Time) ([]domain.TodoEntry, error) {
	filter := bson.M{
		"user_id": userID,
		"date": bson.M{
			"$gte": domain.Midnight(from),
			"$lt":  domain.Midnight(to).AddDate(0, 0, 1),
		},
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []domain.TodoEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// UpdateItem sets the working time, reps and weight of one item in a day's
// list, addressed by its generated item ID. Nil fields are left untouched.
func (r *mongoTodoRepository) UpdateItem(ctx context.Context, userID string, date time.Time, itemID string, workingTime *string, reps, weight *int) error {
	set := bson.M{}
	if workingTime != nil {
		set["todo.$.working_time"] = *workingTime
	}
	if reps != nil {
		set["todo.$.reps"] = *reps
	}
	if weight != nil {
		set["todo.$.weight"] = *weight
	}
	if len(set) == 0 {
		return errors.New("no item fields to update")
	}
	day := domain.Midnight(date)

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"user_id": userID, "date": day, "todo.exercise_todo_id": itemID},
		bson.M{"$set": set},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// RemoveItem pulls one item out of a day's list by its generated item ID.
func (r *mongoTodoRepository) RemoveItem(ctx context.Context, userID string, date time.Time, itemID string) error {
	day := domain.Midnight(date)

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"user_id": userID, "date": day},
		bson.M{"$pull": bson.M{"todo": bson.M{"exercise_todo_id": itemID}}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 || result.ModifiedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureTodoIndexes creates necessary indexes for the todo collection.
func EnsureTodoIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// One document per user per day; range queries scan by date.
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
