package services

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"SmartTodoGo/models"
	"SmartTodoGo/utils"
)

// MongoTaskStore persists tasks in a MongoDB collection. Unknown identifiers
// surface as mongo.ErrNoDocuments on every method so handlers can map them
// to 404 uniformly.
type MongoTaskStore struct {
	collection *mongo.Collection
}

func NewMongoTaskStore(db *mongo.Database) *MongoTaskStore {
	return &MongoTaskStore{
		collection: db.Collection("tasks"),
	}
}

func (s *MongoTaskStore) List(ctx context.Context) ([]models.Task, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tasks := []models.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *MongoTaskStore) Get(ctx context.Context, id string) (models.Task, error) {
	var task models.Task
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	return task, err
}

// Insert assigns the store-side fields (id, timestamps) and saves the task.
func (s *MongoTaskStore) Insert(ctx context.Context, task *models.Task) error {
	now := time.Now().UTC()
	task.ID = utils.GenerateID()
	task.CreatedAt = now
	task.LastModified = now

	_, err := s.collection.InsertOne(ctx, task)
	return err
}

// Update applies a partial $set of the given fields and returns the updated
// document. The merge is a single atomic document update; callers send the
// value they want (including completed), never a computed toggle.
func (s *MongoTaskStore) Update(ctx context.Context, id string, fields map[string]interface{}) (models.Task, error) {
	fields["lastModified"] = time.Now().UTC()

	var task models.Task
	err := s.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&task)
	return task, err
}

func (s *MongoTaskStore) Delete(ctx context.Context, id string) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

var priorityRank = map[string]int{
	"high":   3,
	"medium": 2,
	"low":    1,
}

// FindIncomplete returns pending tasks, highest priority first.
func (s *MongoTaskStore) FindIncomplete(ctx context.Context) ([]models.Task, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"completed": bson.M{"$ne": true}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tasks := []models.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return priorityRank[tasks[i].Priority] > priorityRank[tasks[j].Priority]
	})
	return tasks, nil
}

// CountByCompletion returns the completed and pending task counts.
func (s *MongoTaskStore) CountByCompletion(ctx context.Context) (completed, pending int64, err error) {
	completed, err = s.collection.CountDocuments(ctx, bson.M{"completed": true})
	if err != nil {
		return 0, 0, err
	}
	pending, err = s.collection.CountDocuments(ctx, bson.M{"completed": bson.M{"$ne": true}})
	if err != nil {
		return 0, 0, err
	}
	return completed, pending, nil
}
