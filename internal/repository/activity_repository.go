package repository

import (
	"context"
	"time"

	"hosteldesk/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ActivityRepository interface {
	SaveEntry(entry *models.ActivityEntry) error
	GetAllEntries(page, limit int) ([]*models.ActivityEntry, error)
}

type MongoActivityRepository struct {
	collection *mongo.Collection
}

func NewActivityRepository(client *mongo.Client, dbName, collectionName string) ActivityRepository {
	collection := client.Database(dbName).Collection(collectionName)
	return &MongoActivityRepository{collection: collection}
}

func (r *MongoActivityRepository) SaveEntry(entry *models.ActivityEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entry.ID = primitive.NewObjectID()
	entry.Timestamp = time.Now()
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

func (r *MongoActivityRepository) GetAllEntries(page, limit int) ([]*models.ActivityEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	skip := (page - 1) * limit
	findOptions := options.Find().SetSort(bson.M{"timestamp": -1}).SetSkip(int64(skip)).SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*models.ActivityEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
