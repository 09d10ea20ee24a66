package config

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var DB *mongo.Database

// InitDB connects to MongoDB and keeps a handle to the application database.
func InitDB(config Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(config.MongoURI).
		SetMaxPoolSize(100))
	if err != nil {
		return fmt.Errorf("mongodb connect failed: %v", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb ping failed: %v", err)
	}

	DB = client.Database(config.MongoDB)
	return nil
}
