package config

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BlogsCollection is the MongoDB collection holding blog posts.
const BlogsCollection = "blogs"

// ConnectDB opens a MongoDB connection, verifies it with a ping and ensures
// the unique slug index exists. The returned database handle is passed by
// reference to the repository; there is no package-level connection state.
func ConnectDB(ctx context.Context, cfg *Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(cfg.MongoDatabase)
	if err := ensureIndexes(ctx, db); err != nil {
		return nil, err
	}

	return db, nil
}

// ensureIndexes creates the unique index on slug. The index is the
// authoritative guard against duplicate slugs; the application-level
// existence check before a write is only an optimization.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(BlogsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create slug index: %w", err)
	}
	return nil
}
