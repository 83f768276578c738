// Package dbmongo owns the MongoDB client, collection indexes and the GridFS
// bucket used for uploaded media.
package dbmongo

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/thehamzasani/primeTube/internal/config"
	"github.com/thehamzasani/primeTube/internal/models"
)

type MongoClient struct {
	Client   *mongo.Client
	Database *mongo.Database
	GridFS   *gridfs.Bucket
}

func NewMongoConnection(c *config.Config) (*MongoClient, error) {
	uri := c.GetMongoURI()
	clientOptions := options.Client().ApplyURI(uri)

	timeout := time.Duration(c.MongoDB.ConnectTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	database := client.Database(c.MongoDB.Database)
	bucket, err := gridfs.NewBucket(database, options.GridFSBucket().SetName(bucketName(c)))
	if err != nil {
		return nil, fmt.Errorf("failed to create GridFSBucket: %w", err)
	}

	logrus.WithField("database", c.MongoDB.Database).Info("connected to MongoDB")

	return &MongoClient{
		Client:   client,
		Database: database,
		GridFS:   bucket,
	}, nil
}

func bucketName(c *config.Config) string {
	if c.MongoDB.MediaBucket == "" {
		return "media_files"
	}
	return c.MongoDB.MediaBucket
}

func (mc *MongoClient) Close(ctx context.Context) error {
	return mc.Client.Disconnect(ctx)
}

// IndexSpecs lists the indexes the aggregation pipelines rely on, per collection.
func IndexSpecs() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		models.VideosCollection: {
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "title", Value: 1}}},
		},
		models.CommentsCollection: {
			{Keys: bson.D{{Key: "video", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		models.SubscriptionsCollection: {
			{Keys: bson.D{{Key: "channel", Value: 1}}},
			{Keys: bson.D{{Key: "subscriber", Value: 1}}},
		},
		models.LikesCollection: {
			{Keys: bson.D{{Key: "video", Value: 1}}},
		},
		models.UsersCollection: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}
}

// EnsureIndexes creates the indexes from IndexSpecs. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for collection, specs := range IndexSpecs() {
		names, err := db.Collection(collection).Indexes().CreateMany(ctx, specs)
		if err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
		logrus.WithFields(logrus.Fields{"collection": collection, "indexes": names}).Debug("indexes ensured")
	}
	return nil
}
