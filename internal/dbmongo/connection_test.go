package dbmongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/thehamzasani/primeTube/internal/config"
	"github.com/thehamzasani/primeTube/internal/models"
)

func TestMongoClient_Structure(t *testing.T) {
	client := &MongoClient{}
	assert.NotNil(t, client)
}

func TestBucketName(t *testing.T) {
	assert.Equal(t, "media_files", bucketName(&config.Config{}))
	assert.Equal(t, "uploads", bucketName(&config.Config{MongoDB: config.MongoDBConfig{MediaBucket: "uploads"}}))
}

func TestIndexSpecs_CoverPipelineKeys(t *testing.T) {
	specs := IndexSpecs()

	firstKeys := func(collection string) []string {
		var keys []string
		for _, m := range specs[collection] {
			keys = append(keys, m.Keys.(bson.D)[0].Key)
		}
		return keys
	}

	assert.Contains(t, firstKeys(models.VideosCollection), "owner")
	assert.Contains(t, firstKeys(models.VideosCollection), "title")
	assert.Contains(t, firstKeys(models.CommentsCollection), "video")
	assert.ElementsMatch(t, []string{"channel", "subscriber"}, firstKeys(models.SubscriptionsCollection))
	assert.Contains(t, firstKeys(models.LikesCollection), "video")
	assert.Contains(t, firstKeys(models.UsersCollection), "username")
}
