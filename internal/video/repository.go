package video

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/thehamzasani/primeTube/internal/common"
	"github.com/thehamzasani/primeTube/internal/models"
	"github.com/thehamzasani/primeTube/internal/pipeline"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=video

type VideoRepository interface {
	List(ctx context.Context, filter pipeline.VideoFilter, sortBy string, order common.SortOrder, page common.Pagination) (pipeline.Page[models.VideoWithOwner], error)
	Create(ctx context.Context, video *models.Video) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Video, error)
	IncrementViews(ctx context.Context, id primitive.ObjectID) (*models.Video, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.VideoPatch) (*models.Video, error)
	TogglePublish(ctx context.Context, id primitive.ObjectID) (*models.Video, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Video, error)
}

type videoRepository struct {
	coll *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) VideoRepository {
	return &videoRepository{coll: db.Collection(models.VideosCollection)}
}

func (r *videoRepository) List(ctx context.Context, filter pipeline.VideoFilter, sortBy string, order common.SortOrder, page common.Pagination) (pipeline.Page[models.VideoWithOwner], error) {
	cursor, err := r.coll.Aggregate(ctx, pipeline.VideoList(filter, sortBy, order, page))
	if err != nil {
		return pipeline.Page[models.VideoWithOwner]{}, common.StoreFailure(err, "aggregate videos")
	}
	defer cursor.Close(ctx)

	var facet pipeline.FacetResult[models.VideoWithOwner]
	if cursor.Next(ctx) {
		if err := cursor.Decode(&facet); err != nil {
			return pipeline.Page[models.VideoWithOwner]{}, common.StoreFailure(err, "decode video page")
		}
	}
	if err := cursor.Err(); err != nil {
		return pipeline.Page[models.VideoWithOwner]{}, common.StoreFailure(err, "iterate videos")
	}
	return pipeline.FromFacet(facet, page), nil
}

func (r *videoRepository) Create(ctx context.Context, video *models.Video) error {
	now := time.Now().UTC()
	if video.ID.IsZero() {
		video.ID = primitive.NewObjectID()
	}
	video.CreatedAt = now
	video.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, video); err != nil {
		return common.StoreFailure(err, "insert video")
	}
	return nil
}

func (r *videoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Video, error) {
	var video models.Video
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&video)
	return r.single(&video, err, "find video")
}

// IncrementViews bumps the counter and returns the updated document in one
// round trip so concurrent fetches never lose an increment.
func (r *videoRepository) IncrementViews(ctx context.Context, id primitive.ObjectID) (*models.Video, error) {
	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}}}
	return r.findOneAndUpdate(ctx, id, update, "increment views")
}

func (r *videoRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.VideoPatch) (*models.Video, error) {
	set := bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}
	if patch.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *patch.Title})
	}
	if patch.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *patch.Description})
	}
	if patch.Thumbnail != nil {
		set = append(set, bson.E{Key: "thumbnail", Value: *patch.Thumbnail})
	}
	return r.findOneAndUpdate(ctx, id, bson.D{{Key: "$set", Value: set}}, "update video")
}

// TogglePublish flips isPublished server side with an update pipeline.
func (r *videoRepository) TogglePublish(ctx context.Context, id primitive.ObjectID) (*models.Video, error) {
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "isPublished", Value: bson.D{{Key: "$not", Value: bson.A{"$isPublished"}}}},
			{Key: "updatedAt", Value: "$$NOW"},
		}}},
	}
	return r.findOneAndUpdate(ctx, id, update, "toggle publish")
}

func (r *videoRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Video, error) {
	var video models.Video
	err := r.coll.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&video)
	return r.single(&video, err, "delete video")
}

func (r *videoRepository) findOneAndUpdate(ctx context.Context, id primitive.ObjectID, update interface{}, op string) (*models.Video, error) {
	var video models.Video
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&video)
	return r.single(&video, err, op)
}

func (r *videoRepository) single(video *models.Video, err error, op string) (*models.Video, error) {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, common.NotFound("video not found")
	}
	if err != nil {
		return nil, common.StoreFailure(err, op)
	}
	return video, nil
}
