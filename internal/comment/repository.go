package comment

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

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=comment

type CommentRepository interface {
	ListByVideo(ctx context.Context, videoID primitive.ObjectID, page common.Pagination) (pipeline.Page[models.CommentWithOwner], error)
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*models.Comment, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Comment, error)
	VideoExists(ctx context.Context, videoID primitive.ObjectID) (bool, error)
}

type commentRepository struct {
	comments *mongo.Collection
	videos   *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) CommentRepository {
	return &commentRepository{
		comments: db.Collection(models.CommentsCollection),
		videos:   db.Collection(models.VideosCollection),
	}
}

func (r *commentRepository) ListByVideo(ctx context.Context, videoID primitive.ObjectID, page common.Pagination) (pipeline.Page[models.CommentWithOwner], error) {
	cursor, err := r.comments.Aggregate(ctx, pipeline.VideoComments(videoID, page))
	if err != nil {
		return pipeline.Page[models.CommentWithOwner]{}, common.StoreFailure(err, "aggregate comments")
	}
	defer cursor.Close(ctx)

	var facet pipeline.FacetResult[models.CommentWithOwner]
	if cursor.Next(ctx) {
		if err := cursor.Decode(&facet); err != nil {
			return pipeline.Page[models.CommentWithOwner]{}, common.StoreFailure(err, "decode comment page")
		}
	}
	if err := cursor.Err(); err != nil {
		return pipeline.Page[models.CommentWithOwner]{}, common.StoreFailure(err, "iterate comments")
	}
	return pipeline.FromFacet(facet, page), nil
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	now := time.Now().UTC()
	if comment.ID.IsZero() {
		comment.ID = primitive.NewObjectID()
	}
	comment.CreatedAt = now
	comment.UpdatedAt = now

	if _, err := r.comments.InsertOne(ctx, comment); err != nil {
		return common.StoreFailure(err, "insert comment")
	}
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	var comment models.Comment
	err := r.comments.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&comment)
	return single(&comment, err, "find comment")
}

func (r *commentRepository) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*models.Comment, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "content", Value: content},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var comment models.Comment
	err := r.comments.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&comment)
	return single(&comment, err, "update comment")
}

func (r *commentRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	var comment models.Comment
	err := r.comments.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&comment)
	return single(&comment, err, "delete comment")
}

func (r *commentRepository) VideoExists(ctx context.Context, videoID primitive.ObjectID) (bool, error) {
	n, err := r.videos.CountDocuments(ctx, bson.D{{Key: "_id", Value: videoID}}, options.Count().SetLimit(1))
	if err != nil {
		return false, common.StoreFailure(err, "count videos")
	}
	return n > 0, nil
}

func single(comment *models.Comment, err error, op string) (*models.Comment, error) {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, common.NotFound("comment not found")
	}
	if err != nil {
		return nil, common.StoreFailure(err, op)
	}
	return comment, nil
}
