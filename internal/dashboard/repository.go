package dashboard

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/thehamzasani/primeTube/internal/common"
	"github.com/thehamzasani/primeTube/internal/models"
	"github.com/thehamzasani/primeTube/internal/pipeline"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=dashboard

type DashboardRepository interface {
	ChannelProfile(ctx context.Context, userID primitive.ObjectID) (*models.ChannelProfile, error)
	VideoTotals(ctx context.Context, ownerID primitive.ObjectID) (models.VideoTotals, error)
	ChannelVideos(ctx context.Context, ownerID primitive.ObjectID) ([]models.Video, error)
}

type dashboardRepository struct {
	users  *mongo.Collection
	videos *mongo.Collection
}

func NewDashboardRepository(db *mongo.Database) DashboardRepository {
	return &dashboardRepository{
		users:  db.Collection(models.UsersCollection),
		videos: db.Collection(models.VideosCollection),
	}
}

// ChannelProfile returns NotFound when no user has the id.
func (r *dashboardRepository) ChannelProfile(ctx context.Context, userID primitive.ObjectID) (*models.ChannelProfile, error) {
	var rows []models.ChannelProfile
	if err := r.aggregate(ctx, r.users, pipeline.ChannelProfile(userID), &rows, "channel profile"); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, common.NotFound("user not found")
	}
	return &rows[0], nil
}

// VideoTotals is all zeros for a channel without videos.
func (r *dashboardRepository) VideoTotals(ctx context.Context, ownerID primitive.ObjectID) (models.VideoTotals, error) {
	var rows []models.VideoTotals
	if err := r.aggregate(ctx, r.videos, pipeline.ChannelVideoTotals(ownerID), &rows, "channel totals"); err != nil {
		return models.VideoTotals{}, err
	}
	if len(rows) == 0 {
		return models.VideoTotals{}, nil
	}
	return rows[0], nil
}

func (r *dashboardRepository) ChannelVideos(ctx context.Context, ownerID primitive.ObjectID) ([]models.Video, error) {
	videos := []models.Video{}
	if err := r.aggregate(ctx, r.videos, pipeline.ChannelVideos(ownerID), &videos, "channel videos"); err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *dashboardRepository) aggregate(ctx context.Context, coll *mongo.Collection, p mongo.Pipeline, out interface{}, op string) error {
	cursor, err := coll.Aggregate(ctx, p)
	if err != nil {
		return common.StoreFailure(err, op)
	}
	if err := cursor.All(ctx, out); err != nil {
		return common.StoreFailure(err, op)
	}
	return nil
}
