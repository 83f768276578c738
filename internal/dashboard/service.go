package dashboard

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/thehamzasani/primeTube/internal/models"
)

//go:generate mockgen -source=service.go -destination=mock_service.go -package=dashboard

type DashboardService interface {
	GetChannelStats(ctx context.Context, userID primitive.ObjectID) (*models.ChannelStats, error)
	GetChannelVideos(ctx context.Context, channelID primitive.ObjectID) ([]models.Video, error)
}

type dashboardService struct {
	repo DashboardRepository
}

func NewDashboardService(repo DashboardRepository) DashboardService {
	return &dashboardService{repo: repo}
}

// GetChannelStats merges the channel's profile row with its video totals.
func (s *dashboardService) GetChannelStats(ctx context.Context, userID primitive.ObjectID) (*models.ChannelStats, error) {
	profile, err := s.repo.ChannelProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	totals, err := s.repo.VideoTotals(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &models.ChannelStats{VideoTotals: totals, ChannelProfile: *profile}, nil
}

func (s *dashboardService) GetChannelVideos(ctx context.Context, channelID primitive.ObjectID) ([]models.Video, error) {
	return s.repo.ChannelVideos(ctx, channelID)
}
