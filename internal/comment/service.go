package comment

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/thehamzasani/primeTube/internal/common"
	"github.com/thehamzasani/primeTube/internal/models"
	"github.com/thehamzasani/primeTube/internal/pipeline"
)

//go:generate mockgen -source=service.go -destination=mock_service.go -package=comment

type CommentService interface {
	ListComments(ctx context.Context, videoID primitive.ObjectID, page common.Pagination) (pipeline.Page[models.CommentWithOwner], error)
	AddComment(ctx context.Context, userID, videoID primitive.ObjectID, content string) (*models.Comment, error)
	UpdateComment(ctx context.Context, userID, commentID primitive.ObjectID, content string) (*models.Comment, error)
	DeleteComment(ctx context.Context, userID, commentID primitive.ObjectID) (*models.Comment, error)
}

type commentService struct {
	repo CommentRepository
}

func NewCommentService(repo CommentRepository) CommentService {
	return &commentService{repo: repo}
}

// ListComments pages through a video's comments. An unknown video is an empty page.
func (s *commentService) ListComments(ctx context.Context, videoID primitive.ObjectID, page common.Pagination) (pipeline.Page[models.CommentWithOwner], error) {
	return s.repo.ListByVideo(ctx, videoID, page)
}

func (s *commentService) AddComment(ctx context.Context, userID, videoID primitive.ObjectID, content string) (*models.Comment, error) {
	if err := common.RequireField("content", content); err != nil {
		return nil, err
	}

	exists, err := s.repo.VideoExists(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.NotFound("video not found")
	}

	comment := &models.Comment{
		Content: strings.TrimSpace(content),
		Video:   videoID,
		Owner:   userID,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"comment_id": comment.ID.Hex(),
		"video_id":   videoID.Hex(),
	}).Debug("comment added")
	return comment, nil
}

func (s *commentService) UpdateComment(ctx context.Context, userID, commentID primitive.ObjectID, content string) (*models.Comment, error) {
	if err := common.RequireField("content", content); err != nil {
		return nil, err
	}
	if _, err := s.ownedComment(ctx, userID, commentID); err != nil {
		return nil, err
	}
	return s.repo.UpdateContent(ctx, commentID, strings.TrimSpace(content))
}

func (s *commentService) DeleteComment(ctx context.Context, userID, commentID primitive.ObjectID) (*models.Comment, error) {
	if _, err := s.ownedComment(ctx, userID, commentID); err != nil {
		return nil, err
	}
	return s.repo.Delete(ctx, commentID)
}

func (s *commentService) ownedComment(ctx context.Context, userID, commentID primitive.ObjectID) (*models.Comment, error) {
	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.Owner != userID {
		return nil, common.Forbidden("you are not the owner of this comment")
	}
	return comment, nil
}
