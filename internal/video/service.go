package video

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/thehamzasani/primeTube/internal/common"
	"github.com/thehamzasani/primeTube/internal/dbmongo"
	"github.com/thehamzasani/primeTube/internal/models"
	"github.com/thehamzasani/primeTube/internal/pipeline"
)

//go:generate mockgen -source=service.go -destination=mock_service.go -package=video

// MediaStore is the subset of dbmongo.MediaStorage the video service uses.
type MediaStore interface {
	UploadFile(ctx context.Context, filename, mimeType, uploaderID string, content io.Reader) (*dbmongo.MediaFile, error)
	DeleteFile(ctx context.Context, fileID string) error
	FileIDFromURL(url string) (string, bool)
}

// Upload is a file received from a multipart form.
type Upload struct {
	Filename string
	MimeType string
	Content  io.Reader
}

type ListQuery struct {
	Filter pipeline.VideoFilter
	SortBy string
	Order  common.SortOrder
	Page   common.Pagination
}

type PublishInput struct {
	Title       string
	Description string
	Duration    float64
	VideoFile   *Upload
	Thumbnail   *Upload
}

type UpdateInput struct {
	Title       *string
	Description *string
	Thumbnail   *Upload
}

type VideoService interface {
	ListVideos(ctx context.Context, q ListQuery) (pipeline.Page[models.VideoWithOwner], error)
	PublishVideo(ctx context.Context, ownerID primitive.ObjectID, in PublishInput) (*models.Video, error)
	GetVideo(ctx context.Context, videoID primitive.ObjectID) (*models.Video, error)
	UpdateVideo(ctx context.Context, userID, videoID primitive.ObjectID, in UpdateInput) (*models.Video, error)
	DeleteVideo(ctx context.Context, userID, videoID primitive.ObjectID) (*models.Video, error)
	TogglePublish(ctx context.Context, userID, videoID primitive.ObjectID) (*models.Video, error)
}

type videoService struct {
	repo  VideoRepository
	media MediaStore
}

func NewVideoService(repo VideoRepository, media MediaStore) VideoService {
	return &videoService{repo: repo, media: media}
}

func (s *videoService) ListVideos(ctx context.Context, q ListQuery) (pipeline.Page[models.VideoWithOwner], error) {
	return s.repo.List(ctx, q.Filter, q.SortBy, q.Order, q.Page)
}

func (s *videoService) PublishVideo(ctx context.Context, ownerID primitive.ObjectID, in PublishInput) (*models.Video, error) {
	if err := common.RequireField("title", in.Title); err != nil {
		return nil, err
	}
	if err := common.RequireField("description", in.Description); err != nil {
		return nil, err
	}
	if in.VideoFile == nil {
		return nil, common.MissingField("videoFile")
	}
	if in.Thumbnail == nil {
		return nil, common.MissingField("thumbnail")
	}
	if in.Duration < 0 {
		return nil, common.InvalidParameter("duration must not be negative")
	}
	if err := common.ExpectFileType("videoFile", in.VideoFile.MimeType, common.MediaFileTypeVideo); err != nil {
		return nil, err
	}
	if err := common.ExpectFileType("thumbnail", in.Thumbnail.MimeType, common.MediaFileTypeImage); err != nil {
		return nil, err
	}

	videoFile, err := s.upload(ctx, ownerID, in.VideoFile, "Error while uploading video")
	if err != nil {
		return nil, err
	}
	thumbnail, err := s.upload(ctx, ownerID, in.Thumbnail, "Error while uploading thumbnail")
	if err != nil {
		s.discard(ctx, videoFile.ID)
		return nil, err
	}

	video := &models.Video{
		VideoFile:   videoFile.URL,
		Thumbnail:   thumbnail.URL,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Duration:    in.Duration,
		IsPublished: true,
		Owner:       ownerID,
	}
	if err := s.repo.Create(ctx, video); err != nil {
		s.discard(ctx, videoFile.ID)
		s.discard(ctx, thumbnail.ID)
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"video_id": video.ID.Hex(), "owner": ownerID.Hex()}).Info("video published")
	return video, nil
}

// GetVideo returns the video and counts the fetch as a view.
func (s *videoService) GetVideo(ctx context.Context, videoID primitive.ObjectID) (*models.Video, error) {
	return s.repo.IncrementViews(ctx, videoID)
}

func (s *videoService) UpdateVideo(ctx context.Context, userID, videoID primitive.ObjectID, in UpdateInput) (*models.Video, error) {
	patch := models.VideoPatch{}
	if in.Title != nil {
		if err := common.RequireField("title", *in.Title); err != nil {
			return nil, err
		}
		title := strings.TrimSpace(*in.Title)
		patch.Title = &title
	}
	if in.Description != nil {
		if err := common.RequireField("description", *in.Description); err != nil {
			return nil, err
		}
		description := strings.TrimSpace(*in.Description)
		patch.Description = &description
	}
	if in.Thumbnail != nil {
		if err := common.ExpectFileType("thumbnail", in.Thumbnail.MimeType, common.MediaFileTypeImage); err != nil {
			return nil, err
		}
	}
	if patch.IsEmpty() && in.Thumbnail == nil {
		return nil, common.MissingField("title, description or thumbnail")
	}

	existing, err := s.ownedVideo(ctx, userID, videoID)
	if err != nil {
		return nil, err
	}

	var newThumb *dbmongo.MediaFile
	if in.Thumbnail != nil {
		newThumb, err = s.upload(ctx, userID, in.Thumbnail, "File not uploaded try again")
		if err != nil {
			return nil, err
		}
		patch.Thumbnail = &newThumb.URL
	}

	updated, err := s.repo.Update(ctx, videoID, patch)
	if err != nil {
		if newThumb != nil {
			s.discard(ctx, newThumb.ID)
		}
		return nil, err
	}

	if newThumb != nil {
		s.discardURL(ctx, existing.Thumbnail)
	}
	return updated, nil
}

func (s *videoService) DeleteVideo(ctx context.Context, userID, videoID primitive.ObjectID) (*models.Video, error) {
	if _, err := s.ownedVideo(ctx, userID, videoID); err != nil {
		return nil, err
	}

	deleted, err := s.repo.Delete(ctx, videoID)
	if err != nil {
		return nil, err
	}

	s.discardURL(ctx, deleted.VideoFile)
	s.discardURL(ctx, deleted.Thumbnail)
	return deleted, nil
}

func (s *videoService) TogglePublish(ctx context.Context, userID, videoID primitive.ObjectID) (*models.Video, error) {
	if _, err := s.ownedVideo(ctx, userID, videoID); err != nil {
		return nil, err
	}
	return s.repo.TogglePublish(ctx, videoID)
}

// ownedVideo loads the video and checks that userID owns it.
func (s *videoService) ownedVideo(ctx context.Context, userID, videoID primitive.ObjectID) (*models.Video, error) {
	video, err := s.repo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video.Owner != userID {
		return nil, common.Forbidden("you are not the owner of this video")
	}
	return video, nil
}

func (s *videoService) upload(ctx context.Context, ownerID primitive.ObjectID, u *Upload, failure string) (*dbmongo.MediaFile, error) {
	file, err := s.media.UploadFile(ctx, u.Filename, u.MimeType, ownerID.Hex(), u.Content)
	if err != nil {
		return nil, common.UpstreamFailure(http.StatusBadGateway, failure, err)
	}
	return file, nil
}

// discard removes a stored file. Failures leave an orphan and are only logged.
func (s *videoService) discard(ctx context.Context, fileID string) {
	if err := s.media.DeleteFile(ctx, fileID); err != nil {
		logrus.WithError(err).WithField("file_id", fileID).Warn("failed to remove stored file")
	}
}

func (s *videoService) discardURL(ctx context.Context, url string) {
	if fileID, ok := s.media.FileIDFromURL(url); ok {
		s.discard(ctx, fileID)
	}
}
