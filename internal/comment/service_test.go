package comment

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/thehamzasani/primeTube/internal/common"
	"github.com/thehamzasani/primeTube/internal/models"
	"github.com/thehamzasani/primeTube/internal/pipeline"
)

func TestCommentService_ListComments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockCommentRepository(ctrl)
	svc := NewCommentService(repo)
	ctx := context.Background()

	videoID := primitive.NewObjectID()
	page := common.Pagination{Page: 1, Limit: 10}
	repo.EXPECT().ListByVideo(ctx, videoID, page).
		Return(pipeline.NewPage[models.CommentWithOwner](nil, 0, page), nil)

	got, err := svc.ListComments(ctx, videoID, page)
	require.NoError(t, err)
	assert.Empty(t, got.Docs)
	assert.Zero(t, got.TotalDocs)
}

func TestCommentService_AddComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockCommentRepository(ctrl)
	svc := NewCommentService(repo)
	ctx := context.Background()

	user := primitive.NewObjectID()
	videoID := primitive.NewObjectID()

	tests := []struct {
		name     string
		content  string
		setup    func()
		wantKind common.ErrorKind
	}{
		{
			name:     "empty content",
			content:  "   ",
			setup:    func() {},
			wantKind: common.KindMissingField,
		},
		{
			name:    "unknown video",
			content: "nice",
			setup: func() {
				repo.EXPECT().VideoExists(ctx, videoID).Return(false, nil)
			},
			wantKind: common.KindNotFound,
		},
		{
			name:    "lookup fails",
			content: "nice",
			setup: func() {
				repo.EXPECT().VideoExists(ctx, videoID).
					Return(false, common.StoreFailure(errors.New("timeout"), "count videos"))
			},
			wantKind: common.KindUpstreamFailure,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			comment, err := svc.AddComment(ctx, user, videoID, tc.content)
			assert.Nil(t, comment)
			assert.True(t, common.IsKind(err, tc.wantKind), "got %v", err)
		})
	}

	t.Run("created", func(t *testing.T) {
		repo.EXPECT().VideoExists(ctx, videoID).Return(true, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *models.Comment) error {
			c.ID = primitive.NewObjectID()
			return nil
		})

		comment, err := svc.AddComment(ctx, user, videoID, "  great video ")
		require.NoError(t, err)
		assert.Equal(t, "great video", comment.Content)
		assert.Equal(t, videoID, comment.Video)
		assert.Equal(t, user, comment.Owner)
		assert.False(t, comment.ID.IsZero())
	})
}

func TestCommentService_UpdateComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockCommentRepository(ctrl)
	svc := NewCommentService(repo)
	ctx := context.Background()

	owner := primitive.NewObjectID()
	id := primitive.NewObjectID()
	existing := &models.Comment{ID: id, Owner: owner, Content: "old"}

	_, err := svc.UpdateComment(ctx, owner, id, "")
	assert.True(t, common.IsKind(err, common.KindMissingField))

	repo.EXPECT().GetByID(ctx, id).Return(nil, common.NotFound("comment not found"))
	_, err = svc.UpdateComment(ctx, owner, id, "new")
	assert.True(t, common.IsKind(err, common.KindNotFound))

	repo.EXPECT().GetByID(ctx, id).Return(existing, nil)
	_, err = svc.UpdateComment(ctx, primitive.NewObjectID(), id, "new")
	assert.True(t, common.IsKind(err, common.KindForbidden))

	repo.EXPECT().GetByID(ctx, id).Return(existing, nil)
	repo.EXPECT().UpdateContent(ctx, id, "new").Return(&models.Comment{ID: id, Owner: owner, Content: "new"}, nil)
	comment, err := svc.UpdateComment(ctx, owner, id, " new ")
	require.NoError(t, err)
	assert.Equal(t, "new", comment.Content)
}

func TestCommentService_DeleteComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockCommentRepository(ctrl)
	svc := NewCommentService(repo)
	ctx := context.Background()

	owner := primitive.NewObjectID()
	id := primitive.NewObjectID()
	existing := &models.Comment{ID: id, Owner: owner}

	repo.EXPECT().GetByID(ctx, id).Return(nil, common.NotFound("comment not found"))
	_, err := svc.DeleteComment(ctx, owner, id)
	assert.True(t, common.IsKind(err, common.KindNotFound))

	repo.EXPECT().GetByID(ctx, id).Return(existing, nil)
	_, err = svc.DeleteComment(ctx, primitive.NewObjectID(), id)
	assert.True(t, common.IsKind(err, common.KindForbidden))

	repo.EXPECT().GetByID(ctx, id).Return(existing, nil)
	repo.EXPECT().Delete(ctx, id).Return(existing, nil)
	deleted, err := svc.DeleteComment(ctx, owner, id)
	require.NoError(t, err)
	assert.Equal(t, id, deleted.ID)
}
