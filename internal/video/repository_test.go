package video

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/thehamzasani/primeTube/internal/common"
	"github.com/thehamzasani/primeTube/internal/models"
	"github.com/thehamzasani/primeTube/internal/pipeline"
)

const videosNS = "primetube.videos"

func videoDoc(id, owner primitive.ObjectID, title string, views int64, published bool) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "videoFile", Value: "http://localhost:8000/media/vf"},
		{Key: "thumbnail", Value: "http://localhost:8000/media/th"},
		{Key: "title", Value: title},
		{Key: "description", Value: "desc"},
		{Key: "duration", Value: 12.5},
		{Key: "views", Value: views},
		{Key: "isPublished", Value: published},
		{Key: "owner", Value: owner},
		{Key: "createdAt", Value: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{Key: "updatedAt", Value: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
	}
}

func TestVideoRepository_List(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes the facet row", func(mt *mtest.T) {
		repo := NewVideoRepository(mt.DB)
		owner := primitive.NewObjectID()
		row := bson.D{
			{Key: "docs", Value: bson.A{
				bson.D{
					{Key: "_id", Value: primitive.NewObjectID()},
					{Key: "title", Value: "Cats"},
					{Key: "views", Value: int64(9)},
					{Key: "owner", Value: bson.D{
						{Key: "_id", Value: owner},
						{Key: "username", Value: "alice"},
						{Key: "avatar", Value: "a.png"},
					}},
				},
			}},
			{Key: "total", Value: bson.A{bson.D{{Key: "count", Value: int64(11)}}}},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, videosNS, mtest.FirstBatch, row))

		page, err := repo.List(context.Background(), pipeline.VideoFilter{}, "createdAt", common.SortDesc,
			common.Pagination{Page: 2, Limit: 5})
		require.NoError(mt, err)
		require.Len(mt, page.Docs, 1)
		assert.Equal(mt, "Cats", page.Docs[0].Title)
		assert.Equal(mt, "alice", page.Docs[0].Owner.Username)
		assert.False(mt, page.Docs[0].Owner.Unresolved)
		assert.Equal(mt, int64(11), page.TotalDocs)
		assert.Equal(mt, int64(3), page.TotalPages)
		assert.True(mt, page.HasPrevPage)
		assert.True(mt, page.HasNextPage)
	})

	mt.Run("empty result is an empty page", func(mt *mtest.T) {
		repo := NewVideoRepository(mt.DB)
		row := bson.D{{Key: "docs", Value: bson.A{}}, {Key: "total", Value: bson.A{}}}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, videosNS, mtest.FirstBatch, row))

		page, err := repo.List(context.Background(), pipeline.VideoFilter{Query: "nothing"}, "title", common.SortAsc,
			common.Pagination{Page: 1, Limit: 10})
		require.NoError(mt, err)
		assert.Empty(mt, page.Docs)
		assert.NotNil(mt, page.Docs)
		assert.Zero(mt, page.TotalDocs)
		assert.False(mt, page.HasNextPage)
	})

	mt.Run("store error", func(mt *mtest.T) {
		repo := NewVideoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad pipeline"}))

		_, err := repo.List(context.Background(), pipeline.VideoFilter{}, "createdAt", common.SortDesc,
			common.Pagination{Page: 1, Limit: 10})
		assert.True(mt, common.IsKind(err, common.KindUpstreamFailure))
	})
}

func TestVideoRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns id and timestamps", func(mt *mtest.T) {
		repo := NewVideoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		video := &models.Video{Title: "t", Owner: primitive.NewObjectID()}
		require.NoError(mt, repo.Create(context.Background(), video))
		assert.False(mt, video.ID.IsZero())
		assert.False(mt, video.CreatedAt.IsZero())
		assert.Equal(mt, video.CreatedAt, video.UpdatedAt)
	})

	mt.Run("write error", func(mt *mtest.T) {
		repo := NewVideoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}))

		err := repo.Create(context.Background(), &models.Video{Title: "t"})
		assert.True(mt, common.IsKind(err, common.KindUpstreamFailure))
	})
}

func TestVideoRepository_GetByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := NewVideoRepository(mt.DB)
		id, owner := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, videosNS, mtest.FirstBatch, videoDoc(id, owner, "Cats", 3, true)))

		video, err := repo.GetByID(context.Background(), id)
		require.NoError(mt, err)
		assert.Equal(mt, id, video.ID)
		assert.Equal(mt, owner, video.Owner)
		assert.Equal(mt, int64(3), video.Views)
	})

	mt.Run("missing", func(mt *mtest.T) {
		repo := NewVideoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, videosNS, mtest.FirstBatch))

		_, err := repo.GetByID(context.Background(), primitive.NewObjectID())
		assert.True(mt, common.IsKind(err, common.KindNotFound))
	})
}

func TestVideoRepository_FindAndModify(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("increment views returns the new document", func(mt *mtest.T) {
		repo := NewVideoRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "value", Value: videoDoc(id, primitive.NewObjectID(), "Cats", 4, true)},
		))

		video, err := repo.IncrementViews(context.Background(), id)
		require.NoError(mt, err)
		assert.Equal(mt, int64(4), video.Views)
	})

	mt.Run("toggle publish", func(mt *mtest.T) {
		repo := NewVideoRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "value", Value: videoDoc(id, primitive.NewObjectID(), "Cats", 0, false)},
		))

		video, err := repo.TogglePublish(context.Background(), id)
		require.NoError(mt, err)
		assert.False(mt, video.IsPublished)
	})

	mt.Run("update of a missing video", func(mt *mtest.T) {
		repo := NewVideoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		title := "new"
		_, err := repo.Update(context.Background(), primitive.NewObjectID(), models.VideoPatch{Title: &title})
		assert.True(mt, common.IsKind(err, common.KindNotFound))
	})

	mt.Run("delete returns the removed document", func(mt *mtest.T) {
		repo := NewVideoRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "value", Value: videoDoc(id, primitive.NewObjectID(), "Gone", 0, true)},
		))

		video, err := repo.Delete(context.Background(), id)
		require.NoError(mt, err)
		assert.Equal(mt, "Gone", video.Title)
	})

	mt.Run("delete of a missing video", func(mt *mtest.T) {
		repo := NewVideoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.Delete(context.Background(), primitive.NewObjectID())
		assert.True(mt, common.IsKind(err, common.KindNotFound))
	})
}
