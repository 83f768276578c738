package pipeline

import (
	"github.com/thehamzasani/primeTube/internal/common"
	"github.com/thehamzasani/primeTube/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ownerSummaryFields = bson.D{
	{Key: "owner._id", Value: 1},
	{Key: "owner.username", Value: 1},
	{Key: "owner.fullName", Value: 1},
	{Key: "owner.avatar", Value: 1},
	{Key: "owner.unresolved", Value: 1},
}

func withOwner(fields ...bson.E) bson.D {
	out := bson.D(fields)
	return append(out, ownerSummaryFields...)
}

// VideoList is the search/list pipeline: match on title/owner, join the owner,
// shape, sort, then paginate with a total count.
func VideoList(filter VideoFilter, sortBy string, order common.SortOrder, p common.Pagination) mongo.Pipeline {
	return New().
		Match(filter.Build()).
		LookupOne(models.UsersCollection, "owner").
		Project(withOwner(
			bson.E{Key: "videoFile", Value: 1},
			bson.E{Key: "thumbnail", Value: 1},
			bson.E{Key: "title", Value: 1},
			bson.E{Key: "description", Value: 1},
			bson.E{Key: "duration", Value: 1},
			bson.E{Key: "views", Value: 1},
			bson.E{Key: "isPublished", Value: 1},
			bson.E{Key: "createdAt", Value: 1},
			bson.E{Key: "updatedAt", Value: 1},
		)).
		Sort(sortBy, order).
		PaginateWithCount(p).
		Pipeline()
}

// VideoComments lists a video's comments newest first with the commenter joined.
func VideoComments(videoID primitive.ObjectID, p common.Pagination) mongo.Pipeline {
	return New().
		Match(ByField("video", videoID)).
		LookupOne(models.UsersCollection, "owner").
		Project(withOwner(
			bson.E{Key: "content", Value: 1},
			bson.E{Key: "createdAt", Value: 1},
		)).
		Sort("createdAt", common.SortDesc).
		PaginateWithCount(p).
		Pipeline()
}

// ChannelVideoTotals sums views and likes and counts videos owned by ownerID.
// It yields no rows when the channel has no videos.
func ChannelVideoTotals(ownerID primitive.ObjectID) mongo.Pipeline {
	return New().
		Match(ByField("owner", ownerID)).
		Lookup(models.LikesCollection, "_id", "video", "likes").
		Group(bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalViews", Value: bson.D{{Key: "$sum", Value: "$views"}}},
			{Key: "totalLikes", Value: bson.D{{Key: "$sum", Value: CountOf("likes")}}},
			{Key: "totalVideos", Value: bson.D{{Key: "$sum", Value: 1}}},
		}).
		Project(bson.D{
			{Key: "_id", Value: 0},
			{Key: "totalViews", Value: 1},
			{Key: "totalLikes", Value: 1},
			{Key: "totalVideos", Value: 1},
		}).
		Pipeline()
}

// ChannelProfile loads a user with subscriber and subscription counts.
func ChannelProfile(userID primitive.ObjectID) mongo.Pipeline {
	return New().
		Match(ByField("_id", userID)).
		Lookup(models.SubscriptionsCollection, "_id", "channel", "subscribers").
		Lookup(models.SubscriptionsCollection, "_id", "subscriber", "subscribedTo").
		AddFields(bson.D{
			{Key: "subscribersCount", Value: CountOf("subscribers")},
			{Key: "channelsSubscribedToCount", Value: CountOf("subscribedTo")},
		}).
		Project(bson.D{
			{Key: "username", Value: 1},
			{Key: "fullName", Value: 1},
			{Key: "email", Value: 1},
			{Key: "avatar", Value: 1},
			{Key: "coverImage", Value: 1},
			{Key: "subscribersCount", Value: 1},
			{Key: "channelsSubscribedToCount", Value: 1},
		}).
		Pipeline()
}

// ChannelVideos returns every video owned by ownerID, newest first.
func ChannelVideos(ownerID primitive.ObjectID) mongo.Pipeline {
	return New().
		Match(ByField("owner", ownerID)).
		Sort("createdAt", common.SortDesc).
		Pipeline()
}
