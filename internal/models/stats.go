package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// VideoTotals is the grouped aggregate over a channel's videos.
type VideoTotals struct {
	TotalViews  int64 `json:"totalViews" bson:"totalViews"`
	TotalLikes  int64 `json:"totalLikes" bson:"totalLikes"`
	TotalVideos int64 `json:"totalVideos" bson:"totalVideos"`
}

// ChannelProfile is the user row with subscription counts joined in.
type ChannelProfile struct {
	ID                        primitive.ObjectID `json:"_id" bson:"_id"`
	Username                  string             `json:"username" bson:"username"`
	FullName                  string             `json:"fullName" bson:"fullName"`
	Email                     string             `json:"email" bson:"email"`
	Avatar                    string             `json:"avatar" bson:"avatar"`
	CoverImage                string             `json:"coverImage,omitempty" bson:"coverImage,omitempty"`
	SubscribersCount          int64              `json:"subscribersCount" bson:"subscribersCount"`
	ChannelsSubscribedToCount int64              `json:"channelsSubscribedToCount" bson:"channelsSubscribedToCount"`
}

// ChannelStats merges VideoTotals and ChannelProfile into one response row.
type ChannelStats struct {
	VideoTotals    `bson:",inline"`
	ChannelProfile `bson:",inline"`
}
