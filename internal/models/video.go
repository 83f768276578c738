package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Video struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	VideoFile   string             `json:"videoFile" bson:"videoFile"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Duration    float64            `json:"duration" bson:"duration"`
	Views       int64              `json:"views" bson:"views"`
	IsPublished bool               `json:"isPublished" bson:"isPublished"`
	Owner       primitive.ObjectID `json:"owner" bson:"owner"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// VideoWithOwner is a listing row: the video with its owner joined in.
type VideoWithOwner struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	VideoFile   string             `json:"videoFile" bson:"videoFile"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Duration    float64            `json:"duration" bson:"duration"`
	Views       int64              `json:"views" bson:"views"`
	IsPublished bool               `json:"isPublished" bson:"isPublished"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
	Owner       OwnerSummary       `json:"owner" bson:"owner"`
}

// VideoPatch holds the fields an update may change; nil means untouched.
type VideoPatch struct {
	Title       *string
	Description *string
	Thumbnail   *string
}

func (p VideoPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Thumbnail == nil
}
