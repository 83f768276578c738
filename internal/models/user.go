// Package models holds the documents stored in the primetube database.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	UsersCollection         = "users"
	VideosCollection        = "videos"
	CommentsCollection      = "comments"
	SubscriptionsCollection = "subscriptions"
	LikesCollection         = "likes"
)

// User is also a channel: every user can own videos and be subscribed to.
type User struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Username     string             `json:"username" bson:"username"`
	Email        string             `json:"email" bson:"email"`
	FullName     string             `json:"fullName" bson:"fullName"`
	Avatar       string             `json:"avatar" bson:"avatar"`
	CoverImage   string             `json:"coverImage,omitempty" bson:"coverImage,omitempty"`
	PasswordHash string             `json:"-" bson:"password"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// OwnerSummary is the denormalized user embedded in video and comment listings.
// Unresolved is set when the owner reference points at no user.
type OwnerSummary struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id"`
	Username   string             `json:"username,omitempty" bson:"username,omitempty"`
	FullName   string             `json:"fullName,omitempty" bson:"fullName,omitempty"`
	Avatar     string             `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Unresolved bool               `json:"unresolved,omitempty" bson:"unresolved,omitempty"`
}

// Subscription is a directed follows edge: Subscriber follows Channel.
type Subscription struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Subscriber primitive.ObjectID `json:"subscriber" bson:"subscriber"`
	Channel    primitive.ObjectID `json:"channel" bson:"channel"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Like targets a video (or a comment) and records who liked it.
type Like struct {
	ID        primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	Video     *primitive.ObjectID `json:"video,omitempty" bson:"video,omitempty"`
	Comment   *primitive.ObjectID `json:"comment,omitempty" bson:"comment,omitempty"`
	LikedBy   primitive.ObjectID  `json:"likedBy" bson:"likedBy"`
	CreatedAt time.Time           `json:"createdAt" bson:"createdAt"`
}
