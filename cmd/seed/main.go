// Command seed loads a small fixture data set for local development: users
// with subscriptions between them, videos, comments and likes.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/thehamzasani/primeTube/internal/common"
	"github.com/thehamzasani/primeTube/internal/config"
	"github.com/thehamzasani/primeTube/internal/dbmongo"
	"github.com/thehamzasani/primeTube/internal/models"
)

func main() {
	reset := flag.Bool("reset", false, "drop the seeded collections first")
	password := flag.String("password", "password123", "password for every seeded user")
	flag.Parse()

	cfg := config.LoadConfig()
	common.SetupLogger(cfg.Logging.Level, cfg.Logging.Format)

	client, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer client.Close(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if *reset {
		if err := dropAll(ctx, client.Database); err != nil {
			logrus.WithError(err).Fatal("reset failed")
		}
	}
	if err := dbmongo.EnsureIndexes(ctx, client.Database); err != nil {
		logrus.WithError(err).Fatal("index bootstrap failed")
	}

	fx, err := buildFixtures(*password, time.Now().UTC())
	if err != nil {
		logrus.WithError(err).Fatal("failed to build fixtures")
	}
	if err := insert(ctx, client.Database, fx); err != nil {
		logrus.WithError(err).Fatal("seeding failed")
	}

	tokens := common.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, time.Duration(cfg.Auth.TokenTTL)*time.Hour)
	issued, err := issueTokens(tokens, *password, fx.users)
	if err != nil {
		logrus.WithError(err).Fatal("failed to issue tokens")
	}
	for _, u := range fx.users {
		logrus.WithFields(logrus.Fields{
			"username": u.Username,
			"userId":   u.ID.Hex(),
			"token":    issued[u.Username],
		}).Info("seeded user")
	}

	logrus.WithFields(logrus.Fields{
		"users":         len(fx.users),
		"videos":        len(fx.videos),
		"comments":      len(fx.comments),
		"subscriptions": len(fx.subscriptions),
		"likes":         len(fx.likes),
	}).Info("seed complete")
}

type fixtures struct {
	users         []models.User
	videos        []models.Video
	comments      []models.Comment
	subscriptions []models.Subscription
	likes         []models.Like
}

// buildFixtures returns three users: alice follows bob and carol, bob follows
// alice. alice owns two videos, bob owns one, carol owns none.
func buildFixtures(password string, now time.Time) (*fixtures, error) {
	hash, err := common.HashPassword(password)
	if err != nil {
		return nil, err
	}

	fx := &fixtures{}
	for _, name := range []string{"alice", "bob", "carol"} {
		fx.users = append(fx.users, models.User{
			ID:           primitive.NewObjectID(),
			Username:     name,
			Email:        name + "@example.com",
			FullName:     name,
			Avatar:       fmt.Sprintf("https://avatars.example.com/%s.png", name),
			PasswordHash: hash,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	alice, bob, carol := fx.users[0].ID, fx.users[1].ID, fx.users[2].ID

	follow := func(subscriber, channel primitive.ObjectID) {
		fx.subscriptions = append(fx.subscriptions, models.Subscription{
			ID: primitive.NewObjectID(), Subscriber: subscriber, Channel: channel, CreatedAt: now, UpdatedAt: now,
		})
	}
	follow(alice, bob)
	follow(alice, carol)
	follow(bob, alice)

	addVideo := func(owner primitive.ObjectID, title string, views int64, age time.Duration) primitive.ObjectID {
		id := primitive.NewObjectID()
		fx.videos = append(fx.videos, models.Video{
			ID:          id,
			VideoFile:   "https://cdn.example.com/videos/" + id.Hex() + ".mp4",
			Thumbnail:   "https://cdn.example.com/thumbs/" + id.Hex() + ".png",
			Title:       title,
			Description: "Seeded video: " + title,
			Duration:    90,
			Views:       views,
			IsPublished: true,
			Owner:       owner,
			CreatedAt:   now.Add(-age),
			UpdatedAt:   now.Add(-age),
		})
		return id
	}
	cats := addVideo(alice, "Cats at play", 10, 48*time.Hour)
	dogs := addVideo(alice, "Dogs at rest", 20, 24*time.Hour)
	cooking := addVideo(bob, "Cooking pasta", 30, time.Hour)

	like := func(video, by primitive.ObjectID) {
		v := video
		fx.likes = append(fx.likes, models.Like{ID: primitive.NewObjectID(), Video: &v, LikedBy: by, CreatedAt: now})
	}
	like(cats, bob)
	like(cats, carol)
	like(dogs, bob)
	like(cooking, alice)

	comment := func(video, owner primitive.ObjectID, content string, age time.Duration) {
		fx.comments = append(fx.comments, models.Comment{
			ID: primitive.NewObjectID(), Content: content, Video: video, Owner: owner,
			CreatedAt: now.Add(-age), UpdatedAt: now.Add(-age),
		})
	}
	comment(cats, bob, "So playful!", 2*time.Hour)
	comment(cats, carol, "Love it", time.Hour)
	comment(cooking, alice, "Recipe please", 30*time.Minute)

	return fx, nil
}

// issueTokens signs in every seeded user with password and returns a bearer
// token per username, so the authenticated routes can be called locally.
func issueTokens(tokens *common.TokenManager, password string, users []models.User) (map[string]string, error) {
	if tokens == nil {
		return nil, fmt.Errorf("no token manager")
	}
	issued := make(map[string]string, len(users))
	for _, u := range users {
		if err := common.CheckPassword(password, u.PasswordHash); err != nil {
			return nil, fmt.Errorf("password check for %s: %w", u.Username, err)
		}
		token, err := tokens.GenerateToken(u.ID.Hex(), u.Username)
		if err != nil {
			return nil, fmt.Errorf("sign token for %s: %w", u.Username, err)
		}
		issued[u.Username] = token
	}
	return issued, nil
}

func insert(ctx context.Context, db *mongo.Database, fx *fixtures) error {
	batches := []struct {
		collection string
		docs       []interface{}
	}{
		{models.UsersCollection, toDocs(fx.users)},
		{models.VideosCollection, toDocs(fx.videos)},
		{models.CommentsCollection, toDocs(fx.comments)},
		{models.SubscriptionsCollection, toDocs(fx.subscriptions)},
		{models.LikesCollection, toDocs(fx.likes)},
	}
	for _, b := range batches {
		if len(b.docs) == 0 {
			continue
		}
		if _, err := db.Collection(b.collection).InsertMany(ctx, b.docs); err != nil {
			return fmt.Errorf("insert into %s: %w", b.collection, err)
		}
	}
	return nil
}

func dropAll(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{
		models.UsersCollection,
		models.VideosCollection,
		models.CommentsCollection,
		models.SubscriptionsCollection,
		models.LikesCollection,
	} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			return fmt.Errorf("drop %s: %w", name, err)
		}
	}
	return nil
}

func toDocs[T any](items []T) []interface{} {
	docs := make([]interface{}, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	return docs
}
