package wire

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/thehamzasani/primeTube/internal/comment"
	"github.com/thehamzasani/primeTube/internal/common"
	"github.com/thehamzasani/primeTube/internal/config"
	"github.com/thehamzasani/primeTube/internal/dashboard"
	"github.com/thehamzasani/primeTube/internal/dbmongo"
	"github.com/thehamzasani/primeTube/internal/media"
	"github.com/thehamzasani/primeTube/internal/video"
)

type Application struct {
	Config    *config.Config
	Mongo     *dbmongo.MongoClient
	Tokens    *common.TokenManager
	Videos    *video.Handler
	Comments  *comment.Handler
	Dashboard *dashboard.Handler
	Media     *media.HTTPServer
}

func ProvideConfig() *config.Config {
	return config.LoadConfig()
}

// ProvideMongoClient connects to MongoDB. The cleanup disconnects it.
func ProvideMongoClient(cfg *config.Config) (*dbmongo.MongoClient, func(), error) {
	client, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Close(ctx); err != nil {
			logrus.WithError(err).Warn("failed to disconnect MongoDB")
		}
	}
	return client, cleanup, nil
}

func ProvideDatabase(client *dbmongo.MongoClient) *mongo.Database {
	return client.Database
}

func ProvideMediaStorage(client *dbmongo.MongoClient, cfg *config.Config) *dbmongo.MediaStorage {
	return dbmongo.NewMediaStorage(client, cfg.Server.MediaBaseURL)
}

func ProvideTokenManager(cfg *config.Config) *common.TokenManager {
	if cfg.Auth.JWTSecret == "" {
		logrus.Warn("JWT_SECRET is empty, authenticated routes will reject every request")
	}
	return common.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, time.Duration(cfg.Auth.TokenTTL)*time.Hour)
}

func ProvideVideoHandler(svc video.VideoService, cfg *config.Config) *video.Handler {
	return video.NewHandler(svc, cfg.Server.MaxUploadMB<<20)
}
