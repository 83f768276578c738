// Command media-server serves stored uploads on their own port, for deployments
// that keep file traffic off the API server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/thehamzasani/primeTube/internal/common"
	"github.com/thehamzasani/primeTube/internal/config"
	"github.com/thehamzasani/primeTube/internal/dbmongo"
	"github.com/thehamzasani/primeTube/internal/media"
)

func main() {
	cfg := config.LoadConfig()
	common.SetupLogger(cfg.Logging.Level, cfg.Logging.Format)

	mongoClient, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer mongoClient.Close(context.Background())

	storage := dbmongo.NewMediaStorage(mongoClient, cfg.Server.MediaBaseURL)
	router := mux.NewRouter()
	media.NewHTTPServer(storage).Register(router)

	addr := cfg.Server.MediaAddr
	server := &http.Server{
		Addr:        addr,
		Handler:     common.LoggingMiddleware(common.CORSMiddleware(router)),
		ReadTimeout: time.Duration(cfg.Server.ReadTimeout) * time.Second,
	}

	go func() {
		logrus.WithField("addr", addr).Info("media server starting, serving /media/{fileId}")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("media server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("media server forced to shutdown")
	}
}
