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
	"github.com/thehamzasani/primeTube/internal/dbmongo"
	"github.com/thehamzasani/primeTube/internal/wire"
)

func main() {
	// config.LoadConfig inside the injector loads .env first
	app, cleanup, err := wire.InitializeApplication()
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize application")
	}
	defer cleanup()

	common.SetupLogger(app.Config.Logging.Level, app.Config.Logging.Format)

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 30*time.Second)
	if err := dbmongo.EnsureIndexes(indexCtx, app.Mongo.Database); err != nil {
		logrus.WithError(err).Warn("index bootstrap failed")
	}
	cancelIndex()

	server := &http.Server{
		Addr:           app.Config.Addr(),
		Handler:        common.LoggingMiddleware(common.CORSMiddleware(setupRouter(app))),
		ReadTimeout:    time.Duration(app.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(app.Config.Server.WriteTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	go func() {
		logrus.WithFields(logrus.Fields{
			"addr":        server.Addr,
			"environment": app.Config.Server.Environment,
		}).Info("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("server forced to shutdown")
	}

	logrus.Info("server gracefully stopped")
}

func setupRouter(app *wire.Application) *mux.Router {
	router := mux.NewRouter()

	router.Use(mux.MiddlewareFunc(common.TimeoutMiddleware(time.Duration(app.Config.Server.RequestTimeout) * time.Second)))

	router.HandleFunc("/health", healthCheckHandler).Methods(http.MethodGet)
	app.Media.Register(router)

	auth := mux.MiddlewareFunc(common.AuthMiddleware(app.Tokens))
	app.Videos.Register(router, auth)
	app.Comments.Register(router, auth)
	app.Dashboard.Register(router, auth)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		common.WriteError(w, r, common.NotFound("route %s %s not found", r.Method, r.URL.Path))
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		common.WriteError(w, r, common.MethodNotAllowed(r.Method, r.URL.Path))
	})

	return router
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	common.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "primetube",
	}, "OK")
}
