package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/thehamzasani/primeTube/internal/comment"
	"github.com/thehamzasani/primeTube/internal/common"
	"github.com/thehamzasani/primeTube/internal/config"
	"github.com/thehamzasani/primeTube/internal/dashboard"
	"github.com/thehamzasani/primeTube/internal/media"
	"github.com/thehamzasani/primeTube/internal/models"
	"github.com/thehamzasani/primeTube/internal/video"
	"github.com/thehamzasani/primeTube/internal/wire"
)

func testApp(ctrl *gomock.Controller) (*wire.Application, *video.MockVideoService) {
	videos := video.NewMockVideoService(ctrl)
	return &wire.Application{
		Config:    &config.Config{Server: config.ServerConfig{RequestTimeout: 5}},
		Tokens:    common.NewTokenManager("secret", "primetube", time.Hour),
		Videos:    video.NewHandler(videos, 1<<20),
		Comments:  comment.NewHandler(comment.NewMockCommentService(ctrl)),
		Dashboard: dashboard.NewHandler(dashboard.NewMockDashboardService(ctrl)),
		Media:     media.NewHTTPServer(nil),
	}, videos
}

func TestSetupRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	app, videos := testApp(ctrl)
	handler := common.LoggingMiddleware(common.CORSMiddleware(setupRouter(app)))

	tests := []struct {
		name   string
		method string
		target string
		setup  func()
		want   int
	}{
		{name: "health", method: http.MethodGet, target: "/health", setup: func() {}, want: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, target: "/nope", setup: func() {}, want: http.StatusNotFound},
		{name: "wrong method", method: http.MethodPut, target: "/videos", setup: func() {}, want: http.StatusMethodNotAllowed},
		{name: "preflight", method: http.MethodOptions, target: "/videos", setup: func() {}, want: http.StatusOK},
		{name: "stats need auth", method: http.MethodGet, target: "/dashboard/stats", setup: func() {}, want: http.StatusUnauthorized},
		{name: "comment needs auth", method: http.MethodPost, target: "/videos/" + primitive.NewObjectID().Hex() + "/comments", setup: func() {}, want: http.StatusUnauthorized},
		{name: "bad media id", method: http.MethodGet, target: "/media/zzz", setup: func() {}, want: http.StatusBadRequest},
		{
			name:   "public video fetch",
			method: http.MethodGet,
			target: "/videos/5f1d7f3e9d1b2c3a4b5c6d7e",
			setup: func() {
				videos.EXPECT().GetVideo(gomock.Any(), gomock.Any()).Return(&models.Video{}, nil)
			},
			want: http.StatusOK,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.target, nil))
			assert.Equal(t, tc.want, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestSetupRouter_ErrorsUseEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	app, _ := testApp(ctrl)
	router := setupRouter(app)

	tests := []struct {
		method, target string
		want           int
		message        string
	}{
		{http.MethodPut, "/videos", http.StatusMethodNotAllowed, "method PUT not allowed on /videos"},
		{http.MethodPost, "/dashboard/videos/5f1d7f3e9d1b2c3a4b5c6d7e", http.StatusMethodNotAllowed, "method POST not allowed on /dashboard/videos/5f1d7f3e9d1b2c3a4b5c6d7e"},
		{http.MethodGet, "/nope", http.StatusNotFound, "route GET /nope not found"},
	}
	for _, tc := range tests {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.target, nil))
			assert.Equal(t, tc.want, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

			var body common.APIResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.want, body.StatusCode)
			assert.Equal(t, tc.message, body.Message)
			assert.False(t, body.Success)
		})
	}
}
