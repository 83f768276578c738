package common

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestTokens() *TokenManager {
	return NewTokenManager("test-secret", "primetube", time.Hour)
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tokens := newTestTokens()
	userID := primitive.NewObjectID().Hex()

	tok, err := tokens.GenerateToken(userID, "alice")
	require.NoError(t, err)

	claims, err := tokens.ValidToken(tok)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)

	_, err = NewTokenManager("other-secret", "primetube", time.Hour).ValidToken(tok)
	assert.Error(t, err)

	_, err = NewTokenManager("", "primetube", time.Hour).ValidToken(tok)
	assert.Error(t, err)
}

func TestTokenManager_Expired(t *testing.T) {
	tokens := NewTokenManager("test-secret", "primetube", -time.Minute)
	tok, err := tokens.GenerateToken(primitive.NewObjectID().Hex(), "bob")
	require.NoError(t, err)

	_, err = tokens.ValidToken(tok)
	assert.Error(t, err)
}

func TestAuthMiddleware(t *testing.T) {
	tokens := newTestTokens()
	userID := primitive.NewObjectID()
	valid, err := tokens.GenerateToken(userID.Hex(), "alice")
	require.NoError(t, err)
	badSubject, err := tokens.GenerateToken("nope", "alice")
	require.NoError(t, err)

	var seen primitive.ObjectID
	var seenName string
	var logged interface{}
	protected := AuthMiddleware(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserIDFromContext(r.Context())
		seenName = UsernameFromContext(r.Context())
		logged = RequestLogger(r).Data["user"]
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		setup      func(r *http.Request)
		wantStatus int
	}{
		{"no credentials", func(r *http.Request) {}, http.StatusUnauthorized},
		{"malformed header", func(r *http.Request) { r.Header.Set("Authorization", "Token abc") }, http.StatusUnauthorized},
		{"garbage token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer abc") }, http.StatusUnauthorized},
		{"bad subject", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+badSubject) }, http.StatusUnauthorized},
		{"bearer header", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+valid) }, http.StatusOK},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "accessToken", Value: valid}) }, http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seen, seenName, logged = primitive.NilObjectID, "", nil
			req := httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)
			tc.setup(req)
			rec := httptest.NewRecorder()

			protected.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, userID, seen)
				assert.Equal(t, "alice", seenName)
				assert.Equal(t, "alice", logged)
			}
		})
	}
}

func TestLoggingMiddleware_SetsRequestID(t *testing.T) {
	var inner string
	h := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, inner)
	assert.Equal(t, inner, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "fixed-id", inner)
}

func TestTimeoutMiddleware(t *testing.T) {
	var hasDeadline bool
	h := TimeoutMiddleware(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, hasDeadline)
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	called := false
	h := CORSMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/videos", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, called)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
