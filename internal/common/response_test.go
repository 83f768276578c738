package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestWriteJSON_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusOK, map[string]int{"n": 1}, "ok")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "ok", resp.Message)
	assert.True(t, resp.Success)
	assert.Equal(t, map[string]interface{}{"n": float64(1)}, resp.Data)
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"missing field", MissingField("content"), http.StatusBadRequest, "content is required"},
		{"not found", NotFound("video not found"), http.StatusNotFound, "video not found"},
		{"forbidden", Forbidden("not your video"), http.StatusForbidden, "not your video"},
		{"upstream", UpstreamFailure(http.StatusBadGateway, "upload failed", errors.New("boom")), http.StatusBadGateway, "upload failed"},
		{"unknown", errors.New("driver exploded"), http.StatusInternalServerError, "Something went wrong"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			WriteError(rec, req, tc.err)

			assert.Equal(t, tc.wantStatus, rec.Code)
			resp := decodeEnvelope(t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			assert.Equal(t, tc.wantMsg, resp.Message)
			assert.Nil(t, resp.Data)
		})
	}
}

func TestAPIError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := UpstreamFailure(http.StatusInternalServerError, "store failed", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
	assert.True(t, IsKind(err, KindUpstreamFailure))
	assert.False(t, IsKind(errors.New("x"), KindUpstreamFailure))
}
