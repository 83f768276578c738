package common

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
)

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

func NewAPIResponse(statusCode int, data interface{}, message string) APIResponse {
	return APIResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < http.StatusBadRequest,
	}
}

func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(NewAPIResponse(statusCode, data, message)); err != nil {
		logrus.WithError(err).Error("failed to encode response")
	}
}

// WriteError renders err inside the envelope. Errors that are not APIErrors are
// logged and reported as a generic 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Kind == KindUpstreamFailure {
			RequestLogger(r).WithError(apiErr.Err).Error(apiErr.Message)
		}
		WriteJSON(w, apiErr.StatusCode, nil, apiErr.Message)
		return
	}

	RequestLogger(r).WithError(err).Error("unhandled error")
	WriteJSON(w, http.StatusInternalServerError, nil, "Something went wrong")
}
