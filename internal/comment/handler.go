package comment

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/thehamzasani/primeTube/internal/common"
)

type Handler struct {
	commentService CommentService
}

func NewHandler(commentService CommentService) *Handler {
	return &Handler{commentService: commentService}
}

// Register mounts the comment routes. Listing is public.
func (h *Handler) Register(r *mux.Router, auth mux.MiddlewareFunc) {
	r.HandleFunc("/videos/{videoId}/comments", h.ListComments).Methods(http.MethodGet)
	r.Handle("/videos/{videoId}/comments", auth(http.HandlerFunc(h.AddComment))).Methods(http.MethodPost)
	r.Handle("/comments/{commentId}", auth(http.HandlerFunc(h.UpdateComment))).Methods(http.MethodPatch)
	r.Handle("/comments/{commentId}", auth(http.HandlerFunc(h.DeleteComment))).Methods(http.MethodDelete)
}

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	videoID, err := common.ParseObjectID("videoId", mux.Vars(r)["videoId"])
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	page, err := common.ParsePagination(r.URL.Query())
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	comments, err := h.commentService.ListComments(r.Context(), videoID, page)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, comments, "Successfully retrieved comments")
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, r, common.Unauthorized("user not authenticated"))
		return
	}
	videoID, err := common.ParseObjectID("videoId", mux.Vars(r)["videoId"])
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	content, err := readContent(w, r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	comment, err := h.commentService.AddComment(r.Context(), userID, videoID, content)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, comment, "Successfully commented")
}

func (h *Handler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, r, common.Unauthorized("user not authenticated"))
		return
	}
	commentID, err := common.ParseObjectID("commentId", mux.Vars(r)["commentId"])
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	content, err := readContent(w, r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	comment, err := h.commentService.UpdateComment(r.Context(), userID, commentID, content)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, comment, "Successfully updated")
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, r, common.Unauthorized("user not authenticated"))
		return
	}
	commentID, err := common.ParseObjectID("commentId", mux.Vars(r)["commentId"])
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	comment, err := h.commentService.DeleteComment(r.Context(), userID, commentID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, comment, "Successfully deleted")
}

// readContent accepts {"content": "..."} or a form field.
func readContent(w http.ResponseWriter, r *http.Request) (string, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var body struct {
			Content string `json:"content"`
		}
		if err := common.DecodeJSON(w, r, &body); err != nil {
			return "", err
		}
		return body.Content, nil
	}
	// urlencoded or multipart
	r.Body = http.MaxBytesReader(w, r.Body, common.MaxJSONBody)
	return r.PostFormValue("content"), nil
}
