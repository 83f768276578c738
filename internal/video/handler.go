package video

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/thehamzasani/primeTube/internal/common"
	"github.com/thehamzasani/primeTube/internal/pipeline"
)

const multipartMemory = 32 << 20

// Handler wires HTTP requests to the VideoService.
type Handler struct {
	videoService   VideoService
	maxUploadBytes int64
}

func NewHandler(videoService VideoService, maxUploadBytes int64) *Handler {
	return &Handler{videoService: videoService, maxUploadBytes: maxUploadBytes}
}

// Register mounts the video routes. Mutations go through auth.
func (h *Handler) Register(r *mux.Router, auth mux.MiddlewareFunc) {
	r.HandleFunc("/videos", h.ListVideos).Methods(http.MethodGet)
	r.Handle("/videos", auth(http.HandlerFunc(h.PublishVideo))).Methods(http.MethodPost)
	r.HandleFunc("/videos/{videoId}", h.GetVideo).Methods(http.MethodGet)
	r.Handle("/videos/{videoId}", auth(http.HandlerFunc(h.UpdateVideo))).Methods(http.MethodPatch)
	r.Handle("/videos/{videoId}", auth(http.HandlerFunc(h.DeleteVideo))).Methods(http.MethodDelete)
	r.Handle("/videos/{videoId}/toggle-publish", auth(http.HandlerFunc(h.TogglePublish))).Methods(http.MethodPatch)
}

func (h *Handler) ListVideos(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := common.ParsePagination(q)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	sortBy, order, err := common.ParseSort(q)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	owner, err := common.ParseOptionalObjectID("userId", q.Get("userId"))
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	result, err := h.videoService.ListVideos(r.Context(), ListQuery{
		Filter: pipeline.VideoFilter{Query: q.Get("query"), Owner: owner},
		SortBy: sortBy,
		Order:  order,
		Page:   page,
	})
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, result, "Successfully retrieved all videos")
}

func (h *Handler) PublishVideo(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, r, common.Unauthorized("user not authenticated"))
		return
	}
	if err := h.parseMultipart(w, r); err != nil {
		common.WriteError(w, r, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	in := PublishInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
	}
	if raw := strings.TrimSpace(r.FormValue("duration")); raw != "" {
		duration, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			common.WriteError(w, r, common.InvalidParameter("duration must be a number, got %q", raw))
			return
		}
		in.Duration = duration
	}

	videoFile, closeVideo, err := formUpload(r, "videoFile")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	defer closeVideo()
	thumbnail, closeThumb, err := formUpload(r, "thumbnail")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	defer closeThumb()
	in.VideoFile = videoFile
	in.Thumbnail = thumbnail

	video, err := h.videoService.PublishVideo(r.Context(), userID, in)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, video, "Video uploaded successfully")
}

func (h *Handler) GetVideo(w http.ResponseWriter, r *http.Request) {
	videoID, err := common.ParseObjectID("videoId", mux.Vars(r)["videoId"])
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	video, err := h.videoService.GetVideo(r.Context(), videoID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, video, "Video fetched successfully")
}

func (h *Handler) UpdateVideo(w http.ResponseWriter, r *http.Request) {
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

	var in UpdateInput
	if isJSON(r) {
		var body struct {
			Title       *string `json:"title"`
			Description *string `json:"description"`
		}
		if err := common.DecodeJSON(w, r, &body); err != nil {
			common.WriteError(w, r, err)
			return
		}
		in.Title = body.Title
		in.Description = body.Description
	} else if isMultipart(r) {
		if err := h.parseMultipart(w, r); err != nil {
			common.WriteError(w, r, err)
			return
		}
		defer r.MultipartForm.RemoveAll()

		thumbnail, closeThumb, err := formUpload(r, "thumbnail")
		if err != nil && !common.IsKind(err, common.KindMissingField) {
			common.WriteError(w, r, err)
			return
		}
		if thumbnail != nil {
			defer closeThumb()
			in.Thumbnail = thumbnail
		}
		in.Title = optionalFormValue(r, "title")
		in.Description = optionalFormValue(r, "description")
	} else {
		if err := r.ParseForm(); err != nil {
			common.WriteError(w, r, common.InvalidParameter("malformed form body"))
			return
		}
		in.Title = optionalFormValue(r, "title")
		in.Description = optionalFormValue(r, "description")
	}

	video, err := h.videoService.UpdateVideo(r.Context(), userID, videoID, in)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, video, "Successfully updated")
}

func (h *Handler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
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

	video, err := h.videoService.DeleteVideo(r.Context(), userID, videoID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, video, "Video deleted successfully")
}

func (h *Handler) TogglePublish(w http.ResponseWriter, r *http.Request) {
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

	video, err := h.videoService.TogglePublish(r.Context(), userID, videoID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, video, "Toggled successfully")
}

func isJSON(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

func (h *Handler) parseMultipart(w http.ResponseWriter, r *http.Request) error {
	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return common.InvalidParameter("upload exceeds %d bytes", h.maxUploadBytes)
		}
		return common.InvalidParameter("malformed multipart body")
	}
	return nil
}

// formUpload opens a multipart file field. The returned closer is never nil.
func formUpload(r *http.Request, field string) (*Upload, func(), error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, func() {}, common.MissingField(field)
		}
		return nil, func() {}, common.InvalidParameter("unreadable %s", field)
	}
	return &Upload{
		Filename: header.Filename,
		MimeType: mimeOf(header),
		Content:  file,
	}, func() { file.Close() }, nil
}

func mimeOf(header *multipart.FileHeader) string {
	if ct := header.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// optionalFormValue distinguishes an absent field (nil) from an empty one.
func optionalFormValue(r *http.Request, key string) *string {
	if r.Form == nil {
		return nil
	}
	values, ok := r.Form[key]
	if !ok || len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}
