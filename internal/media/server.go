// Package media streams files stored in GridFS back to clients.
package media

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/thehamzasani/primeTube/internal/common"
	"github.com/thehamzasani/primeTube/internal/dbmongo"
)

// FileSource is the read side of dbmongo.MediaStorage.
type FileSource interface {
	DownloadFile(ctx context.Context, fileID string) (io.ReadCloser, *dbmongo.MediaFile, error)
}

type HTTPServer struct {
	storage FileSource
}

func NewHTTPServer(storage FileSource) *HTTPServer {
	return &HTTPServer{storage: storage}
}

// Register mounts GET /media/{fileId} on r.
func (s *HTTPServer) Register(r *mux.Router) {
	r.HandleFunc("/media/{fileId}", s.serveFile).Methods(http.MethodGet)
}

func (s *HTTPServer) serveFile(w http.ResponseWriter, r *http.Request) {
	fileID := mux.Vars(r)["fileId"]
	if _, err := common.ParseObjectID("fileId", fileID); err != nil {
		common.WriteError(w, r, err)
		return
	}

	fileReader, mediaFile, err := s.storage.DownloadFile(r.Context(), fileID)
	if err != nil {
		common.WriteError(w, r, common.NotFound("file not found"))
		return
	}
	defer fileReader.Close()

	contentType := mediaFile.MimeType
	if contentType == "" {
		contentType = getContentType(mediaFile.Filename)
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.FormatInt(mediaFile.Size, 10))

	if _, err := io.Copy(w, fileReader); err != nil {
		common.RequestLogger(r).WithError(err).Warn("error streaming file")
	}
}

func getContentType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	default:
		return "application/octet-stream"
	}
}
