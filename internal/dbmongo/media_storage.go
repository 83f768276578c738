package dbmongo

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/thehamzasani/primeTube/internal/common"
)

type MediaStorage struct {
	gridFS  *gridfs.Bucket
	baseURL string
}

func NewMediaStorage(mongoClient *MongoClient, baseURL string) *MediaStorage {
	return &MediaStorage{
		gridFS:  mongoClient.GridFS,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type MediaFile struct {
	ID         string               `json:"id"`          // GridFS ObjectID
	URL        string               `json:"url"`         // public URL served by the media server
	Filename   string               `json:"filename"`    // Original filename
	Size       int64                `json:"size"`        // File size in bytes
	MimeType   string               `json:"mime_type"`   // as sent by the client
	FileType   common.MediaFileType `json:"file_type"`   // image or video
	UploadedBy string               `json:"uploaded_by"` // User ID who uploaded
	UploadedAt time.Time            `json:"uploaded_at"` // Upload timestamp
}

// FileURL builds the public URL of a stored file.
func (ms *MediaStorage) FileURL(fileID string) string {
	return fmt.Sprintf("%s/%s", ms.baseURL, fileID)
}

// FileIDFromURL is the inverse of FileURL. It reports false for URLs that were
// not produced by this storage.
func (ms *MediaStorage) FileIDFromURL(url string) (string, bool) {
	prefix := ms.baseURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	id := strings.TrimPrefix(url, prefix)
	if !primitive.IsValidObjectID(id) {
		return "", false
	}
	return id, true
}

func (ms *MediaStorage) UploadFile(ctx context.Context, filename, mimeType, uploaderID string, content io.Reader) (*MediaFile, error) {
	fileType := common.DetectFileType(mimeType)
	uploadedAt := time.Now()

	metadata := bson.M{
		"file_type":   fileType.String(),
		"mime_type":   mimeType,
		"uploaded_by": uploaderID,
		"uploaded_at": uploadedAt,
	}

	opts := options.GridFSUpload().SetMetadata(metadata)
	stream, err := ms.gridFS.OpenUploadStream(filename, opts)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = stream.SetWriteDeadline(deadline)
	}

	size, err := io.Copy(stream, content)
	if err != nil {
		_ = stream.Abort()
		return nil, fmt.Errorf("file copy failed: %w", err)
	}
	if err := stream.Close(); err != nil {
		return nil, fmt.Errorf("upload finalize failed: %w", err)
	}

	fileID := stream.FileID.(primitive.ObjectID).Hex()
	return &MediaFile{
		ID:         fileID,
		URL:        ms.FileURL(fileID),
		Filename:   filename,
		Size:       size,
		MimeType:   mimeType,
		FileType:   fileType,
		UploadedBy: uploaderID,
		UploadedAt: uploadedAt,
	}, nil
}

func (ms *MediaStorage) DownloadFile(ctx context.Context, fileID string) (io.ReadCloser, *MediaFile, error) {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid file ID: %w", err)
	}

	stream, err := ms.gridFS.OpenDownloadStream(objectID)
	if err != nil {
		return nil, nil, fmt.Errorf("download failed: %w", err)
	}

	fileInfo := stream.GetFile()
	var metadata bson.M
	if fileInfo.Metadata != nil {
		_ = bson.Unmarshal(fileInfo.Metadata, &metadata)
	}

	mediaFile := &MediaFile{
		ID:         fileID,
		URL:        ms.FileURL(fileID),
		Filename:   fileInfo.Name,
		Size:       fileInfo.Length,
		MimeType:   getStringFromMap(metadata, "mime_type"),
		FileType:   common.MediaFileType(getStringFromMap(metadata, "file_type")),
		UploadedBy: getStringFromMap(metadata, "uploaded_by"),
		UploadedAt: fileInfo.UploadDate,
	}

	return stream, mediaFile, nil
}

func (ms *MediaStorage) DeleteFile(ctx context.Context, fileID string) error {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return fmt.Errorf("invalid file ID: %w", err)
	}
	return ms.gridFS.Delete(objectID)
}

// Helper function for metadata extraction
func getStringFromMap(m bson.M, key string) string {
	if m == nil {
		return ""
	}
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
