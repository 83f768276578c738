package common

import "strings"

// MediaFileType is the kind of file attached to a video document
type MediaFileType string

const (
	MediaFileTypeImage MediaFileType = "image"
	MediaFileTypeVideo MediaFileType = "video"
)

// String returns the string representation
func (mft MediaFileType) String() string {
	return string(mft)
}

// IsValid checks if the media file type is valid
func (mft MediaFileType) IsValid() bool {
	return mft == MediaFileTypeImage || mft == MediaFileTypeVideo
}

// DetectFileType guesses the kind from a MIME type, defaulting to image.
func DetectFileType(mimeType string) MediaFileType {
	lowerMimeType := strings.ToLower(mimeType)
	if strings.HasPrefix(lowerMimeType, "image/") {
		return MediaFileTypeImage
	}
	if strings.HasPrefix(lowerMimeType, "video/") {
		return MediaFileTypeVideo
	}
	return MediaFileTypeImage // Default fallback
}

// ExpectFileType is the strict variant used for uploads: the MIME type must
// carry the expected prefix.
func ExpectFileType(field, mimeType string, want MediaFileType) error {
	if !strings.HasPrefix(strings.ToLower(mimeType), want.String()+"/") {
		return InvalidParameter("%s must be a %s file, got %q", field, want, mimeType)
	}
	return nil
}
