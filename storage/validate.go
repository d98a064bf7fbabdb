package storage

import (
	"errors"
	"fmt"
)

// MaxUploadSize guards uploads before any network call.
const MaxUploadSize = 5 << 20 // 5MB

var ErrFileTooLarge = fmt.Errorf("file exceeds the %dMB upload limit", MaxUploadSize>>20)
var ErrUnsupportedType = errors.New("unsupported file type: only jpeg, png, webp and gif images are allowed")

var allowedMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// ValidateImage rejects oversized payloads and disallowed MIME types with
// distinct errors, before anything leaves the process.
func ValidateImage(contentType string, size int64) error {
	if size > MaxUploadSize {
		return ErrFileTooLarge
	}
	if !allowedMIMETypes[contentType] {
		return ErrUnsupportedType
	}
	return nil
}
