package storage

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		size        int64
		wantErr     error
	}{
		{"small jpeg", "image/jpeg", 1 << 20, nil},
		{"png at the limit", "image/png", MaxUploadSize, nil},
		{"6MB file rejected", "image/jpeg", 6 << 20, ErrFileTooLarge},
		{"text file rejected", "text/plain", 100, ErrUnsupportedType},
		{"pdf rejected", "application/pdf", 100, ErrUnsupportedType},
		{"oversized text reports size first", "text/plain", 6 << 20, ErrFileTooLarge},
		{"webp ok", "image/webp", 42, nil},
		{"gif ok", "image/gif", 42, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImage(tt.contentType, tt.size)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateImage(%q, %d) = %v, want %v", tt.contentType, tt.size, err, tt.wantErr)
			}
		})
	}
}

func TestValidateImageDistinctMessages(t *testing.T) {
	if ErrFileTooLarge.Error() == ErrUnsupportedType.Error() {
		t.Fatal("size and type rejections must carry distinct messages")
	}
}

func TestObjectKey(t *testing.T) {
	now := time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC)
	key := ObjectKey("events", "Party Pics!.jpg", now)
	if !strings.HasPrefix(key, "events/2026/03/") {
		t.Errorf("key %q missing entity/year/month prefix", key)
	}
	if !strings.HasSuffix(key, "-Party-Pics-.jpg") {
		t.Errorf("key %q did not sanitize the filename", key)
	}
}

func TestSanitizeFilenameStripsPath(t *testing.T) {
	if got := SanitizeFilename("../../etc/passwd"); strings.Contains(got, "/") {
		t.Errorf("sanitized name still contains a path separator: %q", got)
	}
}
