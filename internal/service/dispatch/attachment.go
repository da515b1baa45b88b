package dispatch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sandfox-dev/foxchat/internal/core"
)

// loadAttachment reads the attached file from disk. An empty path or an
// unreadable file both surface as ErrMissingAttachment.
func loadAttachment(path, mimeType string) (*core.Attachment, error) {
	if strings.TrimSpace(path) == "" {
		return nil, core.ErrMissingAttachment
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrMissingAttachment, err)
	}

	return &core.Attachment{MIMEType: mimeType, Data: data}, nil
}

// imageMIME infers the image MIME type from the file extension. Unknown
// extensions fall back to JPEG.
func imageMIME(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "image/jpeg"
	}
}

// dataMIME keeps data files as text so the model can read them inline.
func dataMIME(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return "text/csv"
	case ".json":
		return "application/json"
	default:
		return "text/plain"
	}
}
