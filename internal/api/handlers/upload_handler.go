// backend-go/internal/api/handlers/upload_handler.go
package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mediaexclusive/inventory-manager/backend-go/internal/storage"
)

// maxImageBytes bounds a single uploaded image.
const maxImageBytes = 5 << 20

// UploadHandler stores dashboard images in object storage and hands the
// public URL back for the image-cell write. Storage may be nil when the
// deployment has no bucket configured.
type UploadHandler struct {
	storage storage.ObjectStorage
}

func NewUploadHandler(st storage.ObjectStorage) *UploadHandler {
	return &UploadHandler{storage: st}
}

func (h *UploadHandler) UploadImage(c *gin.Context) {
	if h.storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "object storage is not configured"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return
	}
	if fileHeader.Size > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes+1))
	if err != nil || int64(len(data)) > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("items/%d_%s", time.Now().UnixMilli(), sanitizeFilename(fileHeader.Filename))
	url, err := h.storage.Upload(c.Request.Context(), key, data, contentType)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("image upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "url": url})
}

func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
