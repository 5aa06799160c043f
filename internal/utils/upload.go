package utils

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vickhardth/site-pulse-api/internal/constants"
)

var (
	ErrNotPDF           = errors.New("only PDF files are allowed")
	ErrAttachmentTooBig = errors.New("attachment exceeds the 10MB limit")
)

// SaveAttachment stores an uploaded MOM report PDF under dir and returns its path.
// The stored name is randomized so concurrent uploads never collide.
func SaveAttachment(c *gin.Context, file *multipart.FileHeader, dir string) (string, error) {
	if file.Size > constants.MaxAttachmentSize {
		return "", ErrAttachmentTooBig
	}

	if file.Header.Get("Content-Type") != "application/pdf" {
		return "", ErrNotPDF
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst := filepath.Join(dir, fmt.Sprintf("mom-report-%s.pdf", uuid.NewString()))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", fmt.Errorf("failed to store attachment: %w", err)
	}

	return dst, nil
}

// RemoveAttachment deletes a stored attachment, ignoring files already gone.
func RemoveAttachment(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to remove attachment %s: %v", path, err)
	}
}
