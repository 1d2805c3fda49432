package helper

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var allowedImageExts = []string{".png", ".jpg", ".jpeg", ".webp"}

// UploadDir is where staged files land; served back at /uploads.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// SaveUploadedImage stages the form file under the upload dir with a
// timestamp-uuid name and returns the public /uploads path. Returns "" with a
// nil error when the field is absent (image is optional everywhere).
func SaveUploadedImage(c *fiber.Ctx, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	valid := false
	for _, allowed := range allowedImageExts {
		if ext == allowed {
			valid = true
			break
		}
	}
	if !valid {
		return "", errors.New("unsupported image format, expected PNG/JPG/JPEG/WEBP")
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)
	dir := UploadDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := c.SaveFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}

	return "/uploads/" + name, nil
}
