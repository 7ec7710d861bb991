package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"fintrack/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// saveProfileImage stores an optional "profile_image" multipart file
// under the upload dir with a uuid filename and returns its public URL
// path. No file in the form is not an error; the empty string is
// returned.
func saveProfileImage(c *gin.Context, cfg config.UploadConfig) (string, error) {
	file, err := c.FormFile("profile_image")
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		// non-multipart requests simply carry no image
		return "", nil
	}

	if file.Size > cfg.MaxSizeMB*1024*1024 {
		return "", fmt.Errorf("image larger than %d MB", cfg.MaxSizeMB)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("unsupported image type %q", ext)
	}

	name := uuid.New().String() + ext
	dst := filepath.Join(cfg.Dir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}

	return cfg.PublicPath + "/" + name, nil
}
