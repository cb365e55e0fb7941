package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"furnish-shop/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var (
	ErrFileTooLarge = errors.New("file size exceeds maximum allowed size (10MB)")
	ErrBadFileType  = errors.New("invalid file type. Allowed: jpg, jpeg, png, gif, webp")
)

// ValidateImage checks the size ceiling before the extension allow-list.
func ValidateImage(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size > config.AppConfig.MaxUploadSize {
		return ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return ErrBadFileType
	}
	return nil
}

// SaveUpload validates and stores an uploaded image under the media
// directory and returns its served path. The stored name combines a random
// token with a timestamp so two uploads never collide.
func SaveUpload(c *gin.Context, fileHeader *multipart.FileHeader, subDir string) (string, error) {
	if err := ValidateImage(fileHeader); err != nil {
		return "", err
	}

	uploadDir := filepath.Join(config.AppConfig.UploadDir, subDir)
	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	filename := fmt.Sprintf("%s_%d%s", uuid.NewString(), time.Now().Unix(), ext)

	if err := c.SaveUploadedFile(fileHeader, filepath.Join(uploadDir, filename)); err != nil {
		return "", err
	}

	return path.Join("/uploads", subDir, filename), nil
}

// LocalPath maps a served upload path back to its file on disk. Returns ""
// for anything outside the media directory (remote URLs, data URIs).
func LocalPath(publicPath string) string {
	if !strings.HasPrefix(publicPath, "/uploads/") {
		return ""
	}
	rel := strings.TrimPrefix(publicPath, "/uploads/")
	return filepath.Join(config.AppConfig.UploadDir, filepath.FromSlash(rel))
}

// DeleteFile removes the stored file behind a served path. Remote URLs and
// already-missing files are ignored.
func DeleteFile(publicPath string) {
	fullPath := LocalPath(publicPath)
	if fullPath == "" {
		return
	}
	if _, err := os.Stat(fullPath); err == nil {
		os.Remove(fullPath)
	}
}
