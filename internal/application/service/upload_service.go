package service

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/storekeep/backoffice-api/internal/config"
	"github.com/storekeep/backoffice-api/pkg/apperror"
	"github.com/storekeep/backoffice-api/pkg/utils"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadService stores uploaded images on local disk and returns their public
// URL.
type UploadService struct {
	cfg config.StorageConfig
}

// NewUploadService creates a new upload service
func NewUploadService(cfg config.StorageConfig) *UploadService {
	return &UploadService{cfg: cfg}
}

// UploadResult describes a stored file
type UploadResult struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
}

// SaveImage validates and persists an uploaded image. Only JPEG, PNG, GIF and
// WebP files up to the configured size limit are accepted. The stored name is
// prefixed with a UUID so uploads never collide.
func (s *UploadService) SaveImage(header *multipart.FileHeader) (*UploadResult, error) {
	if header == nil {
		return nil, apperror.NewBadRequestError("No file provided")
	}
	if header.Size > s.cfg.UploadMaxSize {
		return nil, apperror.NewInvalidInputError("File exceeds the maximum allowed size")
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[strings.ToLower(contentType)] {
		return nil, apperror.NewInvalidInputError("Only JPEG, PNG, GIF and WebP images are allowed")
	}

	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if err := os.MkdirAll(s.cfg.Path, 0o755); err != nil {
		return nil, err
	}

	filename := uuid.New().String() + "-" + utils.SanitizeFilename(filepath.Base(header.Filename))
	dst, err := os.Create(filepath.Join(s.cfg.Path, filename))
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		return nil, err
	}

	return &UploadResult{
		Filename: filename,
		URL:      strings.TrimRight(s.cfg.PublicBaseURL, "/") + "/" + filename,
		Size:     size,
	}, nil
}
