package service_test

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/storekeep/backoffice-api/internal/application/service"
	"github.com/storekeep/backoffice-api/internal/config"
	"github.com/storekeep/backoffice-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadConfig() config.StorageConfig {
	return config.StorageConfig{
		Path:          "./storage/uploads",
		PublicBaseURL: "/uploads",
		UploadMaxSize: 2 * 1024 * 1024,
	}
}

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	header := &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   make(textproto.MIMEHeader),
	}
	header.Header.Set("Content-Type", contentType)
	return header
}

func TestSaveImage_RejectsNilFile(t *testing.T) {
	svc := service.NewUploadService(uploadConfig())

	_, err := svc.SaveImage(nil)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestSaveImage_RejectsOversizedFile(t *testing.T) {
	svc := service.NewUploadService(uploadConfig())

	_, err := svc.SaveImage(fileHeader("big.png", "image/png", 3*1024*1024))
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestSaveImage_RejectsDisallowedTypes(t *testing.T) {
	svc := service.NewUploadService(uploadConfig())

	for _, contentType := range []string{"application/pdf", "text/html", "image/svg+xml", ""} {
		t.Run(contentType, func(t *testing.T) {
			_, err := svc.SaveImage(fileHeader("file.bin", contentType, 1024))
			require.Error(t, err)
			assert.Equal(t, 422, apperror.GetAppError(err).Code)
		})
	}
}
