package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/storekeep/backoffice-api/internal/application/service"
	"github.com/storekeep/backoffice-api/internal/presentation/http/dto/response"
)

// UploadHandler handles file upload HTTP requests
type UploadHandler struct {
	uploadService *service.UploadService
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload stores an uploaded image and returns its public URL
func (h *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No file provided")
		return
	}

	result, err := h.uploadService.SaveImage(header)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "File uploaded successfully", result)
}
