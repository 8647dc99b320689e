package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastebase/backend/internal/service"
)

// UploadHandler handles image upload requests
type UploadHandler struct {
	mediaService service.IMediaService
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(mediaService service.IMediaService) *UploadHandler {
	return &UploadHandler{
		mediaService: mediaService,
	}
}

// UploadImage receives a multipart image file and stores it with the media host
func (h *UploadHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "No image file provided",
		})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to read image file",
			"error":   err.Error(),
		})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to read image file",
			"error":   err.Error(),
		})
		return
	}

	upload, err := h.mediaService.UploadImage(c.Request.Context(), data, file.Header.Get("Content-Type"), file.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to upload image",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"imageUrl": upload.URL,
		"publicId": upload.PublicID,
	})
}

// RegisterRoutes registers the upload routes
func (h *UploadHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/upload-image", h.UploadImage)
}
