package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/storefront/backend/internal/application/media"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// UploadHandler accepts multipart image uploads for the admin panel.
type UploadHandler struct {
	uploadService *media.UploadService
	authMW        gin.HandlerFunc
}

func NewUploadHandler(uploadService *media.UploadService, authMW gin.HandlerFunc) *UploadHandler {
	return &UploadHandler{uploadService: uploadService, authMW: authMW}
}

func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin/uploads", h.authMW, middleware.RequireAdmin())
	{
		admin.POST("/images", h.UploadImages)
		admin.DELETE("/images/*key", h.DeleteImage)
	}
}

func (h *UploadHandler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, shared.NewValidationError("Invalid multipart form"))
		return
	}
	headers := form.File["images"]
	if len(headers) == 0 {
		respondError(c, shared.NewValidationError("No files provided"))
		return
	}

	folder := c.PostForm("folder")
	if folder == "" {
		folder = "products"
	}

	files := make([]media.File, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			respondError(c, shared.NewValidationError("Could not read uploaded file"))
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			respondError(c, shared.NewValidationError("Could not read uploaded file"))
			return
		}
		files = append(files, media.File{Name: header.Filename, Data: data})
	}

	images, err := h.uploadService.UploadImages(c.Request.Context(), folder, files)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, images)
}

func (h *UploadHandler) DeleteImage(c *gin.Context) {
	// The wildcard keeps the leading slash; strip it.
	key := c.Param("key")
	if len(key) > 0 && key[0] == '/' {
		key = key[1:]
	}
	if key == "" {
		respondError(c, shared.NewValidationError("Object key is required"))
		return
	}
	if err := h.uploadService.DeleteImage(c.Request.Context(), key); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Image deleted successfully")
}
