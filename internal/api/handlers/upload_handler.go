package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scholarship-go/internal/application"
	"github.com/linskybing/scholarship-go/internal/config"
	"github.com/linskybing/scholarship-go/pkg/response"
)

type UploadHandler struct {
	svc *application.UploadService
}

func NewUploadHandler(svc *application.UploadService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// UploadImage godoc
// @Summary Upload an image
// @Description The image is downscaled, re-encoded as WebP and stored; the public URL is returned.
// @Tags uploads
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "JPEG, PNG or WebP image"
// @Success 201 {object} map[string]string
// @Failure 400 {object} response.ErrorResponse "Not an image"
// @Failure 413 {object} response.ErrorResponse "Too large"
// @Failure 502 {object} response.ErrorResponse "Storage unavailable"
// @Router /uploads/images [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	limit := int64(config.ImageMaxUploadMB) << 20
	if limit <= 0 {
		limit = 5 << 20
	}
	// multipart overhead on top of the file itself
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+1<<20)

	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "image file is required"})
		return
	}
	if fh.Size > limit {
		respondError(c, application.ErrImageTooLarge)
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "cannot read upload"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "cannot read upload"})
		return
	}

	url, err := h.svc.UploadImage(c.Request.Context(), data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
