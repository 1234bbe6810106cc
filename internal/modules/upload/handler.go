package upload

import (
	"errors"
	"fmt"
	"net/http"

	"weddingshare/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/upload", h.Upload)
}

// Upload handles POST /upload: multipart "files" plus "uploaderName" and an
// optional "message".
func (h *Handler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "No files were uploaded.")
		return
	}

	req := IngestRequest{
		UploaderName: c.PostForm("uploaderName"),
		Message:      c.PostForm("message"),
		Files:        form.File["files"],
		IPAddress:    c.ClientIP(),
		UserAgent:    c.Request.UserAgent(),
	}

	result, err := h.service.Ingest(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoFiles):
			response.Error(c, http.StatusBadRequest, "No files were uploaded.")
		case errors.Is(err, ErrMissingName):
			response.Error(c, http.StatusBadRequest, "The name field is required.")
		case errors.Is(err, ErrDisallowedType):
			response.Error(c, http.StatusBadRequest, "Only image and video files can be uploaded.")
		case errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusBadRequest, "File is too large.")
		default:
			response.Error(c, http.StatusInternalServerError, "Files were uploaded but could not be saved.")
		}
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"message":       fmt.Sprintf("%d file(s) uploaded successfully!", len(result.Accepted)),
		"files":         result.Accepted,
		"uploader":      req.UploaderName,
		"uploadMessage": req.Message,
	})
}
