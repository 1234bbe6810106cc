package admin

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

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
	api := r.Group("/api/admin")
	{
		api.GET("/uploads", h.ListUploads)
		api.POST("/approve/:id", h.Approve)
		api.GET("/stats", h.Stats)
		api.GET("/download-all", h.DownloadAll)
		api.GET("/download/:id", h.Download)
	}
}

// ListUploads handles GET /api/admin/uploads: every upload, full column set.
func (h *Handler) ListUploads(c *gin.Context) {
	uploads, err := h.service.ListUploads(c.Request.Context())
	if err != nil {
		log.Printf("admin: listing uploads failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch uploads.")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"uploads": uploads})
}

// Approve handles POST /api/admin/approve/:id with body {"approved": bool}.
func (h *Handler) Approve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid upload ID.")
		return
	}

	var body struct {
		Approved bool `json:"approved"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	u, err := h.service.SetApproval(c.Request.Context(), id, body.Approved)
	if err != nil {
		if errors.Is(err, ErrUploadNotFound) {
			response.Error(c, http.StatusNotFound, "Upload not found.")
			return
		}
		log.Printf("admin: approval update for %d failed: %v", id, err)
		response.Error(c, http.StatusInternalServerError, "Failed to update approval status.")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"upload": u})
}

// Stats handles GET /api/admin/stats.
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		log.Printf("admin: stats failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch statistics.")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"stats": stats})
}

// Download handles GET /api/admin/download/:id: streams one original file.
func (h *Handler) Download(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid upload ID.")
		return
	}

	u, rc, err := h.service.OpenDownload(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrUploadNotFound):
			response.Error(c, http.StatusNotFound, "Upload not found.")
		case errors.Is(err, ErrFileMissing):
			response.Error(c, http.StatusNotFound, "File not found on storage.")
		default:
			log.Printf("admin: download %d failed: %v", id, err)
			response.Error(c, http.StatusInternalServerError, "Failed to download the file.")
		}
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, u.FileSize, u.MimeType, rc, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", u.OriginalFilename),
	})
}

// DownloadAll handles GET /api/admin/download-all: the full ZIP export.
// Blob existence is resolved before any header is written, so the empty
// cases return a clean 404 body.
func (h *Handler) DownloadAll(c *gin.Context) {
	job, err := h.service.PrepareArchive(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrNoFiles) {
			response.Error(c, http.StatusNotFound, "No files found to download.")
			return
		}
		log.Printf("admin: preparing archive failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to prepare the archive.")
		return
	}

	zipName := fmt.Sprintf("wedding-photos-%s.zip", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/zip")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", zipName))
	c.Status(http.StatusOK)

	if err := job.Write(c.Writer); err != nil {
		// Headers are gone; a disconnected client or write failure can only
		// be logged.
		log.Printf("admin: streaming archive failed: %v", err)
	}
}
