package gallery

import (
	"log"
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
	r.GET("/api/gallery", h.List)
}

// List handles GET /api/gallery: the curated public listing.
func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("gallery: listing failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "Failed to load the gallery.")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"files": items})
}
