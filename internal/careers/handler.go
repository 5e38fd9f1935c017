package careers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careerpath-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the career catalog.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches career routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/careers", h.listCareers)
}

func (h *Handler) listCareers(c *gin.Context) {
	catalog, err := h.Repo.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list careers", nil)
		return
	}
	respond.OK(c, gin.H{"careers": catalog})
}
