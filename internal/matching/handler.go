package matching

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerpath-backend/internal/interviews"
	"careerpath-backend/internal/shared/server/middleware"
	"careerpath-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the matching service.
type Handler struct {
	Svc           *Service
	InterviewRepo interviews.Repo
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, interviewRepo interviews.Repo) *Handler {
	return &Handler{Svc: svc, InterviewRepo: interviewRepo}
}

// RegisterRoutes attaches result routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/interviews/:id/results", h.getResults)
}

func (h *Handler) getResults(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	interviewID := c.Param("id")
	if interviewID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "interview id is required", nil)
		return
	}
	c.Set("interviewId", interviewID)

	interview, err := h.InterviewRepo.GetByID(c.Request.Context(), interviewID)
	if err != nil && !errors.Is(err, interviews.ErrNotFound) {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch results", nil)
		return
	}
	if err == nil && interview.UserID != userID {
		respond.Error(c, http.StatusNotFound, "not_found", "interview not found", nil)
		return
	}

	result, err := h.Svc.GetOrCompute(c.Request.Context(), interviewID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInterviewNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "interview not found", nil)
		case errors.Is(err, ErrInterviewNotCompleted):
			respond.Error(c, http.StatusConflict, "precondition_failed", "interview is not completed yet", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate results", nil)
		}
		return
	}

	respond.OK(c, gin.H{
		"interviewId":      result.InterviewID,
		"interviewType":    result.InterviewType,
		"matches":          result.Matches,
		"analysisDate":     result.CreatedAt,
		"dataCompleteness": result.DataCompleteness,
	})
}
