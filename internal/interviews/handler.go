package interviews

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"careerpath-backend/internal/shared/server/middleware"
	"careerpath-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the interview service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches interview routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/interviews", h.startInterview)
	rg.GET("/interviews", h.listInterviews)
	rg.GET("/interviews/:id", h.getInterview)
	rg.POST("/interviews/:id/answers", h.submitAnswer)
	rg.POST("/interviews/:id/complete", h.completeInterview)
	rg.POST("/interviews/:id/abandon", h.abandonInterview)
	rg.POST("/interviews/:id/upgrade", h.upgradeInterview)
}

type startRequest struct {
	Type string `json:"type"`
}

func (h *Handler) startInterview(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	interview, err := h.Svc.Start(c.Request.Context(), userID, req.Type)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to start interview", nil)
		}
		return
	}
	c.Set("interviewId", interview.ID)
	respond.JSON(c, http.StatusCreated, interviewPayload(interview))
}

func (h *Handler) listInterviews(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list interviews", nil)
		return
	}
	payloads := make([]gin.H, 0, len(items))
	for _, interview := range items {
		payloads = append(payloads, interviewPayload(interview))
	}
	respond.OK(c, gin.H{"interviews": payloads})
}

func (h *Handler) getInterview(c *gin.Context) {
	interview, ok := h.ownedInterview(c)
	if !ok {
		return
	}
	respond.OK(c, interviewPayload(interview))
}

func (h *Handler) submitAnswer(c *gin.Context) {
	interview, ok := h.ownedInterview(c)
	if !ok {
		return
	}

	var input AnswerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	updated, err := h.Svc.SubmitAnswer(c.Request.Context(), interview.ID, input)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrInvalidTransition):
			respond.Error(c, http.StatusConflict, "precondition_failed", err.Error(), nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "interview not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save answer", nil)
		}
		return
	}
	respond.OK(c, interviewPayload(updated))
}

func (h *Handler) completeInterview(c *gin.Context) {
	h.transition(c, h.Svc.Complete)
}

func (h *Handler) abandonInterview(c *gin.Context) {
	h.transition(c, h.Svc.Abandon)
}

func (h *Handler) upgradeInterview(c *gin.Context) {
	h.transition(c, h.Svc.Upgrade)
}

func (h *Handler) transition(c *gin.Context, op func(ctx context.Context, interviewID string) (Interview, error)) {
	interview, ok := h.ownedInterview(c)
	if !ok {
		return
	}
	updated, err := op(c.Request.Context(), interview.ID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidTransition):
			respond.Error(c, http.StatusConflict, "precondition_failed", err.Error(), nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "interview not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update interview", nil)
		}
		return
	}
	respond.OK(c, interviewPayload(updated))
}

func (h *Handler) ownedInterview(c *gin.Context) (Interview, bool) {
	userID := middleware.UserIDFromContext(c)
	interviewID := c.Param("id")
	if interviewID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "interview id is required", nil)
		return Interview{}, false
	}
	c.Set("interviewId", interviewID)

	interview, err := h.Svc.Get(c.Request.Context(), interviewID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "interview not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch interview", nil)
		}
		return Interview{}, false
	}
	if interview.UserID != userID {
		respond.Error(c, http.StatusNotFound, "not_found", "interview not found", nil)
		return Interview{}, false
	}
	return interview, true
}

func interviewPayload(interview Interview) gin.H {
	return gin.H{
		"id":               interview.ID,
		"type":             interview.Type,
		"status":           interview.Status,
		"currentModule":    interview.CurrentModule,
		"currentQuestion":  interview.CurrentQuestion,
		"answeredCount":    interview.AnsweredCount(),
		"dataCompleteness": interview.Completeness(),
		"startedAt":        interview.StartedAt,
		"completedAt":      interview.CompletedAt,
		"lastActivityAt":   interview.LastActivityAt,
	}
}
