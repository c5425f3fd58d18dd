package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/healthmate/healthmate-backend/internal/repository"
)

type InsightHandler struct {
	insights repository.InsightRepository
	logger   *slog.Logger
}

func NewInsightHandler(insights repository.InsightRepository, logger *slog.Logger) *InsightHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &InsightHandler{insights: insights, logger: logger}
}

func (h *InsightHandler) GetAll(c *gin.Context) {
	list, err := h.insights.ListByUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respond(c, http.StatusOK, "", gin.H{
		"count":    len(list),
		"insights": list,
	})
}

func (h *InsightHandler) GetOne(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Insight not found")
		return
	}
	ins, err := h.insights.GetForUser(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		respondFromError(c, err, "Insight not found")
		return
	}
	respond(c, http.StatusOK, "", gin.H{"insight": ins})
}
