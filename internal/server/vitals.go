package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/healthmate/healthmate-backend/internal/entity"
	"github.com/healthmate/healthmate-backend/internal/export"
	"github.com/healthmate/healthmate-backend/internal/repository"
)

type VitalsHandler struct {
	vitals   repository.VitalsRepository
	exporter *export.Service
	logger   *slog.Logger
}

func NewVitalsHandler(vitals repository.VitalsRepository, exporter *export.Service, logger *slog.Logger) *VitalsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &VitalsHandler{vitals: vitals, exporter: exporter, logger: logger}
}

type addVitalsRequest struct {
	BP     string   `json:"bp"`
	Sugar  *float64 `json:"sugar"`
	Weight *float64 `json:"weight"`
	Notes  string   `json:"notes"`
	Date   string   `json:"date"` // YYYY-MM-DD, defaults to today
}

func (h *VitalsHandler) Add(c *gin.Context) {
	var req addVitalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide at least one vital reading.")
		return
	}
	if req.BP == "" && req.Sugar == nil && req.Weight == nil {
		respondError(c, http.StatusBadRequest, "Please provide at least one vital reading.")
		return
	}

	recordedAt := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			respondError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		recordedAt = parsed
	}

	v := &entity.VitalsEntry{
		UserID:     currentUserID(c),
		BP:         req.BP,
		Sugar:      req.Sugar,
		Weight:     req.Weight,
		Notes:      req.Notes,
		RecordedAt: recordedAt,
	}
	if err := h.vitals.Create(c.Request.Context(), v); err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	respond(c, http.StatusCreated, "Vitals added successfully", gin.H{"vitals": v})
}

func (h *VitalsHandler) History(c *gin.Context) {
	list, err := h.vitals.ListByUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respond(c, http.StatusOK, "", gin.H{"vitals": list})
}

func (h *VitalsHandler) Export(c *gin.Context) {
	data, err := h.exporter.ExportVitalsXLSX(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	filename := fmt.Sprintf("vitals-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
