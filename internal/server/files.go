package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/healthmate/healthmate-backend/constants"
	"github.com/healthmate/healthmate-backend/internal/entity"
	"github.com/healthmate/healthmate-backend/internal/pipeline"
	"github.com/healthmate/healthmate-backend/internal/repository"
	"github.com/healthmate/healthmate-backend/internal/storage"
)

type FileHandler struct {
	reports  repository.ReportRepository
	store    storage.ObjectStore
	analyzer *pipeline.Analyzer
	logger   *slog.Logger
}

func NewFileHandler(reports repository.ReportRepository, store storage.ObjectStore, analyzer *pipeline.Analyzer, logger *slog.Logger) *FileHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileHandler{reports: reports, store: store, analyzer: analyzer, logger: logger}
}

// Upload accepts multipart form field "file" plus optional familyMemberName
// and reportDate (YYYY-MM-DD). The object is stored first; the row is only
// written once the bytes are durable.
func (h *FileHandler) Upload(c *gin.Context) {
	userID := currentUserID(c)

	fh, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	contentType := fh.Header.Get("Content-Type")
	fileType := constants.MapMIMEToFileType(contentType)
	if fileType == constants.Other {
		respondError(c, http.StatusBadRequest, "Only PDF and image reports are supported")
		return
	}

	familyMemberName := c.PostForm("familyMemberName")
	if familyMemberName == "" {
		familyMemberName = "Self"
	}
	reportDate := time.Now()
	if raw := c.PostForm("reportDate"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "reportDate must be YYYY-MM-DD")
			return
		}
		reportDate = parsed
	}

	src, err := fh.Open()
	if err != nil {
		h.logger.Error("upload.open_failed", "user_id", userID, "error", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer func() { _ = src.Close() }()

	key := objectKey(userID, fh.Filename, fileType)
	url, err := h.store.Upload(c.Request.Context(), key, contentType, src)
	if err != nil {
		h.logger.Error("upload.store_failed", "user_id", userID, "key", key, "error", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	rep := &entity.Report{
		UserID:           userID,
		StorageURL:       url,
		StorageKey:       key,
		FileType:         string(fileType),
		ReportName:       fh.Filename,
		FamilyMemberName: familyMemberName,
		ReportDate:       reportDate,
	}
	if err := h.reports.Create(c.Request.Context(), rep); err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	respond(c, http.StatusCreated, "File uploaded successfully", gin.H{"file": rep})
}

func (h *FileHandler) GetAll(c *gin.Context) {
	files, err := h.reports.ListByUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respond(c, http.StatusOK, "", gin.H{"files": files})
}

// Delete removes the row first, then tries to drop the stored object. Object
// deletion failures are logged, not surfaced: the row is already gone.
func (h *FileHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("fileId"))
	if err != nil {
		respondError(c, http.StatusNotFound, "File not found")
		return
	}

	rep, err := h.reports.Delete(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		respondFromError(c, err, "File not found")
		return
	}
	if err := h.store.Delete(c.Request.Context(), rep.StorageKey); err != nil {
		h.logger.Warn("delete.object_cleanup_failed", "report_id", id, "key", rep.StorageKey, "error", err)
	}

	respond(c, http.StatusOK, "File deleted successfully", nil)
}

func (h *FileHandler) Analyze(c *gin.Context) {
	id, err := uuid.Parse(c.Param("fileId"))
	if err != nil {
		respondError(c, http.StatusNotFound, "File not found")
		return
	}

	ins, err := h.analyzer.Analyze(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		respondFromError(c, err, "File not found")
		return
	}

	respond(c, http.StatusOK, "AI analysis completed successfully", gin.H{"insight": ins})
}

func objectKey(userID uuid.UUID, filename string, fileType constants.FileType) string {
	ext := constants.ExtForFileType(fileType, path.Ext(filename))
	return fmt.Sprintf("healthmate_reports/%s/%s.%s", userID, uuid.New(), ext)
}
