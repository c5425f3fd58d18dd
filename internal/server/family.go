package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/healthmate/healthmate-backend/internal/entity"
	"github.com/healthmate/healthmate-backend/internal/repository"
)

type FamilyHandler struct {
	family repository.FamilyRepository
	logger *slog.Logger
}

func NewFamilyHandler(family repository.FamilyRepository, logger *slog.Logger) *FamilyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FamilyHandler{family: family, logger: logger}
}

type familyMemberRequest struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
}

func (h *FamilyHandler) Add(c *gin.Context) {
	var req familyMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Relation == "" {
		respondError(c, http.StatusBadRequest, "Name and relation are required")
		return
	}

	userID := currentUserID(c)
	m := &entity.FamilyMember{
		UserID:   userID,
		Name:     req.Name,
		Relation: req.Relation,
		Age:      req.Age,
		Gender:   req.Gender,
	}
	if err := h.family.Create(c.Request.Context(), m); err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	list, err := h.family.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respond(c, http.StatusCreated, "Family member added successfully", gin.H{"familyMembers": list})
}

func (h *FamilyHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("memberId"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Family member not found")
		return
	}

	var req familyMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := currentUserID(c)
	patch := entity.FamilyMember{
		Name:     req.Name,
		Relation: req.Relation,
		Age:      req.Age,
		Gender:   req.Gender,
	}
	if _, err := h.family.Update(c.Request.Context(), id, userID, patch); err != nil {
		respondFromError(c, err, "Family member not found")
		return
	}

	list, err := h.family.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respond(c, http.StatusOK, "Family member updated successfully", gin.H{"familyMembers": list})
}

func (h *FamilyHandler) List(c *gin.Context) {
	list, err := h.family.ListByUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respond(c, http.StatusOK, "", gin.H{"familyMembers": list})
}
