package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthmate/healthmate-backend/internal/auth"
	"github.com/healthmate/healthmate-backend/internal/common"
	"github.com/healthmate/healthmate-backend/internal/entity"
	"github.com/healthmate/healthmate-backend/internal/repository"
)

type UserHandler struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
	logger *slog.Logger
}

func NewUserHandler(users repository.UserRepository, tokens *auth.TokenManager, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{users: users, tokens: tokens, logger: logger}
}

type registerRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please fill in all required fields")
		return
	}
	if req.FullName == "" || req.Email == "" || req.PhoneNumber == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "Please fill in all required fields")
		return
	}

	if _, err := h.users.GetByEmail(c.Request.Context(), req.Email); err == nil {
		respondError(c, http.StatusBadRequest, "User already exists with this email")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.logger.Error("register.hash_failed", "error", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	u := &entity.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: hash,
	}
	if err := h.users.Create(c.Request.Context(), u); err != nil {
		if errors.Is(err, common.ErrBadInput) {
			respondError(c, http.StatusBadRequest, "User already exists with this email")
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.tokens.Mint(u.ID)
	if err != nil {
		h.logger.Error("register.mint_failed", "user_id", u.ID, "error", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.setSessionCookie(c, token)

	respond(c, http.StatusCreated, "Account created successfully", gin.H{
		"token": token,
		"user":  u,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "Please provide both email and password")
		return
	}

	u, err := h.users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil || !auth.CheckPassword(u.PasswordHash, req.Password) {
		// same answer for unknown email and wrong password
		respondError(c, http.StatusBadRequest, "Incorrect email or password")
		return
	}

	token, err := h.tokens.Mint(u.ID)
	if err != nil {
		h.logger.Error("login.mint_failed", "user_id", u.ID, "error", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.setSessionCookie(c, token)

	respond(c, http.StatusOK, "Welcome back, "+u.FullName, gin.H{
		"token": token,
		"user":  u,
	})
}

func (h *UserHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("token", "", -1, "/", "", false, true)
	respond(c, http.StatusOK, "Logged out successfully.", nil)
}

func (h *UserHandler) GetMe(c *gin.Context) {
	u, err := h.users.GetByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondFromError(c, err, "User not found")
		return
	}
	respond(c, http.StatusOK, "", gin.H{"user": u})
}

func (h *UserHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("token", token, int(h.tokens.TTL().Seconds()), "/", "", false, true)
}
