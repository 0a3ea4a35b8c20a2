package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"skilllink/internal/service/auth"
	"skilllink/pkg/logger"
)

type AuthHandler struct {
	svc    *auth.Service
	logger *zap.Logger
}

func NewAuthHandler(svc *auth.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, logger: logger}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	log := logger.WithTrace(c.Request.Context(), h.logger)

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Login: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}
	log.Info("Login request received", zap.String("username", req.Username))

	rec, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		loadFailed(c, log, "user", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id": rec.UserID,
		"role":    rec.Role,
		"status":  rec.Status,
	})
}
