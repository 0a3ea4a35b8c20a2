package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"skilllink/pkg/db"
	"skilllink/pkg/logger"
)

// SessionHandler exposes the database connection settings and reconnect.
type SessionHandler struct {
	session *db.Session
	logger  *zap.Logger
}

func NewSessionHandler(session *db.Session, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{session: session, logger: logger}
}

// reconnectRequest holds optional replacements for the stored settings.
type reconnectRequest struct {
	Host     *string `json:"host"`
	Port     *int    `json:"port"`
	Name     *string `json:"name"`
	User     *string `json:"user"`
	Password *string `json:"password"`
}

func (h *SessionHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"connected": h.session.Connected(),
		"settings":  h.session.Settings(),
	})
}

func (h *SessionHandler) Reconnect(c *gin.Context) {
	log := logger.WithTrace(c.Request.Context(), h.logger)

	var req reconnectRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Warn("Reconnect: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid settings"})
		return
	}
	if req.Port != nil && (*req.Port <= 0 || *req.Port > 65535) {
		validationFailed(c, &ValidationError{Field: "port", Value: "out of range"})
		return
	}

	cfg := h.session.Settings()
	if req.Host != nil {
		cfg.Host = *req.Host
	}
	if req.Port != nil {
		cfg.Port = *req.Port
	}
	if req.Name != nil {
		cfg.Name = *req.Name
	}
	if req.User != nil {
		cfg.User = *req.User
	}
	if req.Password != nil {
		cfg.Password = *req.Password
	}

	log.Info("Reconnect request received", zap.String("host", cfg.Host), zap.String("db", cfg.Name))
	if err := h.session.Reconnect(c.Request.Context(), &cfg); err != nil {
		log.Error("Reconnect failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to reconnect to database"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"connected": true, "settings": h.session.Settings()})
}
