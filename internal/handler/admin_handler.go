package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"skilllink/internal/model"
	"skilllink/internal/service/admin"
	"skilllink/pkg/db"
	"skilllink/pkg/logger"
)

type AdminHandler struct {
	svc    *admin.Service
	logger *zap.Logger
}

func NewAdminHandler(svc *admin.Service, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, logger: logger}
}

func (h *AdminHandler) Stats(c *gin.Context) {
	log := logger.WithTrace(c.Request.Context(), h.logger)
	log.Info("AdminStats request received", zap.String("client_ip", c.ClientIP()))

	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		loadFailed(c, log, "statistics", err)
		return
	}

	if wantsText(c) {
		c.String(http.StatusOK, renderStats(stats))
		return
	}
	c.JSON(http.StatusOK, toStatsResponse(stats))
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	log := logger.WithTrace(c.Request.Context(), h.logger)
	role := c.DefaultQuery("role", "All")
	log.Info("AdminListUsers request received", zap.String("role", role))

	switch role {
	case "All", model.RoleClient, model.RoleFreelancer, model.RoleAdmin:
	default:
		log.Warn("AdminListUsers: invalid role", zap.String("role", role))
		validationFailed(c, &ValidationError{Field: "role", Value: role})
		return
	}

	users, err := h.svc.ListUsers(c.Request.Context(), role)
	if err != nil {
		loadFailed(c, log, "users", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": toUserResponses(users)})
}

func (h *AdminHandler) BlockUser(c *gin.Context) {
	h.changeStatus(c, "block", h.svc.BlockUser)
}

func (h *AdminHandler) UnblockUser(c *gin.Context) {
	h.changeStatus(c, "unblock", h.svc.UnblockUser)
}

func (h *AdminHandler) changeStatus(c *gin.Context, action string, apply func(context.Context, int64) error) {
	log := logger.WithTrace(c.Request.Context(), h.logger)
	idStr := c.Param("id")
	log.Info("Admin "+action+" request received", zap.String("user_id", idStr))

	userID, err := parseID("user id", idStr)
	if err != nil {
		log.Warn("Admin "+action+": invalid user id", zap.String("user_id", idStr), zap.Error(err))
		validationFailed(c, err)
		return
	}

	if err := apply(c.Request.Context(), userID); err != nil {
		if errors.Is(err, admin.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		status := http.StatusInternalServerError
		if errors.Is(err, db.ErrNotConnected) {
			status = http.StatusServiceUnavailable
		}
		log.Error("Admin "+action+": update failed", zap.Int64("user_id", userID), zap.Error(err))
		c.JSON(status, gin.H{"error": "failed to " + action + " user"})
		return
	}

	log.Info("Admin "+action+": success", zap.Int64("user_id", userID))
	c.JSON(http.StatusOK, gin.H{"status": "ok", "user_id": userID})
}
