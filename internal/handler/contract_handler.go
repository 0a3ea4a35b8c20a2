package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"skilllink/internal/repository"
	"skilllink/pkg/logger"
)

type ContractHandler struct {
	contracts *repository.ContractRepository
	logger    *zap.Logger
}

func NewContractHandler(contracts *repository.ContractRepository, logger *zap.Logger) *ContractHandler {
	return &ContractHandler{contracts: contracts, logger: logger}
}

func (h *ContractHandler) ListActive(c *gin.Context) {
	log := logger.WithTrace(c.Request.Context(), h.logger)
	log.Info("ListContracts request received", zap.String("client_ip", c.ClientIP()))

	contracts, err := h.contracts.ListActive(c.Request.Context())
	if err != nil {
		loadFailed(c, log, "contracts", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": toContractResponses(contracts)})
}

func (h *ContractHandler) ListMilestones(c *gin.Context) {
	log := logger.WithTrace(c.Request.Context(), h.logger)
	idStr := c.Param("id")

	contractID, err := parseID("contract id", idStr)
	if err != nil {
		log.Warn("ListMilestones: invalid id", zap.String("contract_id", idStr), zap.Error(err))
		validationFailed(c, err)
		return
	}

	milestones, err := h.contracts.ListMilestones(c.Request.Context(), contractID)
	if err != nil {
		loadFailed(c, log, "milestones", err)
		return
	}

	if wantsText(c) {
		c.String(http.StatusOK, renderMilestones(contractID, milestones))
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": toMilestoneResponses(milestones)})
}
