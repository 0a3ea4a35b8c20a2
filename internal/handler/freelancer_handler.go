package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"skilllink/internal/repository"
	"skilllink/pkg/logger"
	"skilllink/pkg/money"
)

type FreelancerHandler struct {
	freelancers *repository.FreelancerRepository
	proposals   *repository.ProposalRepository
	reviews     *repository.ReviewRepository
	payments    *repository.PaymentRepository
	logger      *zap.Logger
}

func NewFreelancerHandler(
	freelancers *repository.FreelancerRepository,
	proposals *repository.ProposalRepository,
	reviews *repository.ReviewRepository,
	payments *repository.PaymentRepository,
	logger *zap.Logger,
) *FreelancerHandler {
	return &FreelancerHandler{
		freelancers: freelancers,
		proposals:   proposals,
		reviews:     reviews,
		payments:    payments,
		logger:      logger,
	}
}

func (h *FreelancerHandler) ListFreelancers(c *gin.Context) {
	log := logger.WithTrace(c.Request.Context(), h.logger)
	log.Info("ListFreelancers request received", zap.String("client_ip", c.ClientIP()))

	list, err := h.freelancers.ListFreelancers(c.Request.Context())
	if err != nil {
		loadFailed(c, log, "freelancers", err)
		return
	}

	log.Info("ListFreelancers: success", zap.Int("count", len(list)))
	c.JSON(http.StatusOK, gin.H{"rows": toFreelancerResponses(list)})
}

func (h *FreelancerHandler) GetFreelancer(c *gin.Context) {
	log := logger.WithTrace(c.Request.Context(), h.logger)
	idStr := c.Param("id")
	log.Info("GetFreelancer request received", zap.String("user_id", idStr))

	userID, err := parseID("freelancer id", idStr)
	if err != nil {
		log.Warn("GetFreelancer: invalid id", zap.String("user_id", idStr), zap.Error(err))
		validationFailed(c, err)
		return
	}

	ctx := c.Request.Context()
	details, err := h.freelancers.GetFreelancerDetails(ctx, userID)
	if err != nil {
		loadFailed(c, log, "freelancer details", err)
		return
	}
	if details == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "freelancer not found"})
		return
	}

	skills, err := h.freelancers.GetFreelancerSkills(ctx, userID)
	if err != nil {
		loadFailed(c, log, "freelancer skills", err)
		return
	}

	if wantsText(c) {
		c.String(http.StatusOK, renderFreelancerDetails(details, skills))
		return
	}
	c.JSON(http.StatusOK, toFreelancerDetailsResponse(details, skills))
}

func (h *FreelancerHandler) ListProposals(c *gin.Context) {
	log := logger.WithTrace(c.Request.Context(), h.logger)
	idStr := c.Param("id")

	freelancerID, err := parseID("freelancer id", idStr)
	if err != nil {
		log.Warn("ListFreelancerProposals: invalid id", zap.String("user_id", idStr), zap.Error(err))
		validationFailed(c, err)
		return
	}

	proposals, err := h.proposals.ListByFreelancer(c.Request.Context(), freelancerID)
	if err != nil {
		loadFailed(c, log, "proposals", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": toFreelancerProposalResponses(proposals)})
}

func (h *FreelancerHandler) ListReviews(c *gin.Context) {
	log := logger.WithTrace(c.Request.Context(), h.logger)
	idStr := c.Param("id")

	freelancerID, err := parseID("freelancer id", idStr)
	if err != nil {
		log.Warn("ListReviews: invalid id", zap.String("user_id", idStr), zap.Error(err))
		validationFailed(c, err)
		return
	}

	reviews, err := h.reviews.ListForReviewee(c.Request.Context(), freelancerID)
	if err != nil {
		loadFailed(c, log, "reviews", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": toReviewResponses(reviews)})
}

func (h *FreelancerHandler) GetEarnings(c *gin.Context) {
	log := logger.WithTrace(c.Request.Context(), h.logger)
	idStr := c.Param("id")

	freelancerID, err := parseID("freelancer id", idStr)
	if err != nil {
		log.Warn("GetEarnings: invalid id", zap.String("user_id", idStr), zap.Error(err))
		validationFailed(c, err)
		return
	}

	earnings, err := h.payments.FreelancerEarnings(c.Request.Context(), freelancerID)
	if err != nil {
		loadFailed(c, log, "earnings", err)
		return
	}

	c.JSON(http.StatusOK, earningsResponse{
		FreelancerID: freelancerID,
		TotalCents:   earnings.TotalCents,
		Total:        money.FormatNullable(earnings.TotalCents),
	})
}
