package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"skilllink/internal/repository"
	"skilllink/pkg/logger"
)

type SearchHandler struct {
	skills *repository.SkillRepository
	logger *zap.Logger
}

func NewSearchHandler(skills *repository.SkillRepository, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{skills: skills, logger: logger}
}

func (h *SearchHandler) ListSkills(c *gin.Context) {
	log := logger.WithTrace(c.Request.Context(), h.logger)

	skills, err := h.skills.ListSkills(c.Request.Context())
	if err != nil {
		loadFailed(c, log, "skills", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": toSkillResponses(skills)})
}

func (h *SearchHandler) SearchBySkill(c *gin.Context) {
	log := logger.WithTrace(c.Request.Context(), h.logger)
	skill := strings.TrimSpace(c.Query("skill"))
	log.Info("SearchBySkill request received", zap.String("skill", skill))

	if skill == "" {
		err := &ValidationError{Field: "skill"}
		log.Warn("SearchBySkill: skill is required")
		validationFailed(c, err)
		return
	}

	matches, err := h.skills.SearchFreelancersBySkill(c.Request.Context(), skill)
	if err != nil {
		loadFailed(c, log, "search results", err)
		return
	}

	log.Info("SearchBySkill: success", zap.String("skill", skill), zap.Int("count", len(matches)))
	c.JSON(http.StatusOK, gin.H{"rows": toSkillMatchResponses(matches)})
}
