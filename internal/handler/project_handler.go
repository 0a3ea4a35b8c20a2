package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"skilllink/internal/repository"
	"skilllink/pkg/logger"
)

type ProjectHandler struct {
	projects  *repository.ProjectRepository
	proposals *repository.ProposalRepository
	logger    *zap.Logger
}

func NewProjectHandler(projects *repository.ProjectRepository, proposals *repository.ProposalRepository, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{projects: projects, proposals: proposals, logger: logger}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	log := logger.WithTrace(c.Request.Context(), h.logger)
	log.Info("ListProjects request received", zap.String("client_ip", c.ClientIP()))

	projects, err := h.projects.ListProjects(c.Request.Context())
	if err != nil {
		loadFailed(c, log, "projects", err)
		return
	}

	log.Info("ListProjects: success", zap.Int("count", len(projects)))
	c.JSON(http.StatusOK, gin.H{"rows": toProjectResponses(projects)})
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	log := logger.WithTrace(c.Request.Context(), h.logger)
	idStr := c.Param("id")
	log.Info("GetProject request received", zap.String("project_id", idStr))

	projectID, err := parseID("project id", idStr)
	if err != nil {
		log.Warn("GetProject: invalid id", zap.String("project_id", idStr), zap.Error(err))
		validationFailed(c, err)
		return
	}

	ctx := c.Request.Context()
	details, err := h.projects.GetProjectDetails(ctx, projectID)
	if err != nil {
		loadFailed(c, log, "project details", err)
		return
	}
	if details == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}

	skills, err := h.projects.GetProjectSkills(ctx, projectID)
	if err != nil {
		loadFailed(c, log, "project skills", err)
		return
	}

	if wantsText(c) {
		c.String(http.StatusOK, renderProjectDetails(details, skills))
		return
	}
	c.JSON(http.StatusOK, toProjectDetailsResponse(details, skills))
}

// ListProposals serves both /projects/:id/proposals and /proposals?project_id=.
func (h *ProjectHandler) ListProposals(c *gin.Context) {
	log := logger.WithTrace(c.Request.Context(), h.logger)
	idStr := c.Param("id")
	if idStr == "" {
		idStr = c.Query("project_id")
	}
	log.Info("ListProposals request received", zap.String("project_id", idStr))

	projectID, err := parseID("project_id", idStr)
	if err != nil {
		log.Warn("ListProposals: invalid project_id", zap.String("project_id", idStr), zap.Error(err))
		validationFailed(c, err)
		return
	}

	proposals, err := h.proposals.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		loadFailed(c, log, "proposals", err)
		return
	}

	log.Info("ListProposals: success", zap.Int64("project_id", projectID), zap.Int("count", len(proposals)))
	c.JSON(http.StatusOK, gin.H{"rows": toProjectProposalResponses(proposals)})
}

// ClientDashboard lists a client's projects with proposal counts.
func (h *ProjectHandler) ClientDashboard(c *gin.Context) {
	log := logger.WithTrace(c.Request.Context(), h.logger)
	idStr := c.Param("id")
	log.Info("ClientDashboard request received", zap.String("client_id", idStr))

	clientID, err := parseID("client id", idStr)
	if err != nil {
		log.Warn("ClientDashboard: invalid client id", zap.String("client_id", idStr), zap.Error(err))
		validationFailed(c, err)
		return
	}

	projects, err := h.projects.ListClientProjects(c.Request.Context(), clientID)
	if err != nil {
		loadFailed(c, log, "client projects", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": toDashboardResponses(projects)})
}
