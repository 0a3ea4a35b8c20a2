package httpserver

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"skilllink/internal/handler"
	"skilllink/pkg/db"
)

type Handlers struct {
	Freelancers *handler.FreelancerHandler
	Projects    *handler.ProjectHandler
	Contracts   *handler.ContractHandler
	Search      *handler.SearchHandler
	Admin       *handler.AdminHandler
	Auth        *handler.AuthHandler
	Session     *handler.SessionHandler
	About       gin.HandlerFunc
}

// Readiness reports whether the event publisher is usable. *mq.Publisher
// satisfies it.
type Readiness interface {
	IsConnected() bool
}

type Router struct {
	Engine *gin.Engine
}

// NewRouter wires every route. publisher may be nil when events are disabled.
func NewRouter(h Handlers, session *db.Session, publisher Readiness, logger *zap.Logger) *Router {
	r := gin.New()
	r.Use(gin.Recovery(), TraceMiddleware(), RequestLogMiddleware(logger), MetricsMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(200)
	})

	r.GET("/readyz", func(c *gin.Context) {
		if err := session.Ping(c.Request.Context()); err != nil {
			c.JSON(503, gin.H{"status": "db_not_ready", "error": err.Error()})
			return
		}

		if publisher != nil && !publisher.IsConnected() {
			c.JSON(503, gin.H{"status": "mq_not_ready"})
			return
		}

		c.JSON(200, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/freelancers", h.Freelancers.ListFreelancers)
	r.GET("/freelancers/:id", h.Freelancers.GetFreelancer)
	r.GET("/freelancers/:id/proposals", h.Freelancers.ListProposals)
	r.GET("/freelancers/:id/reviews", h.Freelancers.ListReviews)
	r.GET("/freelancers/:id/earnings", h.Freelancers.GetEarnings)

	r.GET("/projects", h.Projects.ListProjects)
	r.GET("/projects/:id", h.Projects.GetProject)
	r.GET("/projects/:id/proposals", h.Projects.ListProposals)
	r.GET("/proposals", h.Projects.ListProposals)
	r.GET("/clients/:id/dashboard", h.Projects.ClientDashboard)

	r.GET("/contracts", h.Contracts.ListActive)
	r.GET("/contracts/:id/milestones", h.Contracts.ListMilestones)

	r.GET("/skills", h.Search.ListSkills)
	r.GET("/search", h.Search.SearchBySkill)

	adminGroup := r.Group("/admin")
	{
		adminGroup.GET("/stats", h.Admin.Stats)
		adminGroup.GET("/users", h.Admin.ListUsers)
		adminGroup.POST("/users/:id/block", h.Admin.BlockUser)
		adminGroup.POST("/users/:id/unblock", h.Admin.UnblockUser)
	}

	r.POST("/login", h.Auth.Login)
	r.GET("/session", h.Session.Status)
	r.POST("/session/reconnect", h.Session.Reconnect)
	r.GET("/about", h.About)

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
