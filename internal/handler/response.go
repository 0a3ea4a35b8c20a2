package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"skilllink/internal/model"
	"skilllink/pkg/db"
	"skilllink/pkg/money"
)

const dateLayout = "2006-01-02"

func validationFailed(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// loadFailed answers a failed read with an empty table, never stale rows.
func loadFailed(c *gin.Context, logger *zap.Logger, thing string, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, db.ErrNotConnected) {
		status = http.StatusServiceUnavailable
	}
	logger.Error("Failed to load "+thing, zap.String("operation", db.Operation(err)), zap.Error(err))
	c.JSON(status, gin.H{
		"error":     "failed to load " + thing,
		"operation": db.Operation(err),
		"rows":      []any{},
	})
}

func wantsText(c *gin.Context) bool {
	return c.Query("format") == "text"
}

type freelancerResponse struct {
	UserID           int64  `json:"user_id"`
	Username         string `json:"username"`
	Headline         string `json:"headline"`
	RatePerHourCents int64  `json:"rate_per_hour_cents"`
	RatePerHour      string `json:"rate_per_hour"`
	AvgRating        string `json:"avg_rating"`
}

type freelancerSkillResponse struct {
	SkillName   string `json:"skill_name"`
	Proficiency int64  `json:"proficiency_level"`
}

type freelancerDetailsResponse struct {
	Username         string                    `json:"username"`
	Email            string                    `json:"email"`
	Headline         string                    `json:"headline"`
	Bio              string                    `json:"bio"`
	RatePerHourCents int64                     `json:"rate_per_hour_cents"`
	RatePerHour      string                    `json:"rate_per_hour"`
	AvgRating        string                    `json:"avg_rating"`
	Skills           []freelancerSkillResponse `json:"skills"`
}

type projectResponse struct {
	ID             int64  `json:"project_id"`
	Title          string `json:"title"`
	BudgetMinCents int64  `json:"budget_min_cents"`
	BudgetMaxCents int64  `json:"budget_max_cents"`
	MinBudget      string `json:"min_budget"`
	MaxBudget      string `json:"max_budget"`
	Deadline       string `json:"deadline"`
}

type projectDetailsResponse struct {
	ID             int64    `json:"project_id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	ClientName     string   `json:"client_name"`
	BudgetMinCents int64    `json:"budget_min_cents"`
	BudgetMaxCents int64    `json:"budget_max_cents"`
	Budget         string   `json:"budget"`
	Deadline       string   `json:"deadline"`
	Skills         []string `json:"required_skills"`
}

type projectProposalResponse struct {
	Freelancer  string `json:"freelancer"`
	BidCents    int64  `json:"bid_amount_cents"`
	Bid         string `json:"bid_amount"`
	Status      string `json:"status"`
	CoverLetter string `json:"cover_letter"`
}

type freelancerProposalResponse struct {
	ProjectTitle string `json:"project_title"`
	BidCents     int64  `json:"bid_amount_cents"`
	Bid          string `json:"bid_amount"`
	Status       string `json:"status"`
}

type contractResponse struct {
	ID               int64  `json:"contract_id"`
	ClientID         int64  `json:"client_id"`
	FreelancerID     int64  `json:"freelancer_id"`
	TotalAmountCents int64  `json:"total_amount_cents"`
	TotalAmount      string `json:"total_amount"`
	Status           string `json:"status"`
}

type milestoneResponse struct {
	ID          int64  `json:"milestone_id"`
	Title       string `json:"title"`
	AmountCents int64  `json:"amount_cents"`
	Amount      string `json:"amount"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
}

type reviewResponse struct {
	Rating   int64  `json:"rating"`
	Feedback string `json:"feedback"`
	Reviewer string `json:"reviewer"`
}

type earningsResponse struct {
	FreelancerID int64  `json:"freelancer_id"`
	TotalCents   *int64 `json:"total_earned_cents"`
	Total        string `json:"total_earned"`
}

type skillMatchResponse struct {
	Username    string `json:"username"`
	SkillName   string `json:"skill_name"`
	Proficiency int64  `json:"proficiency_level"`
	AvgRating   string `json:"avg_rating"`
}

type dashboardProjectResponse struct {
	ID            int64  `json:"project_id"`
	Title         string `json:"title"`
	Budget        string `json:"budget"`
	ProposalCount int64  `json:"proposals"`
	Status        string `json:"status"`
}

type userResponse struct {
	ID       int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	JoinedAt string `json:"joined_at"`
}

type statsResponse struct {
	TotalUsers            int64  `json:"total_users"`
	Clients               int64  `json:"clients"`
	Freelancers           int64  `json:"freelancers"`
	Admins                int64  `json:"admins"`
	TotalProjects         int64  `json:"total_projects"`
	ActiveContracts       int64  `json:"active_contracts"`
	ReleasedPaymentsCents *int64 `json:"released_payments_cents"`
	ReleasedPayments      string `json:"released_payments"`
}

// formatDate renders an unset date as "Not set".
func formatDate(t *time.Time) string {
	if t == nil {
		return "Not set"
	}
	return t.Format(dateLayout)
}

func toFreelancerResponses(list []model.Freelancer) []freelancerResponse {
	out := make([]freelancerResponse, 0, len(list))
	for _, f := range list {
		out = append(out, freelancerResponse{
			UserID:           f.UserID,
			Username:         f.Username,
			Headline:         f.Headline,
			RatePerHourCents: f.RatePerHourCent,
			RatePerHour:      money.Format(f.RatePerHourCent),
			AvgRating:        money.FormatRating(f.AvgRating),
		})
	}
	return out
}

func toFreelancerDetailsResponse(d *model.FreelancerDetails, skills []model.FreelancerSkill) freelancerDetailsResponse {
	resp := freelancerDetailsResponse{
		Username:         d.Username,
		Email:            d.Email,
		Headline:         d.Headline,
		Bio:              d.Bio,
		RatePerHourCents: d.RatePerHourCent,
		RatePerHour:      money.Format(d.RatePerHourCent),
		AvgRating:        money.FormatRating(d.AvgRating),
		Skills:           make([]freelancerSkillResponse, 0, len(skills)),
	}
	for _, s := range skills {
		resp.Skills = append(resp.Skills, freelancerSkillResponse{SkillName: s.SkillName, Proficiency: s.Proficiency})
	}
	return resp
}

func toProjectResponses(list []model.Project) []projectResponse {
	out := make([]projectResponse, 0, len(list))
	for _, p := range list {
		out = append(out, projectResponse{
			ID:             p.ID,
			Title:          p.Title,
			BudgetMinCents: p.BudgetMinCents,
			BudgetMaxCents: p.BudgetMaxCents,
			MinBudget:      money.Format(p.BudgetMinCents),
			MaxBudget:      money.Format(p.BudgetMaxCents),
			Deadline:       formatDate(p.Deadline),
		})
	}
	return out
}

func toProjectDetailsResponse(d *model.ProjectDetails, skills []string) projectDetailsResponse {
	return projectDetailsResponse{
		ID:             d.ID,
		Title:          d.Title,
		Description:    d.Description,
		ClientName:     d.ClientName,
		BudgetMinCents: d.BudgetMinCents,
		BudgetMaxCents: d.BudgetMaxCents,
		Budget:         money.FormatRange(d.BudgetMinCents, d.BudgetMaxCents),
		Deadline:       formatDate(d.Deadline),
		Skills:         skills,
	}
}

func toProjectProposalResponses(list []model.ProjectProposal) []projectProposalResponse {
	out := make([]projectProposalResponse, 0, len(list))
	for _, p := range list {
		out = append(out, projectProposalResponse{
			Freelancer:  p.FreelancerName,
			BidCents:    p.BidAmountCents,
			Bid:         money.Format(p.BidAmountCents),
			Status:      p.Status,
			CoverLetter: p.CoverLetter,
		})
	}
	return out
}

func toFreelancerProposalResponses(list []model.FreelancerProposal) []freelancerProposalResponse {
	out := make([]freelancerProposalResponse, 0, len(list))
	for _, p := range list {
		out = append(out, freelancerProposalResponse{
			ProjectTitle: p.ProjectTitle,
			BidCents:     p.BidAmountCents,
			Bid:          money.Format(p.BidAmountCents),
			Status:       p.Status,
		})
	}
	return out
}

func toContractResponses(list []model.Contract) []contractResponse {
	out := make([]contractResponse, 0, len(list))
	for _, ct := range list {
		out = append(out, contractResponse{
			ID:               ct.ID,
			ClientID:         ct.ClientID,
			FreelancerID:     ct.FreelancerID,
			TotalAmountCents: ct.TotalAmountCents,
			TotalAmount:      money.Format(ct.TotalAmountCents),
			Status:           ct.Status,
		})
	}
	return out
}

func toMilestoneResponses(list []model.Milestone) []milestoneResponse {
	out := make([]milestoneResponse, 0, len(list))
	for _, m := range list {
		out = append(out, milestoneResponse{
			ID:          m.ID,
			Title:       m.Title,
			AmountCents: m.AmountCents,
			Amount:      money.Format(m.AmountCents),
			DueDate:     formatDate(m.DueDate),
			Status:      m.Status,
		})
	}
	return out
}

func toReviewResponses(list []model.Review) []reviewResponse {
	out := make([]reviewResponse, 0, len(list))
	for _, r := range list {
		out = append(out, reviewResponse{Rating: r.Rating, Feedback: r.Feedback, Reviewer: r.Reviewer})
	}
	return out
}

func toSkillMatchResponses(list []model.SkillMatch) []skillMatchResponse {
	out := make([]skillMatchResponse, 0, len(list))
	for _, m := range list {
		out = append(out, skillMatchResponse{
			Username:    m.Username,
			SkillName:   m.SkillName,
			Proficiency: m.Proficiency,
			AvgRating:   money.FormatRating(m.AvgRating),
		})
	}
	return out
}

func toDashboardResponses(list []model.ClientProject) []dashboardProjectResponse {
	out := make([]dashboardProjectResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dashboardProjectResponse{
			ID:            p.ID,
			Title:         p.Title,
			Budget:        money.FormatRange(p.BudgetMinCents, p.BudgetMaxCents),
			ProposalCount: p.ProposalCount,
			Status:        p.DashboardStatus(),
		})
	}
	return out
}

func toUserResponses(list []model.User) []userResponse {
	out := make([]userResponse, 0, len(list))
	for _, u := range list {
		out = append(out, userResponse{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
			Role:     u.Role,
			Status:   u.Status,
			JoinedAt: u.JoinedAt.Format(time.RFC3339),
		})
	}
	return out
}

func toStatsResponse(s *model.PlatformStats) statsResponse {
	return statsResponse{
		TotalUsers:            s.TotalUsers,
		Clients:               s.Clients,
		Freelancers:           s.Freelancers,
		Admins:                s.Admins,
		TotalProjects:         s.TotalProjects,
		ActiveContracts:       s.ActiveContracts,
		ReleasedPaymentsCents: s.ReleasedPaymentsCents,
		ReleasedPayments:      money.FormatNullable(s.ReleasedPaymentsCents),
	}
}

type skillResponse struct {
	ID          int64  `json:"skill_id"`
	Name        string `json:"skill_name"`
	Description string `json:"skill_description"`
}

func toSkillResponses(list []model.Skill) []skillResponse {
	out := make([]skillResponse, 0, len(list))
	for _, s := range list {
		out = append(out, skillResponse{ID: s.ID, Name: s.Name, Description: s.Description})
	}
	return out
}
