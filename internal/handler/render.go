package handler

import (
	"fmt"
	"strings"

	"skilllink/internal/model"
	"skilllink/pkg/money"
)

// The render functions produce the plain-text detail panes served with
// ?format=text.

func renderFreelancerDetails(d *model.FreelancerDetails, skills []model.FreelancerSkill) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Username: %s\n", d.Username)
	fmt.Fprintf(&b, "Email: %s\n", d.Email)
	fmt.Fprintf(&b, "Headline: %s\n", d.Headline)
	fmt.Fprintf(&b, "Bio: %s\n", d.Bio)
	fmt.Fprintf(&b, "Rate per Hour: %s\n", money.Format(d.RatePerHourCent))
	fmt.Fprintf(&b, "Average Rating: %s\n\n", money.FormatRating(d.AvgRating))
	b.WriteString("Skills:\n")

	if len(skills) == 0 {
		b.WriteString("  No skills listed\n")
		return b.String()
	}
	for _, s := range skills {
		fmt.Fprintf(&b, "  - %s (Level %d/5)\n", s.SkillName, s.Proficiency)
	}
	return b.String()
}

func renderProjectDetails(d *model.ProjectDetails, skills []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Project ID: %d\n", d.ID)
	fmt.Fprintf(&b, "Title: %s\n", d.Title)
	fmt.Fprintf(&b, "Client: %s\n", d.ClientName)
	fmt.Fprintf(&b, "Description: %s\n", d.Description)
	fmt.Fprintf(&b, "Budget: %s\n", money.FormatRange(d.BudgetMinCents, d.BudgetMaxCents))
	fmt.Fprintf(&b, "Deadline: %s\n\n", formatDate(d.Deadline))
	b.WriteString("Required Skills:\n")

	if len(skills) == 0 {
		b.WriteString("  No specific skills required\n")
		return b.String()
	}
	for _, s := range skills {
		fmt.Fprintf(&b, "  - %s\n", s)
	}
	return b.String()
}

func renderMilestones(contractID int64, milestones []model.Milestone) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Milestones for Contract ID %d:\n\n", contractID)

	if len(milestones) == 0 {
		b.WriteString("No milestones found for this contract\n")
		return b.String()
	}
	for _, m := range milestones {
		fmt.Fprintf(&b, "Milestone %d: %s\n", m.ID, m.Title)
		fmt.Fprintf(&b, "  Amount: %s\n", money.Format(m.AmountCents))
		fmt.Fprintf(&b, "  Due Date: %s\n", formatDate(m.DueDate))
		fmt.Fprintf(&b, "  Status: %s\n\n", m.Status)
	}
	return b.String()
}

func renderStats(s *model.PlatformStats) string {
	lines := []string{
		fmt.Sprintf("Total Users: %d", s.TotalUsers),
		fmt.Sprintf("  - Clients: %d", s.Clients),
		fmt.Sprintf("  - Freelancers: %d", s.Freelancers),
		fmt.Sprintf("  - Admins: %d", s.Admins),
		fmt.Sprintf("\nTotal Projects: %d", s.TotalProjects),
		fmt.Sprintf("Active Contracts: %d", s.ActiveContracts),
		fmt.Sprintf("Total Payments Released: %s", money.FormatNullable(s.ReleasedPaymentsCents)),
	}
	return strings.Join(lines, "\n")
}
