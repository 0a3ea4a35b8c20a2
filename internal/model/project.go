package model

import "time"

type Project struct {
	ID             int64
	Title          string
	BudgetMinCents int64
	BudgetMaxCents int64
	Deadline       *time.Time
}

type ProjectDetails struct {
	ID             int64
	Title          string
	Description    string
	BudgetMinCents int64
	BudgetMaxCents int64
	Deadline       *time.Time
	ClientName     string
}

// ClientProject is one row of a client's dashboard.
type ClientProject struct {
	ID             int64
	Title          string
	BudgetMinCents int64
	BudgetMaxCents int64
	ProposalCount  int64
	AcceptedCount  int64
}

const (
	DashboardOpen       = "Open"
	DashboardInProgress = "In Progress"
)

// DashboardStatus is "In Progress" once any proposal has been accepted.
func (p ClientProject) DashboardStatus() string {
	if p.AcceptedCount > 0 {
		return DashboardInProgress
	}
	return DashboardOpen
}
