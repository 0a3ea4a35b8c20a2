package model

const (
	ProposalPending  = "pending"
	ProposalAccepted = "accepted"
	ProposalRejected = "rejected"
)

// ProjectProposal is a proposal as seen from its project.
type ProjectProposal struct {
	FreelancerName string
	BidAmountCents int64
	Status         string
	CoverLetter    string
}

// FreelancerProposal is a proposal as seen from its freelancer.
type FreelancerProposal struct {
	ProjectTitle   string
	BidAmountCents int64
	Status         string
}
