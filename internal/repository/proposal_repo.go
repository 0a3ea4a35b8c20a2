package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"skilllink/internal/model"
	"skilllink/pkg/db"
)

type ProposalRepository struct {
	db     *db.Session
	logger *zap.Logger
}

func NewProposalRepository(session *db.Session, logger *zap.Logger) *ProposalRepository {
	return &ProposalRepository{db: session, logger: logger}
}

// ListByProject returns a project's proposals, lowest bid first.
func (r *ProposalRepository) ListByProject(ctx context.Context, projectID int64) ([]model.ProjectProposal, error) {
	query := `
        SELECT u.username, COALESCE(pr.bid_amount_cents, 0), pr.status, COALESCE(pr.cover_letter, '')
        FROM proposal pr
        JOIN users u ON pr.freelancer_id = u.user_id
        WHERE pr.project_id = $1
        ORDER BY pr.bid_amount_cents ASC
    `
	proposals := make([]model.ProjectProposal, 0)
	err := r.db.Select(ctx, "proposals.by_project", query, []any{projectID}, func(rows pgx.Rows) error {
		var p model.ProjectProposal
		if err := rows.Scan(&p.FreelancerName, &p.BidAmountCents, &p.Status, &p.CoverLetter); err != nil {
			return err
		}
		proposals = append(proposals, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Listed proposals for project", zap.Int64("project_id", projectID), zap.Int("count", len(proposals)))
	return proposals, nil
}

// ListByFreelancer returns a freelancer's proposals, newest first.
func (r *ProposalRepository) ListByFreelancer(ctx context.Context, freelancerID int64) ([]model.FreelancerProposal, error) {
	query := `
        SELECT p.title, COALESCE(pr.bid_amount_cents, 0), pr.status
        FROM proposal pr
        JOIN project p ON pr.project_id = p.project_id
        WHERE pr.freelancer_id = $1
        ORDER BY pr.proposal_id DESC
    `
	proposals := make([]model.FreelancerProposal, 0)
	err := r.db.Select(ctx, "proposals.by_freelancer", query, []any{freelancerID}, func(rows pgx.Rows) error {
		var p model.FreelancerProposal
		if err := rows.Scan(&p.ProjectTitle, &p.BidAmountCents, &p.Status); err != nil {
			return err
		}
		proposals = append(proposals, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return proposals, nil
}
