package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"skilllink/internal/model"
	"skilllink/pkg/db"
)

type ContractRepository struct {
	db     *db.Session
	logger *zap.Logger
}

func NewContractRepository(session *db.Session, logger *zap.Logger) *ContractRepository {
	return &ContractRepository{db: session, logger: logger}
}

func (r *ContractRepository) ListActive(ctx context.Context) ([]model.Contract, error) {
	query := `
        SELECT contract_id, client_id, freelancer_id, COALESCE(total_amount_cents, 0), status
        FROM contract
        WHERE status = 'active'
        ORDER BY contract_id
    `
	contracts := make([]model.Contract, 0)
	err := r.db.Select(ctx, "contracts.active", query, nil, func(rows pgx.Rows) error {
		var c model.Contract
		if err := rows.Scan(&c.ID, &c.ClientID, &c.FreelancerID, &c.TotalAmountCents, &c.Status); err != nil {
			return err
		}
		contracts = append(contracts, c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Listed active contracts", zap.Int("count", len(contracts)))
	return contracts, nil
}

// ListMilestones returns a contract's milestones, earliest due date first.
func (r *ContractRepository) ListMilestones(ctx context.Context, contractID int64) ([]model.Milestone, error) {
	query := `
        SELECT milestone_id, title, COALESCE(amount_cents, 0), due_date, status
        FROM milestone
        WHERE contract_id = $1
        ORDER BY due_date ASC
    `
	milestones := make([]model.Milestone, 0)
	err := r.db.Select(ctx, "contracts.milestones", query, []any{contractID}, func(rows pgx.Rows) error {
		var m model.Milestone
		if err := rows.Scan(&m.ID, &m.Title, &m.AmountCents, &m.DueDate, &m.Status); err != nil {
			return err
		}
		milestones = append(milestones, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return milestones, nil
}
