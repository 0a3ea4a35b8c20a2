package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"skilllink/internal/model"
	"skilllink/pkg/db"
)

type PaymentRepository struct {
	db     *db.Session
	logger *zap.Logger
}

func NewPaymentRepository(session *db.Session, logger *zap.Logger) *PaymentRepository {
	return &PaymentRepository{db: session, logger: logger}
}

// FreelancerEarnings sums released payments to payeeID. TotalCents stays nil
// when there are none.
func (r *PaymentRepository) FreelancerEarnings(ctx context.Context, payeeID int64) (*model.Earnings, error) {
	query := `
        SELECT SUM(amount_cents)::bigint AS total_earned
        FROM payment
        WHERE payee_id = $1 AND status = 'released'
    `
	earnings := &model.Earnings{PayeeID: payeeID}
	err := r.db.Select(ctx, "payments.earnings", query, []any{payeeID}, func(rows pgx.Rows) error {
		return rows.Scan(&earnings.TotalCents)
	})
	if err != nil {
		return nil, err
	}
	return earnings, nil
}
