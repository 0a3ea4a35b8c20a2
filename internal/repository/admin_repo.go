package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"skilllink/internal/model"
	"skilllink/pkg/db"
)

type AdminRepository struct {
	db     *db.Session
	logger *zap.Logger
}

func NewAdminRepository(session *db.Session, logger *zap.Logger) *AdminRepository {
	return &AdminRepository{db: session, logger: logger}
}

// Stats loads every platform counter in one round trip.
func (r *AdminRepository) Stats(ctx context.Context) (*model.PlatformStats, error) {
	query := `
        SELECT
            (SELECT COUNT(*) FROM users),
            (SELECT COUNT(*) FROM users WHERE role = 'client'),
            (SELECT COUNT(*) FROM users WHERE role = 'freelancer'),
            (SELECT COUNT(*) FROM users WHERE role = 'admin'),
            (SELECT COUNT(*) FROM project),
            (SELECT COUNT(*) FROM contract WHERE status = 'active'),
            (SELECT SUM(amount_cents)::bigint FROM payment WHERE status = 'released')
    `
	stats := &model.PlatformStats{}
	err := r.db.Select(ctx, "admin.stats", query, nil, func(rows pgx.Rows) error {
		return rows.Scan(
			&stats.TotalUsers,
			&stats.Clients,
			&stats.Freelancers,
			&stats.Admins,
			&stats.TotalProjects,
			&stats.ActiveContracts,
			&stats.ReleasedPaymentsCents,
		)
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
