package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"skilllink/internal/model"
	"skilllink/pkg/db"
)

// DiagnosticsRepository backs the connection check tool. It reads through the
// untyped Session.Query path.
type DiagnosticsRepository struct {
	db     *db.Session
	logger *zap.Logger
}

func NewDiagnosticsRepository(session *db.Session, logger *zap.Logger) *DiagnosticsRepository {
	return &DiagnosticsRepository{db: session, logger: logger}
}

func (r *DiagnosticsRepository) ServerVersion(ctx context.Context) (string, error) {
	rows, err := r.db.Query(ctx, "diagnostics.version", "SELECT version()")
	if err != nil {
		return "", err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return "", fmt.Errorf("version() returned no rows")
	}
	return fmt.Sprint(rows[0][0]), nil
}

// ListTables returns the names of the tables in the public schema.
func (r *DiagnosticsRepository) ListTables(ctx context.Context) ([]string, error) {
	query := `
        SELECT table_name
        FROM information_schema.tables
        WHERE table_schema = 'public'
        ORDER BY table_name
    `
	rows, err := r.db.Query(ctx, "diagnostics.tables", query)
	if err != nil {
		return nil, err
	}
	tables := make([]string, 0, len(rows))
	for _, row := range rows {
		tables = append(tables, fmt.Sprint(row[0]))
	}
	return tables, nil
}

func (r *DiagnosticsRepository) CountUsers(ctx context.Context) (int64, error) {
	rows, err := r.db.Query(ctx, "diagnostics.user_count", "SELECT COUNT(*) FROM users")
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, fmt.Errorf("count returned no rows")
	}
	n, ok := rows[0][0].(int64)
	if !ok {
		return 0, fmt.Errorf("unexpected count type %T", rows[0][0])
	}
	return n, nil
}

// Report gathers the full connection check in one call.
func (r *DiagnosticsRepository) Report(ctx context.Context) (*model.DiagnosticsReport, error) {
	version, err := r.ServerVersion(ctx)
	if err != nil {
		return nil, err
	}
	tables, err := r.ListTables(ctx)
	if err != nil {
		return nil, err
	}
	count, err := r.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	r.logger.Info("Diagnostics collected", zap.Int("tables", len(tables)), zap.Int64("users", count))
	return &model.DiagnosticsReport{ServerVersion: version, Tables: tables, UserCount: count}, nil
}
