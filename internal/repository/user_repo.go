package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"skilllink/internal/model"
	"skilllink/pkg/db"
)

type UserRepository struct {
	db     *db.Session
	logger *zap.Logger
}

func NewUserRepository(session *db.Session, logger *zap.Logger) *UserRepository {
	return &UserRepository{db: session, logger: logger}
}

func scanUser(rows pgx.Rows) (model.User, error) {
	var u model.User
	err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.Status, &u.JoinedAt)
	return u, err
}

// ListUsers returns every user ordered by id.
func (r *UserRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	query := `
        SELECT user_id, username, email, role, status, joined_at
        FROM users
        ORDER BY user_id
    `
	users := make([]model.User, 0)
	err := r.db.Select(ctx, "users.list", query, nil, func(rows pgx.Rows) error {
		u, err := scanUser(rows)
		if err != nil {
			return err
		}
		users = append(users, u)
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Listed users", zap.Int("count", len(users)))
	return users, nil
}

func (r *UserRepository) ListUsersByRole(ctx context.Context, role string) ([]model.User, error) {
	query := `
        SELECT user_id, username, email, role, status, joined_at
        FROM users
        WHERE role = $1
        ORDER BY user_id
    `
	users := make([]model.User, 0)
	err := r.db.Select(ctx, "users.list_by_role", query, []any{role}, func(rows pgx.Rows) error {
		u, err := scanUser(rows)
		if err != nil {
			return err
		}
		users = append(users, u)
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Listed users by role", zap.String("role", role), zap.Int("count", len(users)))
	return users, nil
}

// FindActiveLogin returns the credential row of an active user, or nil when
// no active user has that username.
func (r *UserRepository) FindActiveLogin(ctx context.Context, username string) (*model.LoginRecord, error) {
	query := `
        SELECT user_id, role, status, password_hash
        FROM users
        WHERE username = $1 AND status = 'active'
    `
	var rec *model.LoginRecord
	err := r.db.Select(ctx, "users.find_active_login", query, []any{username}, func(rows pgx.Rows) error {
		var lr model.LoginRecord
		if err := rows.Scan(&lr.UserID, &lr.Role, &lr.Status, &lr.PasswordHash); err != nil {
			return err
		}
		rec = &lr
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// SetUserStatus updates one user's status and returns the affected row count.
func (r *UserRepository) SetUserStatus(ctx context.Context, userID int64, status string) (int64, error) {
	query := `UPDATE users SET status = $1 WHERE user_id = $2`
	affected, err := r.db.Update(ctx, "users.set_status", query, status, userID)
	if err != nil {
		return 0, err
	}

	r.logger.Info("User status updated",
		zap.Int64("user_id", userID),
		zap.String("status", status),
		zap.Int64("rows_affected", affected),
	)
	return affected, nil
}
