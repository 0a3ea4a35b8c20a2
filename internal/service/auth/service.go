package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"skilllink/internal/model"
	"skilllink/internal/repository"
	"skilllink/internal/util"
)

// ErrInvalidCredentials covers unknown users, wrong passwords and accounts
// that are not active. Callers cannot tell these apart.
var ErrInvalidCredentials = errors.New("invalid username or password")

type Service struct {
	users  *repository.UserRepository
	logger *zap.Logger
}

func NewService(users *repository.UserRepository, logger *zap.Logger) *Service {
	return &Service{users: users, logger: logger}
}

// Login authenticates an active user by username and bcrypt password.
func (s *Service) Login(ctx context.Context, username, password string) (*model.LoginRecord, error) {
	rec, err := s.users.FindActiveLogin(ctx, username)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		s.logger.Info("Login rejected: no active user", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	if rec.Status != model.StatusActive {
		s.logger.Warn("Login rejected: inactive account", zap.String("username", username), zap.String("status", rec.Status))
		return nil, ErrInvalidCredentials
	}
	if !util.CheckPassword(password, rec.PasswordHash) {
		s.logger.Info("Login rejected: wrong password", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Login succeeded", zap.Int64("user_id", rec.UserID), zap.String("role", rec.Role))
	return rec, nil
}
