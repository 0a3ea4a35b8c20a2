package admin

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	contractmq "skilllink/contracts/mq"
	"skilllink/internal/model"
	"skilllink/internal/repository"
	"skilllink/pkg/metrics"
)

var ErrUserNotFound = errors.New("user not found")

// Publisher delivers domain events. *mq.Publisher satisfies it.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

type Service struct {
	users     *repository.UserRepository
	stats     *repository.AdminRepository
	publisher Publisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewService accepts a nil publisher; status changes are then not announced.
func NewService(users *repository.UserRepository, stats *repository.AdminRepository, publisher Publisher, logger *zap.Logger) *Service {
	return &Service{
		users:     users,
		stats:     stats,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *Service) BlockUser(ctx context.Context, userID int64) error {
	return s.setStatus(ctx, userID, model.StatusBlocked, contractmq.RoutingKeyUserBlocked)
}

func (s *Service) UnblockUser(ctx context.Context, userID int64) error {
	return s.setStatus(ctx, userID, model.StatusActive, contractmq.RoutingKeyUserUnblocked)
}

func (s *Service) Stats(ctx context.Context) (*model.PlatformStats, error) {
	return s.stats.Stats(ctx)
}

// ListUsers filters by role unless role is empty or "All".
func (s *Service) ListUsers(ctx context.Context, role string) ([]model.User, error) {
	if role == "" || role == "All" {
		return s.users.ListUsers(ctx)
	}
	return s.users.ListUsersByRole(ctx, role)
}

func (s *Service) setStatus(ctx context.Context, userID int64, status, routingKey string) error {
	affected, err := s.users.SetUserStatus(ctx, userID, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		s.logger.Warn("Status change for unknown user", zap.Int64("user_id", userID), zap.String("status", status))
		return ErrUserNotFound
	}

	s.publishStatusChange(ctx, userID, status, routingKey)
	return nil
}

// publishStatusChange never fails the committed update.
func (s *Service) publishStatusChange(ctx context.Context, userID int64, status, routingKey string) {
	if s.publisher == nil {
		return
	}

	payload := contractmq.UserStatusChangedPayload{
		UserID:    userID,
		Status:    status,
		ChangedAt: s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, routingKey, payload); err != nil {
		metrics.IncrementUserStatusEvent(routingKey, "failed")
		s.logger.Error("Failed to publish user status event",
			zap.String("routing_key", routingKey),
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return
	}

	metrics.IncrementUserStatusEvent(routingKey, "published")
	s.logger.Debug("Published user status event", zap.String("routing_key", routingKey), zap.Int64("user_id", userID))
}
