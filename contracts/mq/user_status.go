package mq

import "time"

const (
	RoutingKeyUserBlocked   = "user.blocked"
	RoutingKeyUserUnblocked = "user.unblocked"
)

// UserStatusChangedPayload is published after a committed block or unblock.
type UserStatusChangedPayload struct {
	UserID    int64     `json:"user_id"`
	Status    string    `json:"status"` // "active" / "blocked"
	ChangedAt time.Time `json:"changed_at"`
}
