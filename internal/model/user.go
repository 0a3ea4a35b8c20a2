package model

import "time"

const (
	RoleClient     = "client"
	RoleFreelancer = "freelancer"
	RoleAdmin      = "admin"

	StatusActive  = "active"
	StatusBlocked = "blocked"
)

type User struct {
	ID       int64
	Username string
	Email    string
	Role     string
	Status   string
	JoinedAt time.Time
}

// LoginRecord is the credential row of an active user.
type LoginRecord struct {
	UserID       int64
	Role         string
	Status       string
	PasswordHash string
}
