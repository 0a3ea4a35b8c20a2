package model

import "time"

const ContractActive = "active"

type Contract struct {
	ID               int64
	ClientID         int64
	FreelancerID     int64
	TotalAmountCents int64
	Status           string
}

type Milestone struct {
	ID          int64
	Title       string
	AmountCents int64
	DueDate     *time.Time
	Status      string
}
