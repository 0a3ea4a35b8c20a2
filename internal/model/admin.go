package model

type PlatformStats struct {
	TotalUsers            int64
	Clients               int64
	Freelancers           int64
	Admins                int64
	TotalProjects         int64
	ActiveContracts       int64
	ReleasedPaymentsCents *int64
}
