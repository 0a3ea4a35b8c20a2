package model

// Freelancer is a row of the freelancer listing.
type Freelancer struct {
	UserID          int64
	Username        string
	Headline        string
	RatePerHourCent int64
	AvgRating       float64
}

type FreelancerDetails struct {
	Username        string
	Email           string
	Headline        string
	Bio             string
	RatePerHourCent int64
	AvgRating       float64
}

type FreelancerSkill struct {
	SkillName   string
	Proficiency int64
}
