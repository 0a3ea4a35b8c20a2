package model

type Skill struct {
	ID          int64
	Name        string
	Description string
}

// SkillMatch is a search hit for freelancers having a named skill.
type SkillMatch struct {
	Username    string
	SkillName   string
	Proficiency int64
	AvgRating   float64
}
