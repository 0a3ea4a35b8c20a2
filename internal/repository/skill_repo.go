package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"skilllink/internal/model"
	"skilllink/pkg/db"
)

type SkillRepository struct {
	db     *db.Session
	logger *zap.Logger
}

func NewSkillRepository(session *db.Session, logger *zap.Logger) *SkillRepository {
	return &SkillRepository{db: session, logger: logger}
}

func (r *SkillRepository) ListSkills(ctx context.Context) ([]model.Skill, error) {
	query := `
        SELECT skill_id, skill_name, COALESCE(skill_description, '')
        FROM skill
        ORDER BY skill_name
    `
	skills := make([]model.Skill, 0)
	err := r.db.Select(ctx, "skills.list", query, nil, func(rows pgx.Rows) error {
		var s model.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Description); err != nil {
			return err
		}
		skills = append(skills, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return skills, nil
}

// SearchFreelancersBySkill matches the skill name exactly. Results are
// ordered by proficiency, then by average rating.
func (r *SkillRepository) SearchFreelancersBySkill(ctx context.Context, skillName string) ([]model.SkillMatch, error) {
	query := `
        SELECT u.username, s.skill_name, fs.proficiency_level, COALESCE(f.avg_rating, 0)::float8
        FROM freelancer_skill fs
        JOIN freelancer_profile f ON fs.profile_id = f.profile_id
        JOIN users u ON f.user_id = u.user_id
        JOIN skill s ON fs.skill_id = s.skill_id
        WHERE s.skill_name = $1
        ORDER BY fs.proficiency_level DESC, f.avg_rating DESC
    `
	matches := make([]model.SkillMatch, 0)
	err := r.db.Select(ctx, "skills.search", query, []any{skillName}, func(rows pgx.Rows) error {
		var m model.SkillMatch
		if err := rows.Scan(&m.Username, &m.SkillName, &m.Proficiency, &m.AvgRating); err != nil {
			return err
		}
		matches = append(matches, m)
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Searched freelancers by skill", zap.String("skill", skillName), zap.Int("count", len(matches)))
	return matches, nil
}
