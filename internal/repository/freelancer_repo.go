package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"skilllink/internal/model"
	"skilllink/pkg/db"
)

type FreelancerRepository struct {
	db     *db.Session
	logger *zap.Logger
}

func NewFreelancerRepository(session *db.Session, logger *zap.Logger) *FreelancerRepository {
	return &FreelancerRepository{db: session, logger: logger}
}

// ListFreelancers returns all profiles, best rated first.
func (r *FreelancerRepository) ListFreelancers(ctx context.Context) ([]model.Freelancer, error) {
	query := `
        SELECT u.user_id, u.username, COALESCE(f.headline, ''),
               COALESCE(f.rate_per_hour, 0), COALESCE(f.avg_rating, 0)::float8
        FROM freelancer_profile f
        JOIN users u ON f.user_id = u.user_id
        ORDER BY f.avg_rating DESC
    `
	list := make([]model.Freelancer, 0)
	err := r.db.Select(ctx, "freelancers.list", query, nil, func(rows pgx.Rows) error {
		var f model.Freelancer
		if err := rows.Scan(&f.UserID, &f.Username, &f.Headline, &f.RatePerHourCent, &f.AvgRating); err != nil {
			return err
		}
		list = append(list, f)
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Listed freelancers", zap.Int("count", len(list)))
	return list, nil
}

// GetFreelancerDetails returns nil when the user has no freelancer profile.
func (r *FreelancerRepository) GetFreelancerDetails(ctx context.Context, userID int64) (*model.FreelancerDetails, error) {
	query := `
        SELECT u.username, u.email, COALESCE(f.headline, ''), COALESCE(f.bio, ''),
               COALESCE(f.rate_per_hour, 0), COALESCE(f.avg_rating, 0)::float8
        FROM freelancer_profile f
        JOIN users u ON f.user_id = u.user_id
        WHERE u.user_id = $1
    `
	var details *model.FreelancerDetails
	err := r.db.Select(ctx, "freelancers.details", query, []any{userID}, func(rows pgx.Rows) error {
		var d model.FreelancerDetails
		if err := rows.Scan(&d.Username, &d.Email, &d.Headline, &d.Bio, &d.RatePerHourCent, &d.AvgRating); err != nil {
			return err
		}
		details = &d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (r *FreelancerRepository) GetFreelancerSkills(ctx context.Context, userID int64) ([]model.FreelancerSkill, error) {
	query := `
        SELECT s.skill_name, fs.proficiency_level
        FROM freelancer_skill fs
        JOIN freelancer_profile f ON fs.profile_id = f.profile_id
        JOIN skill s ON fs.skill_id = s.skill_id
        WHERE f.user_id = $1
        ORDER BY fs.proficiency_level DESC
    `
	skills := make([]model.FreelancerSkill, 0)
	err := r.db.Select(ctx, "freelancers.skills", query, []any{userID}, func(rows pgx.Rows) error {
		var s model.FreelancerSkill
		if err := rows.Scan(&s.SkillName, &s.Proficiency); err != nil {
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
