package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"skilllink/internal/model"
	"skilllink/pkg/db"
)

type ProjectRepository struct {
	db     *db.Session
	logger *zap.Logger
}

func NewProjectRepository(session *db.Session, logger *zap.Logger) *ProjectRepository {
	return &ProjectRepository{db: session, logger: logger}
}

// ListProjects returns all projects, nearest deadline first.
func (r *ProjectRepository) ListProjects(ctx context.Context) ([]model.Project, error) {
	query := `
        SELECT project_id, title, COALESCE(budget_min_cents, 0), COALESCE(budget_max_cents, 0), deadline
        FROM project
        ORDER BY deadline ASC
    `
	projects := make([]model.Project, 0)
	err := r.db.Select(ctx, "projects.list", query, nil, func(rows pgx.Rows) error {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.BudgetMinCents, &p.BudgetMaxCents, &p.Deadline); err != nil {
			return err
		}
		projects = append(projects, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Listed projects", zap.Int("count", len(projects)))
	return projects, nil
}

// GetProjectDetails returns nil when the project does not exist.
func (r *ProjectRepository) GetProjectDetails(ctx context.Context, projectID int64) (*model.ProjectDetails, error) {
	query := `
        SELECT p.project_id, p.title, COALESCE(p.description, ''), COALESCE(p.budget_min_cents, 0),
               COALESCE(p.budget_max_cents, 0), p.deadline, u.username AS client_name
        FROM project p
        JOIN users u ON p.client_id = u.user_id
        WHERE p.project_id = $1
    `
	var details *model.ProjectDetails
	err := r.db.Select(ctx, "projects.details", query, []any{projectID}, func(rows pgx.Rows) error {
		var d model.ProjectDetails
		if err := rows.Scan(&d.ID, &d.Title, &d.Description, &d.BudgetMinCents, &d.BudgetMaxCents, &d.Deadline, &d.ClientName); err != nil {
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

// GetProjectSkills returns the names of the skills a project requires.
func (r *ProjectRepository) GetProjectSkills(ctx context.Context, projectID int64) ([]string, error) {
	query := `
        SELECT s.skill_name
        FROM project_skill ps
        JOIN skill s ON ps.skill_id = s.skill_id
        WHERE ps.project_id = $1
        ORDER BY s.skill_name
    `
	skills := make([]string, 0)
	err := r.db.Select(ctx, "projects.skills", query, []any{projectID}, func(rows pgx.Rows) error {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		skills = append(skills, name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return skills, nil
}

// ListClientProjects counts proposals and accepted proposals per project in
// a single statement.
func (r *ProjectRepository) ListClientProjects(ctx context.Context, clientID int64) ([]model.ClientProject, error) {
	query := `
        SELECT p.project_id, p.title, COALESCE(p.budget_min_cents, 0), COALESCE(p.budget_max_cents, 0),
               COUNT(pr.proposal_id) AS proposal_count,
               COUNT(pr.proposal_id) FILTER (WHERE pr.status = 'accepted') AS accepted_count
        FROM project p
        LEFT JOIN proposal pr ON p.project_id = pr.project_id
        WHERE p.client_id = $1
        GROUP BY p.project_id, p.title, p.budget_min_cents, p.budget_max_cents
        ORDER BY p.project_id DESC
    `
	projects := make([]model.ClientProject, 0)
	err := r.db.Select(ctx, "projects.client_dashboard", query, []any{clientID}, func(rows pgx.Rows) error {
		var p model.ClientProject
		if err := rows.Scan(&p.ID, &p.Title, &p.BudgetMinCents, &p.BudgetMaxCents, &p.ProposalCount, &p.AcceptedCount); err != nil {
			return err
		}
		projects = append(projects, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Loaded client dashboard", zap.Int64("client_id", clientID), zap.Int("count", len(projects)))
	return projects, nil
}
