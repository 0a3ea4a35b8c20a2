package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"skilllink/internal/model"
	"skilllink/pkg/config"
	"skilllink/pkg/db"
)

func newTestSession(t *testing.T) (*db.Session, pgxmock.PgxConnIface) {
	t.Helper()
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)

	session := db.NewSession(config.DBConfig{Host: "localhost", Port: 5432, Name: "skilllink"}, zap.NewNop(),
		db.WithDialer(func(context.Context, config.DBConfig) (db.Conn, error) {
			return mock, nil
		}))

	mock.ExpectPing()
	require.NoError(t, session.Connect(context.Background()))
	return session, mock
}

func int64Ptr(v int64) *int64 { return &v }

func TestUserRepository_ListUsersByRole(t *testing.T) {
	session, mock := newTestSession(t)
	repo := NewUserRepository(session, zap.NewNop())
	joined := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM users\\s+WHERE role = \\$1").
		WithArgs("freelancer").
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "username", "email", "role", "status", "joined_at"}).
			AddRow(int64(3), "ana", "ana@example.com", "freelancer", "active", joined))

	users, err := repo.ListUsersByRole(context.Background(), model.RoleFreelancer)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, model.User{ID: 3, Username: "ana", Email: "ana@example.com", Role: "freelancer", Status: "active", JoinedAt: joined}, users[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindActiveLogin_NoRow(t *testing.T) {
	session, mock := newTestSession(t)
	repo := NewUserRepository(session, zap.NewNop())

	mock.ExpectQuery("status = 'active'").
		WithArgs("mallory").
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "role", "status", "password_hash"}))

	rec, err := repo.FindActiveLogin(context.Background(), "mallory")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestUserRepository_SetUserStatus(t *testing.T) {
	session, mock := newTestSession(t)
	repo := NewUserRepository(session, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE users SET status").
		WithArgs("blocked", int64(9)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	affected, err := repo.SetUserStatus(context.Background(), 9, model.StatusBlocked)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFreelancerRepository_DetailsAndSkills(t *testing.T) {
	session, mock := newTestSession(t)
	repo := NewFreelancerRepository(session, zap.NewNop())

	mock.ExpectQuery("FROM freelancer_profile f").
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"username", "email", "headline", "bio", "rate_per_hour", "avg_rating"}).
			AddRow("ana", "ana@example.com", "Go developer", "Backend work", int64(4500), 4.8))
	mock.ExpectQuery("FROM freelancer_skill fs").
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"skill_name", "proficiency_level"}).
			AddRow("Go", int64(5)).
			AddRow("SQL", int64(3)))

	details, err := repo.GetFreelancerDetails(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, details)
	assert.Equal(t, int64(4500), details.RatePerHourCent)

	skills, err := repo.GetFreelancerSkills(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []model.FreelancerSkill{{SkillName: "Go", Proficiency: 5}, {SkillName: "SQL", Proficiency: 3}}, skills)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFreelancerRepository_DetailsMissing(t *testing.T) {
	session, mock := newTestSession(t)
	repo := NewFreelancerRepository(session, zap.NewNop())

	mock.ExpectQuery("FROM freelancer_profile f").
		WithArgs(int64(404)).
		WillReturnRows(pgxmock.NewRows([]string{"username", "email", "headline", "bio", "rate_per_hour", "avg_rating"}))

	details, err := repo.GetFreelancerDetails(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, details)
}

func TestProposalRepository_ProjectWithoutProposals(t *testing.T) {
	session, mock := newTestSession(t)
	repo := NewProposalRepository(session, zap.NewNop())

	mock.ExpectQuery("WHERE pr.project_id = \\$1").
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows([]string{"username", "bid_amount_cents", "status", "cover_letter"}))

	proposals, err := repo.ListByProject(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, proposals)
	assert.Empty(t, proposals)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProposalRepository_QueryFailureReturnsNoRows(t *testing.T) {
	session, mock := newTestSession(t)
	repo := NewProposalRepository(session, zap.NewNop())

	mock.ExpectQuery("FROM proposal pr").
		WithArgs(int64(7)).
		WillReturnError(errors.New("relation \"proposal\" does not exist"))

	proposals, err := repo.ListByFreelancer(context.Background(), 7)
	assert.Nil(t, proposals)
	var queryErr *db.QueryError
	require.ErrorAs(t, err, &queryErr)
	assert.Equal(t, "proposals.by_freelancer", queryErr.Op)
}

func TestProjectRepository_ClientDashboard(t *testing.T) {
	session, mock := newTestSession(t)
	repo := NewProjectRepository(session, zap.NewNop())

	mock.ExpectQuery("FILTER \\(WHERE pr.status = 'accepted'\\)(.|\\s)*ORDER BY p.project_id DESC").
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"project_id", "title", "budget_min_cents", "budget_max_cents", "proposal_count", "accepted_count"}).
			AddRow(int64(11), "Logo", int64(5000), int64(8000), int64(0), int64(0)).
			AddRow(int64(10), "Website", int64(10000), int64(50000), int64(3), int64(1)))

	projects, err := repo.ListClientProjects(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, int64(11), projects[0].ID)
	assert.Equal(t, model.DashboardOpen, projects[0].DashboardStatus())
	assert.Equal(t, model.DashboardInProgress, projects[1].DashboardStatus())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_FreelancerEarnings(t *testing.T) {
	session, mock := newTestSession(t)
	repo := NewPaymentRepository(session, zap.NewNop())

	mock.ExpectQuery("status = 'released'").
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"total_earned"}).AddRow(int64Ptr(7500)))

	earnings, err := repo.FreelancerEarnings(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, earnings.TotalCents)
	assert.Equal(t, int64(7500), *earnings.TotalCents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_NoReleasedPayments(t *testing.T) {
	session, mock := newTestSession(t)
	repo := NewPaymentRepository(session, zap.NewNop())

	mock.ExpectQuery("status = 'released'").
		WithArgs(int64(6)).
		WillReturnRows(pgxmock.NewRows([]string{"total_earned"}).AddRow(nil))

	earnings, err := repo.FreelancerEarnings(context.Background(), 6)
	require.NoError(t, err)
	assert.Nil(t, earnings.TotalCents)
}

func TestSkillRepository_SearchKeepsOrder(t *testing.T) {
	session, mock := newTestSession(t)
	repo := NewSkillRepository(session, zap.NewNop())

	mock.ExpectQuery("ORDER BY fs.proficiency_level DESC, f.avg_rating DESC").
		WithArgs("Go").
		WillReturnRows(pgxmock.NewRows([]string{"username", "skill_name", "proficiency_level", "avg_rating"}).
			AddRow("ana", "Go", int64(5), 4.2).
			AddRow("bo", "Go", int64(5), 3.9).
			AddRow("cy", "Go", int64(3), 5.0))

	matches, err := repo.SearchFreelancersBySkill(context.Background(), "Go")
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, []string{"ana", "bo", "cy"}, []string{matches[0].Username, matches[1].Username, matches[2].Username})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepository_Stats(t *testing.T) {
	session, mock := newTestSession(t)
	repo := NewAdminRepository(session, zap.NewNop())

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
		WillReturnRows(pgxmock.NewRows([]string{"total", "clients", "freelancers", "admins", "projects", "contracts", "released"}).
			AddRow(int64(10), int64(4), int64(5), int64(1), int64(7), int64(2), int64Ptr(12500)))

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalUsers)
	assert.Equal(t, int64(5), stats.Freelancers)
	assert.Equal(t, int64(12500), *stats.ReleasedPaymentsCents)
}

func TestDiagnosticsRepository_Report(t *testing.T) {
	session, mock := newTestSession(t)
	repo := NewDiagnosticsRepository(session, zap.NewNop())

	mock.ExpectQuery("SELECT version\\(\\)").
		WillReturnRows(pgxmock.NewRows([]string{"version"}).AddRow("PostgreSQL 16.2"))
	mock.ExpectQuery("information_schema.tables").
		WillReturnRows(pgxmock.NewRows([]string{"table_name"}).AddRow("project").AddRow("users"))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(12)))

	report, err := repo.Report(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "PostgreSQL 16.2", report.ServerVersion)
	assert.Equal(t, []string{"project", "users"}, report.Tables)
	assert.Equal(t, int64(12), report.UserCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_ListForReviewee(t *testing.T) {
	session, mock := newTestSession(t)
	repo := NewReviewRepository(session, zap.NewNop())

	mock.ExpectQuery("ORDER BY r.review_id DESC").
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"rating", "feedback", "reviewer"}).
			AddRow(int64(5), "Great work", "acme").
			AddRow(int64(4), "", "globex"))

	reviews, err := repo.ListForReviewee(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []model.Review{
		{Rating: 5, Feedback: "Great work", Reviewer: "acme"},
		{Rating: 4, Feedback: "", Reviewer: "globex"},
	}, reviews)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_ListProjectsToleratesMissingDeadline(t *testing.T) {
	session, mock := newTestSession(t)
	repo := NewProjectRepository(session, zap.NewNop())
	deadline := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("COALESCE\\(budget_min_cents, 0\\)").
		WillReturnRows(pgxmock.NewRows([]string{"project_id", "title", "budget_min_cents", "budget_max_cents", "deadline"}).
			AddRow(int64(1), "Website", int64(10000), int64(50000), &deadline).
			AddRow(int64(2), "Logo", int64(0), int64(0), nil))

	projects, err := repo.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	require.NotNil(t, projects[0].Deadline)
	assert.Equal(t, deadline, *projects[0].Deadline)
	assert.Nil(t, projects[1].Deadline)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFreelancerRepository_ListCoalescesNullableColumns(t *testing.T) {
	session, mock := newTestSession(t)
	repo := NewFreelancerRepository(session, zap.NewNop())

	mock.ExpectQuery("COALESCE\\(f.headline, ''\\)").
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "username", "headline", "rate_per_hour", "avg_rating"}).
			AddRow(int64(3), "ana", "", int64(0), 0.0))

	list, err := repo.ListFreelancers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Freelancer{{UserID: 3, Username: "ana"}}, list)
}

func TestContractRepository_MilestoneWithoutDueDate(t *testing.T) {
	session, mock := newTestSession(t)
	repo := NewContractRepository(session, zap.NewNop())

	mock.ExpectQuery("COALESCE\\(amount_cents, 0\\)").
		WithArgs(int64(8)).
		WillReturnRows(pgxmock.NewRows([]string{"milestone_id", "title", "amount_cents", "due_date", "status"}).
			AddRow(int64(1), "Design", int64(0), nil, "pending"))

	milestones, err := repo.ListMilestones(context.Background(), 8)
	require.NoError(t, err)
	require.Len(t, milestones, 1)
	assert.Nil(t, milestones[0].DueDate)
}
