package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appconfig "skilllink/config"
	"skilllink/internal/handler"
	"skilllink/internal/repository"
	"skilllink/internal/service/admin"
	"skilllink/internal/service/auth"
	"skilllink/pkg/config"
	"skilllink/pkg/db"
	"skilllink/pkg/trace"
)

type stubReadiness bool

func (s stubReadiness) IsConnected() bool { return bool(s) }

func newTestRouter(t *testing.T, publisher Readiness) (*Router, pgxmock.PgxConnIface) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)

	log := zap.NewNop()
	session := db.NewSession(config.DBConfig{Host: "localhost", Name: "skilllink"}, log,
		db.WithDialer(func(context.Context, config.DBConfig) (db.Conn, error) { return mock, nil }))
	mock.ExpectPing()
	require.NoError(t, session.Connect(context.Background()))

	users := repository.NewUserRepository(session, log)
	proposals := repository.NewProposalRepository(session, log)
	h := Handlers{
		Freelancers: handler.NewFreelancerHandler(repository.NewFreelancerRepository(session, log), proposals,
			repository.NewReviewRepository(session, log), repository.NewPaymentRepository(session, log), log),
		Projects:  handler.NewProjectHandler(repository.NewProjectRepository(session, log), proposals, log),
		Contracts: handler.NewContractHandler(repository.NewContractRepository(session, log), log),
		Search:    handler.NewSearchHandler(repository.NewSkillRepository(session, log), log),
		Admin:     handler.NewAdminHandler(admin.NewService(users, repository.NewAdminRepository(session, log), nil, log), log),
		Auth:      handler.NewAuthHandler(auth.NewService(users, log), log),
		Session:   handler.NewSessionHandler(session, log),
		About:     handler.About(appconfig.Default().App),
	}
	return NewRouter(h, session, publisher, log), mock
}

func serve(r *Router, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.Engine.ServeHTTP(w, req)
	return w
}

func TestTraceIDIsEchoed(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(trace.HeaderName, "abc-123")
	w := serve(r, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc-123", w.Header().Get(trace.HeaderName))

	w = serve(r, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.NotEmpty(t, w.Header().Get(trace.HeaderName))
}

func TestReadyz(t *testing.T) {
	r, mock := newTestRouter(t, nil)

	mock.ExpectPing()
	w := serve(r, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	mock.ExpectPing().WillReturnError(assert.AnError)
	w = serve(r, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestReadyz_PublisherDown(t *testing.T) {
	r, mock := newTestRouter(t, stubReadiness(false))

	mock.ExpectPing()
	w := serve(r, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "mq_not_ready")
}

func TestMetricsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	serve(r, httptest.NewRequest(http.MethodGet, "/about", nil))
	w := serve(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_request_duration_seconds")
}
