package db

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"skilllink/pkg/config"
	"skilllink/pkg/metrics"
)

// Conn is the subset of *pgx.Conn the session needs.
type Conn interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// closer is implemented by *pgx.Conn. A connection that reports closed has
// been torn down by the driver and is treated as disconnected.
type closer interface {
	IsClosed() bool
}

// Dialer opens one connection for the given settings.
type Dialer func(ctx context.Context, cfg config.DBConfig) (Conn, error)

// DSN renders cfg as a postgres URL with credentials escaped.
func DSN(cfg config.DBConfig) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:   "/" + cfg.Name,
	}
	q := u.Query()
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	q.Set("sslmode", sslmode)
	if cfg.ConnectTimeout > 0 {
		secs := int(cfg.ConnectTimeout / time.Second)
		if secs < 1 {
			secs = 1
		}
		q.Set("connect_timeout", strconv.Itoa(secs))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// PgxDialer dials a single pgx connection with the slow query tracer attached.
func PgxDialer(logger *zap.Logger) Dialer {
	return func(ctx context.Context, cfg config.DBConfig) (Conn, error) {
		connCfg, err := pgx.ParseConfig(DSN(cfg))
		if err != nil {
			return nil, fmt.Errorf("failed to parse db config: %w", err)
		}
		connCfg.Tracer = NewSlowQueryTracer(logger, cfg.SlowQueryThreshold)

		conn, err := pgx.ConnectConfig(ctx, connCfg)
		if err != nil {
			return nil, err
		}
		return conn, nil
	}
}

// Session owns the one connection to the store. All methods are safe for
// concurrent use; calls are serialised on the connection.
type Session struct {
	mu     sync.Mutex
	cfg    config.DBConfig
	dial   Dialer
	conn   Conn
	logger *zap.Logger
}

type Option func(*Session)

func WithDialer(d Dialer) Option {
	return func(s *Session) { s.dial = d }
}

func NewSession(cfg config.DBConfig, logger *zap.Logger, opts ...Option) *Session {
	s := &Session{
		cfg:    cfg,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.dial == nil {
		s.dial = PgxDialer(logger)
	}
	return s
}

// Settings returns the settings used by the next Connect.
func (s *Session) Settings() config.DBConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

func (s *Session) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.liveLocked()
}

// liveLocked drops a connection the driver has already closed.
func (s *Session) liveLocked() bool {
	if s.conn == nil {
		return false
	}
	if c, ok := s.conn.(closer); ok && c.IsClosed() {
		s.logger.Warn("PostgreSQL connection was closed by the driver")
		s.conn = nil
		return false
	}
	return true
}

// Connect opens the session. On failure nothing is left open.
func (s *Session) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connectLocked(ctx, "connect")
}

func (s *Session) connectLocked(ctx context.Context, op string) error {
	if s.liveLocked() {
		return nil
	}

	s.logger.Info("Opening PostgreSQL session",
		zap.String("host", s.cfg.Host),
		zap.Int("port", s.cfg.Port),
		zap.String("db", s.cfg.Name),
		zap.String("user", s.cfg.User),
	)

	conn, err := s.dial(ctx, s.cfg)
	if err != nil {
		metrics.IncrementSessionConnect("failed")
		s.logger.Error("PostgreSQL connection failed", zap.Error(err))
		return &ConnectionError{Op: op, Err: err}
	}

	if err := conn.Ping(ctx); err != nil {
		metrics.IncrementSessionConnect("failed")
		s.logger.Error("PostgreSQL ping failed", zap.Error(err))
		if closeErr := conn.Close(ctx); closeErr != nil {
			s.logger.Warn("Failed to close half-open connection", zap.Error(closeErr))
		}
		return &ConnectionError{Op: op, Err: err}
	}

	s.conn = conn
	metrics.IncrementSessionConnect("ok")
	s.logger.Info("PostgreSQL session established")
	return nil
}

// Disconnect closes the session. Calling it while disconnected is a no-op.
func (s *Session) Disconnect(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disconnectLocked(ctx)
}

func (s *Session) disconnectLocked(ctx context.Context) {
	if s.conn == nil {
		return
	}
	if err := s.conn.Close(ctx); err != nil {
		s.logger.Warn("Error while closing PostgreSQL session", zap.Error(err))
	}
	s.conn = nil
	s.logger.Info("PostgreSQL session closed")
}

// Reconnect releases the current connection, then connects again. A non-nil
// cfg replaces the stored settings first.
func (s *Session) Reconnect(ctx context.Context, cfg *config.DBConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.disconnectLocked(ctx)
	if cfg != nil {
		s.cfg = *cfg
	}
	return s.connectLocked(ctx, "reconnect")
}

// Ping checks the live connection. Like every statement on the session it
// is not interrupted by cancellation of ctx.
func (s *Session) Ping(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.liveLocked() {
		return &ConnectionError{Op: "ping", Err: ErrNotConnected}
	}
	if err := s.conn.Ping(context.WithoutCancel(ctx)); err != nil {
		return &ConnectionError{Op: "ping", Err: err}
	}
	return nil
}

// Select runs a read-only statement and hands every row to scan. Any failure
// is logged and returned as *QueryError; the caller must discard partial
// results. pgx closes a connection whose context ends mid-statement, so
// cancellation of ctx is not passed to the shared connection.
func (s *Session) Select(ctx context.Context, op, query string, args []any, scan func(pgx.Rows) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.liveLocked() {
		s.logger.Warn("Query on closed session", zap.String("op", op))
		return &QueryError{Op: op, Err: ErrNotConnected}
	}

	start := time.Now()
	err := s.selectLocked(context.WithoutCancel(ctx), query, args, scan)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.RecordDBQueryDuration(op, outcome, time.Since(start))

	if err != nil {
		s.logger.Error("Query failed", zap.String("op", op), zap.Error(err))
		return &QueryError{Op: op, Err: err}
	}
	return nil
}

func (s *Session) selectLocked(ctx context.Context, query string, args []any, scan func(pgx.Rows) error) error {
	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// Query runs a read-only statement and returns every row as its column
// values in order. On failure it returns no rows and a *QueryError.
func (s *Session) Query(ctx context.Context, op, query string, args ...any) ([][]any, error) {
	result := make([][]any, 0)
	err := s.Select(ctx, op, query, args, func(rows pgx.Rows) error {
		values, err := rows.Values()
		if err != nil {
			return err
		}
		result = append(result, values)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Update runs a mutating statement in its own transaction. It commits on
// success and rolls back on any failure, so no uncommitted change outlives
// the call. It returns the number of affected rows. As with Select, ctx
// cancellation does not reach the connection.
func (s *Session) Update(ctx context.Context, op, query string, args ...any) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.liveLocked() {
		s.logger.Warn("Update on closed session", zap.String("op", op))
		return 0, &UpdateError{Op: op, Err: ErrNotConnected}
	}

	start := time.Now()
	affected, err := s.updateLocked(context.WithoutCancel(ctx), query, args)
	if err != nil {
		metrics.RecordDBQueryDuration(op, "error", time.Since(start))
		metrics.IncrementDBUpdate(op, "rolled_back")
		s.logger.Error("Update failed, transaction rolled back", zap.String("op", op), zap.Error(err))
		return 0, &UpdateError{Op: op, Err: err}
	}

	metrics.RecordDBQueryDuration(op, "ok", time.Since(start))
	metrics.IncrementDBUpdate(op, "committed")
	s.logger.Info("Update committed", zap.String("op", op), zap.Int64("rows_affected", affected))
	return affected, nil
}

func (s *Session) updateLocked(ctx context.Context, query string, args []any) (int64, error) {
	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			s.logger.Warn("Rollback failed", zap.Error(rbErr))
		}
		return 0, err
	}

	// pgx rolls the transaction back itself when Commit fails.
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return tag.RowsAffected(), nil
}
