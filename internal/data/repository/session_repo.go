package repository

import (
	"context"

	"studio-booking/internal/data/entity"
	"studio-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindValidSession(ctx context.Context, token string) (*entity.Session, error)
	Revoke(ctx context.Context, token string) error
}

type sessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSessionRepository(db database.PgxIface, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "session")),
	}
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	query := `
		INSERT INTO sessions (id, created_at, token, expires_at)
		VALUES ($1, $2, $3, $4)
	`

	callCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	_, err := r.db.Exec(callCtx, query,
		session.ID,
		session.CreatedAt,
		session.Token,
		session.ExpiresAt,
	)

	if err != nil {
		r.log.Error("Failed to create session", zap.Error(err))
		return storeErr("create session", err)
	}

	return nil
}

func (r *sessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	query := `
		SELECT id, created_at, token, expires_at, revoked_at
		FROM sessions
		WHERE token = $1
		  AND revoked_at IS NULL
		  AND expires_at > NOW()
	`

	var session *entity.Session
	err := readRetry(ctx, func(callCtx context.Context) error {
		var s entity.Session
		err := r.db.QueryRow(callCtx, query, token).Scan(
			&s.ID,
			&s.CreatedAt,
			&s.Token,
			&s.ExpiresAt,
			&s.RevokedAt,
		)
		if err == pgx.ErrNoRows {
			session = nil
			return nil
		}
		if err != nil {
			return storeErr("find valid session", err)
		}
		session = &s
		return nil
	})

	if err != nil {
		r.log.Error("Failed to find session", zap.Error(err))
		return nil, err
	}

	return session, nil
}

func (r *sessionRepository) Revoke(ctx context.Context, token string) error {
	query := `UPDATE sessions SET revoked_at = NOW() WHERE token = $1 AND revoked_at IS NULL`

	callCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	if _, err := r.db.Exec(callCtx, query, token); err != nil {
		r.log.Error("Failed to revoke session", zap.Error(err))
		return storeErr("revoke session", err)
	}

	return nil
}
