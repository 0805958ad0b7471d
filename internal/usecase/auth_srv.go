package usecase

import (
	"context"
	"fmt"
	"time"

	"studio-booking/internal/data/entity"
	"studio-booking/internal/data/repository"
	"studio-booking/internal/dto/request"
	"studio-booking/internal/dto/response"
	"studio-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	sessions repository.SessionRepository
	config   *utils.Config
	log      *zap.Logger
}

func NewAuthService(sessions repository.SessionRepository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		sessions: sessions,
		config:   config,
		log:      log.With(zap.String("service", "auth")),
	}
}

// Login verifies the admin password against the bcrypt hash injected
// through configuration and issues a session token.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	hash := s.config.Admin.PasswordHash
	if hash == "" {
		s.log.Error("Admin password hash not configured")
		return nil, fmt.Errorf("admin login not configured: %w", entity.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		s.log.Warn("Admin login failed")
		return nil, fmt.Errorf("invalid credentials: %w", entity.ErrUnauthorized)
	}

	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		Token:     uuid.New(),
		ExpiresAt: now.Add(time.Duration(s.config.Admin.SessionTTLHours) * time.Hour),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("Admin logged in", zap.Time("expires_at", session.ExpiresAt))

	return &response.LoginResponse{
		Token:     session.Token.String(),
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Revoke(ctx, token); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}

	s.log.Info("Admin logged out")
	return nil
}
