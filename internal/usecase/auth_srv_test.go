package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"studio-booking/internal/data/entity"
	"studio-booking/internal/dto/request"
	"studio-booking/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
	revoked  map[string]bool
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		sessions: make(map[string]*entity.Session),
		revoked:  make(map[string]bool),
	}
}

func (f *fakeSessionRepo) Create(ctx context.Context, s *entity.Session) error {
	f.sessions[s.Token.String()] = s
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	if f.revoked[token] {
		return nil, nil
	}
	return f.sessions[token], nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	if _, ok := f.sessions[token]; !ok {
		return fmt.Errorf("session: %w", entity.ErrNotFound)
	}
	f.revoked[token] = true
	return nil
}

func newAuthFixture(t *testing.T, password string) (AuthService, *fakeSessionRepo) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing test password: %v", err)
	}

	sessions := newFakeSessionRepo()
	config := &utils.Config{
		Admin: utils.AdminConfig{
			PasswordHash:    string(hash),
			SessionTTLHours: 12,
		},
	}

	return NewAuthService(sessions, config, zap.NewNop()), sessions
}

func TestLogin_IssuesSession(t *testing.T) {
	svc, sessions := newAuthFixture(t, "correct horse")

	resp, err := svc.Login(context.Background(), &request.LoginRequest{Password: "correct horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if resp.Token == "" {
		t.Fatal("empty session token")
	}
	stored, _ := sessions.FindValidSession(context.Background(), resp.Token)
	if stored == nil {
		t.Error("issued token not persisted")
	}
	if !resp.ExpiresAt.After(stored.CreatedAt) {
		t.Error("session expires before it was created")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, sessions := newAuthFixture(t, "correct horse")

	_, err := svc.Login(context.Background(), &request.LoginRequest{Password: "battery staple"})
	if !errors.Is(err, entity.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	if len(sessions.sessions) != 0 {
		t.Error("failed login must not create a session")
	}
}

func TestLogin_HashNotConfigured(t *testing.T) {
	svc := NewAuthService(newFakeSessionRepo(), &utils.Config{}, zap.NewNop())

	_, err := svc.Login(context.Background(), &request.LoginRequest{Password: "anything"})
	if !errors.Is(err, entity.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestLogout_RevokesSession(t *testing.T) {
	svc, sessions := newAuthFixture(t, "correct horse")

	resp, err := svc.Login(context.Background(), &request.LoginRequest{Password: "correct horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := svc.Logout(context.Background(), resp.Token); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	valid, _ := sessions.FindValidSession(context.Background(), resp.Token)
	if valid != nil {
		t.Error("session still valid after logout")
	}
}
