package wire

import (
	"studio-booking/internal/adaptor"
	"studio-booking/internal/data/repository"
	"studio-booking/pkg/middleware"
	"studio-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/admin/login - Exchange the admin password for a session token
	r.Post("/api/admin/login", authHandler.Login)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/logout", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log)) // Must be authenticated

		// POST /api/admin/logout - Revoke the current session
		r.Post("/", authHandler.Logout)
	})
}
