package wire

import (
	"studio-booking/internal/adaptor"
	"studio-booking/internal/data/repository"
	"studio-booking/pkg/middleware"
	"studio-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSettings(
	r chi.Router,
	settingsHandler *adaptor.SettingsHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/settings - Studio hours, rate and contact info (public)
	r.Get("/api/settings", settingsHandler.GetSettings)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/settings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log)) // Must be authenticated

		// PUT /api/admin/settings - Update the settings singleton
		r.Put("/", settingsHandler.UpdateSettings)
	})
}
