package wire

import (
	"studio-booking/internal/adaptor"
	"studio-booking/internal/data/repository"
	"studio-booking/pkg/middleware"
	"studio-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBlocked(
	r chi.Router,
	blockedHandler *adaptor.BlockedSlotHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	// Blackout management is admin-only; public callers see the effect
	// through /api/availability.
	r.Route("/api/admin/blocked", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log)) // Must be authenticated

		r.Get("/", blockedHandler.ListBlockedSlots)      // GET /api/admin/blocked
		r.Post("/", blockedHandler.CreateBlockedSlot)    // POST /api/admin/blocked
		r.Delete("/{id}", blockedHandler.DeleteBlockedSlot) // DELETE /api/admin/blocked/{id}
	})
}
