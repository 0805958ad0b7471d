package wire

import (
	"studio-booking/internal/adaptor"
	"studio-booking/internal/data/repository"
	"studio-booking/pkg/middleware"
	"studio-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/availability - Slot grid for a date (public, the widget polls this)
	r.Get("/api/availability", reservationHandler.GetAvailability)

	// POST /api/bookings - Submit a booking request (public, lands as pending)
	r.Post("/api/bookings", reservationHandler.SubmitBooking)

	// ==================== ADMIN ROUTES ====================
	// Group admin routes with middleware chain
	r.Route("/api/admin/bookings", func(r chi.Router) {
		// Apply middleware to all routes in this group
		r.Use(middleware.AuthSession(repo.Session, log)) // Must be authenticated

		// Admin booking management endpoints
		r.Get("/", reservationHandler.ListBookings)                // GET /api/admin/bookings
		r.Post("/", reservationHandler.CreateWalkIn)               // POST /api/admin/bookings
		r.Put("/{id}/confirm", reservationHandler.ConfirmBooking)  // PUT /api/admin/bookings/{id}/confirm
		r.Put("/{id}/cancel", reservationHandler.CancelBooking)    // PUT /api/admin/bookings/{id}/cancel
		r.Put("/{id}/payment", reservationHandler.UpdatePayment)   // PUT /api/admin/bookings/{id}/payment
		r.Delete("/{id}", reservationHandler.DeleteBooking)        // DELETE /api/admin/bookings/{id}
	})
}
