package repository

import (
	"studio-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Booking  BookingRepository
	Settings SettingsRepository
	Blocked  BlockedSlotRepository
	Session  SessionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Booking:  NewBookingRepository(db, log),
		Settings: NewSettingsRepository(db, log),
		Blocked:  NewBlockedSlotRepository(db, log),
		Session:  NewSessionRepository(db, log),
	}
}
