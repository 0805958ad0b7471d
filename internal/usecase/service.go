package usecase

import (
	"studio-booking/internal/data/repository"
	"studio-booking/internal/notifier"
	"studio-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	Reservation ReservationService
	Settings    SettingsService
	Blocked     BlockedSlotService
}

func NewService(repo *repository.Repository, notify notifier.Notifier, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo.Session, config, log),
		Reservation: NewReservationService(repo, notify, config, log),
		Settings:    NewSettingsService(repo.Settings, log),
		Blocked:     NewBlockedSlotService(repo.Blocked, log),
	}
}
