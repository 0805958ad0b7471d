package usecase

import (
	"context"
	"fmt"

	"studio-booking/internal/data/entity"
	"studio-booking/internal/data/repository"
	"studio-booking/internal/dto/request"
	"studio-booking/internal/dto/response"
	"studio-booking/internal/schedule"
	"studio-booking/pkg/utils"

	"go.uber.org/zap"
)

type SettingsService interface {
	Get(ctx context.Context) (*response.SettingsResponse, error)
	Update(ctx context.Context, req *request.UpdateSettingsRequest) (*response.SettingsResponse, error)
}

type settingsService struct {
	repo repository.SettingsRepository
	log  *zap.Logger
}

func NewSettingsService(repo repository.SettingsRepository, log *zap.Logger) SettingsService {
	return &settingsService{
		repo: repo,
		log:  log.With(zap.String("service", "settings")),
	}
}

func (s *settingsService) Get(ctx context.Context) (*response.SettingsResponse, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	resp := response.SettingsToResponse(settings)
	return &resp, nil
}

func (s *settingsService) Update(ctx context.Context, req *request.UpdateSettingsRequest) (*response.SettingsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update settings validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	// Operating hours must parse and leave a non-empty window.
	opening, err := schedule.ToMinutes(req.OpeningTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid opening time %q", entity.ErrValidation, req.OpeningTime)
	}
	closing, err := schedule.ToMinutes(req.ClosingTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid closing time %q", entity.ErrValidation, req.ClosingTime)
	}
	if closing <= opening {
		return nil, fmt.Errorf("%w: closing time must be after opening time", entity.ErrValidation)
	}

	settings := &entity.SiteSettings{
		ID:           1,
		SiteName:     req.SiteName,
		OpeningTime:  schedule.FormatMinutes(opening),
		ClosingTime:  schedule.FormatMinutes(closing),
		HourlyRate:   req.HourlyRate,
		MinimumHours: req.MinimumHours,
		GcashQRImage: req.GcashQRImage,
		MessengerID:  req.MessengerID,
	}

	if err := s.repo.Update(ctx, settings); err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}

	s.log.Info("Site settings updated",
		zap.String("opening_time", settings.OpeningTime),
		zap.String("closing_time", settings.ClosingTime),
		zap.Float64("hourly_rate", settings.HourlyRate),
		zap.Int("minimum_hours", settings.MinimumHours),
	)

	resp := response.SettingsToResponse(settings)
	return &resp, nil
}
