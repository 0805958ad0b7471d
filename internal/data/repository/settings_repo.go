package repository

import (
	"context"
	"fmt"

	"studio-booking/internal/data/entity"
	"studio-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SettingsRepository interface {
	Get(ctx context.Context) (*entity.SiteSettings, error)
	Update(ctx context.Context, settings *entity.SiteSettings) error
}

type settingsRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSettingsRepository(db database.PgxIface, log *zap.Logger) SettingsRepository {
	return &settingsRepository{
		db:  db,
		log: log.With(zap.String("repository", "settings")),
	}
}

// Get reads the singleton settings row (id = 1).
func (r *settingsRepository) Get(ctx context.Context) (*entity.SiteSettings, error) {
	query := `
		SELECT id, site_name, opening_time, closing_time, hourly_rate,
		       minimum_hours, gcash_qr_image, messenger_id, updated_at
		FROM site_settings
		WHERE id = 1
	`

	var settings entity.SiteSettings
	err := readRetry(ctx, func(callCtx context.Context) error {
		err := r.db.QueryRow(callCtx, query).Scan(
			&settings.ID,
			&settings.SiteName,
			&settings.OpeningTime,
			&settings.ClosingTime,
			&settings.HourlyRate,
			&settings.MinimumHours,
			&settings.GcashQRImage,
			&settings.MessengerID,
			&settings.UpdatedAt,
		)
		if err == pgx.ErrNoRows {
			return fmt.Errorf("site settings row: %w", entity.ErrNotFound)
		}
		if err != nil {
			return storeErr("get site settings", err)
		}
		return nil
	})

	if err != nil {
		r.log.Error("Failed to get site settings", zap.Error(err))
		return nil, err
	}

	return &settings, nil
}

func (r *settingsRepository) Update(ctx context.Context, settings *entity.SiteSettings) error {
	query := `
		UPDATE site_settings
		SET site_name = $1, opening_time = $2, closing_time = $3, hourly_rate = $4,
		    minimum_hours = $5, gcash_qr_image = $6, messenger_id = $7, updated_at = NOW()
		WHERE id = 1
	`

	callCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	result, err := r.db.Exec(callCtx, query,
		settings.SiteName,
		settings.OpeningTime,
		settings.ClosingTime,
		settings.HourlyRate,
		settings.MinimumHours,
		settings.GcashQRImage,
		settings.MessengerID,
	)

	if err != nil {
		r.log.Error("Failed to update site settings", zap.Error(err))
		return storeErr("update site settings", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("site settings row: %w", entity.ErrNotFound)
	}

	r.log.Info("Site settings updated")
	return nil
}
