package repository

import (
	"context"
	"fmt"
	"time"

	"studio-booking/internal/data/entity"
	"studio-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BlockedSlotRepository interface {
	Create(ctx context.Context, slot *entity.BlockedSlot) error
	FindAll(ctx context.Context) ([]*entity.BlockedSlot, error)
	FindByDate(ctx context.Context, date time.Time) ([]*entity.BlockedSlot, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type blockedSlotRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBlockedSlotRepository(db database.PgxIface, log *zap.Logger) BlockedSlotRepository {
	return &blockedSlotRepository{
		db:  db,
		log: log.With(zap.String("repository", "blocked_slot")),
	}
}

func (r *blockedSlotRepository) Create(ctx context.Context, slot *entity.BlockedSlot) error {
	query := `
		INSERT INTO blocked_slots (id, created_at, date, start_time, end_time, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	callCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	_, err := r.db.Exec(callCtx, query,
		slot.ID,
		slot.CreatedAt,
		slot.Date,
		slot.StartTime,
		slot.EndTime,
		slot.Reason,
	)

	if err != nil {
		r.log.Error("Failed to create blocked slot",
			zap.Error(err),
			zap.String("date", slot.Date.Format("2006-01-02")),
		)
		return storeErr("create blocked slot", err)
	}

	return nil
}

func (r *blockedSlotRepository) FindAll(ctx context.Context) ([]*entity.BlockedSlot, error) {
	query := `
		SELECT id, created_at, date, start_time, end_time, reason
		FROM blocked_slots
		ORDER BY date ASC
	`

	var slots []*entity.BlockedSlot
	err := readRetry(ctx, func(callCtx context.Context) error {
		rows, err := r.db.Query(callCtx, query)
		if err != nil {
			return storeErr("find all blocked slots", err)
		}
		defer rows.Close()

		slots = slots[:0]
		for rows.Next() {
			var s entity.BlockedSlot
			if err := rows.Scan(&s.ID, &s.CreatedAt, &s.Date, &s.StartTime, &s.EndTime, &s.Reason); err != nil {
				return fmt.Errorf("scan blocked slot row: %w", err)
			}
			slots = append(slots, &s)
		}
		return rows.Err()
	})

	if err != nil {
		r.log.Error("Failed to find blocked slots", zap.Error(err))
		return nil, err
	}

	return slots, nil
}

func (r *blockedSlotRepository) FindByDate(ctx context.Context, date time.Time) ([]*entity.BlockedSlot, error) {
	query := `
		SELECT id, created_at, date, start_time, end_time, reason
		FROM blocked_slots
		WHERE date = $1
	`

	var slots []*entity.BlockedSlot
	err := readRetry(ctx, func(callCtx context.Context) error {
		rows, err := r.db.Query(callCtx, query, date)
		if err != nil {
			return storeErr("find blocked slots by date", err)
		}
		defer rows.Close()

		slots = slots[:0]
		for rows.Next() {
			var s entity.BlockedSlot
			if err := rows.Scan(&s.ID, &s.CreatedAt, &s.Date, &s.StartTime, &s.EndTime, &s.Reason); err != nil {
				return fmt.Errorf("scan blocked slot row: %w", err)
			}
			slots = append(slots, &s)
		}
		return rows.Err()
	})

	if err != nil {
		r.log.Error("Failed to find blocked slots by date",
			zap.Error(err),
			zap.String("date", date.Format("2006-01-02")),
		)
		return nil, err
	}

	return slots, nil
}

func (r *blockedSlotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM blocked_slots WHERE id = $1`

	callCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	result, err := r.db.Exec(callCtx, query, id)
	if err != nil {
		r.log.Error("Failed to delete blocked slot",
			zap.Error(err),
			zap.String("blocked_slot_id", id.String()),
		)
		return storeErr("delete blocked slot", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("blocked slot %s: %w", id.String(), entity.ErrNotFound)
	}

	return nil
}
