package usecase

import (
	"context"
	"fmt"
	"time"

	"studio-booking/internal/data/entity"
	"studio-booking/internal/data/repository"
	"studio-booking/internal/dto/request"
	"studio-booking/internal/dto/response"
	"studio-booking/internal/schedule"
	"studio-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BlockedSlotService interface {
	Create(ctx context.Context, req *request.CreateBlockedSlotRequest) (*response.BlockedSlotResponse, error)
	List(ctx context.Context) ([]response.BlockedSlotResponse, error)
	Delete(ctx context.Context, id string) error
}

type blockedSlotService struct {
	repo repository.BlockedSlotRepository
	log  *zap.Logger
}

func NewBlockedSlotService(repo repository.BlockedSlotRepository, log *zap.Logger) BlockedSlotService {
	return &blockedSlotService{
		repo: repo,
		log:  log.With(zap.String("service", "blocked_slot")),
	}
}

func (s *blockedSlotService) Create(ctx context.Context, req *request.CreateBlockedSlotRequest) (*response.BlockedSlotResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	day, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", entity.ErrValidation, req.Date)
	}

	// Start and end come together or not at all; alone they are meaningless.
	if (req.StartTime == nil) != (req.EndTime == nil) {
		return nil, fmt.Errorf("%w: start and end time must both be set for a partial blackout", entity.ErrValidation)
	}

	if req.StartTime != nil {
		start, err := schedule.ToMinutes(*req.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid start time %q", entity.ErrValidation, *req.StartTime)
		}
		end, err := schedule.ToMinutes(*req.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid end time %q", entity.ErrValidation, *req.EndTime)
		}
		if end <= start {
			return nil, fmt.Errorf("%w: blackout end must be after start", entity.ErrValidation)
		}
	}

	slot := &entity.BlockedSlot{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Date:      day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	}

	if err := s.repo.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("create blocked slot: %w", err)
	}

	s.log.Info("Blocked slot created",
		zap.String("blocked_slot_id", slot.ID.String()),
		zap.String("date", req.Date),
		zap.Bool("full_day", slot.FullDay()),
	)

	resp := response.BlockedSlotToResponse(slot)
	return &resp, nil
}

func (s *blockedSlotService) List(ctx context.Context) ([]response.BlockedSlotResponse, error) {
	slots, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blocked slots: %w", err)
	}

	items := make([]response.BlockedSlotResponse, len(slots))
	for i, slot := range slots {
		items[i] = response.BlockedSlotToResponse(slot)
	}
	return items, nil
}

func (s *blockedSlotService) Delete(ctx context.Context, id string) error {
	slotID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: invalid blocked slot ID %q", entity.ErrValidation, id)
	}

	if err := s.repo.Delete(ctx, slotID); err != nil {
		return fmt.Errorf("delete blocked slot: %w", err)
	}

	s.log.Info("Blocked slot deleted", zap.String("blocked_slot_id", id))
	return nil
}
