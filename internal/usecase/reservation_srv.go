package usecase

import (
	"context"
	"fmt"
	"time"

	"studio-booking/internal/data/entity"
	"studio-booking/internal/data/repository"
	"studio-booking/internal/dto/request"
	"studio-booking/internal/dto/response"
	"studio-booking/internal/notifier"
	"studio-booking/internal/schedule"
	"studio-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReservationService interface {
	// Public endpoints
	GetAvailableSlots(ctx context.Context, date string, durationHours int) (*response.AvailabilityResponse, error)
	SubmitBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	// Admin endpoints
	CreateWalkIn(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	Confirm(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	Cancel(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	UpdatePayment(ctx context.Context, bookingID string, req *request.UpdatePaymentRequest) error
	Delete(ctx context.Context, bookingID string) error
}

type reservationService struct {
	repo   *repository.Repository
	notify notifier.Notifier
	config *utils.Config
	log    *zap.Logger

	// now supplies "today" for past-date validation; injected so tests
	// are deterministic.
	now func() time.Time
}

func NewReservationService(
	repo *repository.Repository,
	notify notifier.Notifier,
	config *utils.Config,
	log *zap.Logger,
) ReservationService {
	return &reservationService{
		repo:   repo,
		notify: notify,
		config: config,
		log:    log.With(zap.String("service", "reservation")),
		now:    time.Now,
	}
}

// busyIntervals collects everything that occupies time on a date: confirmed
// bookings plus partial blackouts. A full-day blackout short-circuits.
// excludeID skips one booking (the one being confirmed).
func (s *reservationService) busyIntervals(ctx context.Context, date time.Time, excludeID uuid.UUID) (busy []schedule.Interval, fullDayBlocked bool, err error) {
	confirmed, err := s.repo.Booking.FindConfirmedByDate(ctx, date)
	if err != nil {
		return nil, false, fmt.Errorf("load confirmed bookings: %w", err)
	}

	for _, b := range confirmed {
		if b.ID == excludeID {
			continue
		}
		start, err := schedule.ToMinutes(b.StartTime)
		if err != nil {
			return nil, false, fmt.Errorf("stored booking %s has bad start time: %w", b.ID.String(), err)
		}
		busy = append(busy, schedule.Interval{Start: start, Duration: b.DurationHours * 60})
	}

	blocked, err := s.repo.Blocked.FindByDate(ctx, date)
	if err != nil {
		return nil, false, fmt.Errorf("load blocked slots: %w", err)
	}

	for _, bs := range blocked {
		if bs.FullDay() {
			return nil, true, nil
		}
		start, err := schedule.ToMinutes(*bs.StartTime)
		if err != nil {
			return nil, false, fmt.Errorf("blocked slot %s has bad start time: %w", bs.ID.String(), err)
		}
		end, err := schedule.ToMinutes(*bs.EndTime)
		if err != nil {
			return nil, false, fmt.Errorf("blocked slot %s has bad end time: %w", bs.ID.String(), err)
		}
		if end > start {
			busy = append(busy, schedule.Interval{Start: start, Duration: end - start})
		}
	}

	return busy, false, nil
}

// GetAvailableSlots annotates the full candidate lattice for a date. The
// repository is re-read on every call; slot state is never cached.
func (s *reservationService) GetAvailableSlots(ctx context.Context, date string, durationHours int) (*response.AvailabilityResponse, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", entity.ErrValidation, date)
	}
	if durationHours < 1 {
		return nil, fmt.Errorf("%w: duration must be at least 1 hour", entity.ErrValidation)
	}

	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	opening, err := schedule.ToMinutes(settings.OpeningTime)
	if err != nil {
		return nil, fmt.Errorf("settings opening time: %w", err)
	}
	closing, err := schedule.ToMinutes(settings.ClosingTime)
	if err != nil {
		return nil, fmt.Errorf("settings closing time: %w", err)
	}

	busy, fullDayBlocked, err := s.busyIntervals(ctx, day, uuid.Nil)
	if err != nil {
		return nil, err
	}

	slots := schedule.GenerateSlots(opening, closing, s.config.Booking.SlotStepMin)
	annotated := schedule.AnnotateSlots(slots, durationHours*60, busy, closing)

	resp := &response.AvailabilityResponse{
		Date:          date,
		DurationHours: durationHours,
		Slots:         make([]response.SlotResponse, len(annotated)),
	}
	for i, slot := range annotated {
		resp.Slots[i] = response.SlotResponse{
			Time:      schedule.FormatMinutes(slot.Start),
			Label:     schedule.Format12Hour(slot.Start),
			Available: slot.Available && !fullDayBlocked,
		}
	}

	return resp, nil
}

// SubmitBooking is the public path: the booking lands as pending and the
// outbound notification is dispatched.
func (s *reservationService) SubmitBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	booking, settings, err := s.createBooking(ctx, req, entity.BookingStatusPending, entity.ReservationTypeOnline)
	if err != nil {
		return nil, err
	}

	handle := settings.MessengerID
	if handle == "" {
		handle = s.config.Notify.MessengerID
	}

	// Notification failure never fails the booking.
	if err := s.notify.Notify(handle, "New Booking Request", s.composeSummary(booking)); err != nil {
		s.log.Warn("Failed to send booking notification",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
	}

	return s.toResponse(booking), nil
}

// CreateWalkIn is the admin path: manual entry, committed directly as
// confirmed. The same availability gate applies.
func (s *reservationService) CreateWalkIn(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	booking, _, err := s.createBooking(ctx, req, entity.BookingStatusConfirmed, entity.ReservationTypeWalkIn)
	if err != nil {
		return nil, err
	}
	return s.toResponse(booking), nil
}

// createBooking validates the draft and re-checks availability against the
// current repository state immediately before the write, narrowing the
// window between slot display and submission.
func (s *reservationService) createBooking(
	ctx context.Context,
	req *request.CreateBookingRequest,
	status entity.BookingStatus,
	rtype entity.ReservationType,
) (*entity.Booking, *entity.SiteSettings, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	day, err := utils.ParseDate(req.BookingDate)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid booking date %q", entity.ErrValidation, req.BookingDate)
	}

	today := utils.DateOnly(s.now())
	if day.Before(today) {
		return nil, nil, fmt.Errorf("%w: booking date is in the past", entity.ErrValidation)
	}

	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load settings: %w", err)
	}

	if req.DurationHours < settings.MinimumHours {
		return nil, nil, fmt.Errorf("%w: minimum booking is %d hours", entity.ErrValidation, settings.MinimumHours)
	}

	start, err := schedule.ToMinutes(req.StartTime)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid start time %q", entity.ErrValidation, req.StartTime)
	}

	opening, err := schedule.ToMinutes(settings.OpeningTime)
	if err != nil {
		return nil, nil, fmt.Errorf("settings opening time: %w", err)
	}
	closing, err := schedule.ToMinutes(settings.ClosingTime)
	if err != nil {
		return nil, nil, fmt.Errorf("settings closing time: %w", err)
	}

	step := s.config.Booking.SlotStepMin
	if start < opening || start > closing || (start-opening)%step != 0 {
		return nil, nil, fmt.Errorf("%w: start time %s is outside operating hours or off the %d-minute grid",
			entity.ErrValidation, req.StartTime, step)
	}

	// Re-check against current state right before the write.
	busy, fullDayBlocked, err := s.busyIntervals(ctx, day, uuid.Nil)
	if err != nil {
		return nil, nil, err
	}
	if fullDayBlocked || !schedule.IsAvailable(start, req.DurationHours*60, busy, closing) {
		return nil, nil, fmt.Errorf("%w: %s on %s for %d hours", entity.ErrSlotUnavailable,
			req.StartTime, req.BookingDate, req.DurationHours)
	}

	now := s.now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		BookingDate:     day,
		StartTime:       schedule.FormatMinutes(start),
		DurationHours:   req.DurationHours,
		TotalPrice:      float64(req.DurationHours) * settings.HourlyRate,
		Status:          status,
		PaymentStatus:   entity.PaymentStatusUnpaid,
		PaymentMethod:   req.PaymentMethod,
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
		ReservationType: rtype,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("date", req.BookingDate),
			zap.String("start_time", req.StartTime),
		)
		return nil, nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("date", req.BookingDate),
		zap.String("start_time", booking.StartTime),
		zap.Int("duration_hours", booking.DurationHours),
		zap.String("status", string(booking.Status)),
		zap.Float64("total_price", booking.TotalPrice),
	)

	return booking, settings, nil
}

func (s *reservationService) ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	items := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = *s.toResponse(b)
	}

	return response.NewPaginatedResponse(items, req.Page, req.PerPage, total), nil
}

// Confirm moves a pending booking to confirmed, re-running the overlap
// check against bookings confirmed since it was created. On conflict the
// pending status is left untouched.
func (s *reservationService) Confirm(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status != entity.BookingStatusPending {
		return nil, fmt.Errorf("%w: booking is %s, only pending bookings can be confirmed",
			entity.ErrValidation, booking.Status)
	}

	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	closing, err := schedule.ToMinutes(settings.ClosingTime)
	if err != nil {
		return nil, fmt.Errorf("settings closing time: %w", err)
	}

	start, err := schedule.ToMinutes(booking.StartTime)
	if err != nil {
		return nil, fmt.Errorf("stored booking has bad start time: %w", err)
	}

	busy, fullDayBlocked, err := s.busyIntervals(ctx, booking.BookingDate, booking.ID)
	if err != nil {
		return nil, err
	}
	if fullDayBlocked || !schedule.IsAvailable(start, booking.DurationHours*60, busy, closing) {
		return nil, fmt.Errorf("%w: slot %s on %s was taken while pending",
			entity.ErrConflict, booking.StartTime, booking.BookingDate.Format("2006-01-02"))
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusConfirmed); err != nil {
		return nil, fmt.Errorf("confirm booking: %w", err)
	}

	s.log.Info("Booking confirmed", zap.String("booking_id", bookingID))

	booking.Status = entity.BookingStatusConfirmed
	return s.toResponse(booking), nil
}

func (s *reservationService) Cancel(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// Confirmed and cancelled are terminal; only deletion removes them.
	if booking.Status != entity.BookingStatusPending {
		return nil, fmt.Errorf("%w: booking is %s, only pending bookings can be cancelled",
			entity.ErrValidation, booking.Status)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.log.Info("Booking cancelled", zap.String("booking_id", bookingID))

	booking.Status = entity.BookingStatusCancelled
	return s.toResponse(booking), nil
}

func (s *reservationService) UpdatePayment(ctx context.Context, bookingID string, req *request.UpdatePaymentRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := s.repo.Booking.UpdatePaymentStatus(ctx, booking.ID, entity.PaymentStatus(req.PaymentStatus)); err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}

	s.log.Info("Payment status updated",
		zap.String("booking_id", bookingID),
		zap.String("payment_status", req.PaymentStatus),
	)
	return nil
}

// Delete removes the record entirely, freeing its interval.
func (s *reservationService) Delete(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("%w: invalid booking ID %q", entity.ErrValidation, bookingID)
	}

	if err := s.repo.Booking.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	return nil
}

// ==================== HELPERS ====================

func (s *reservationService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %q", entity.ErrValidation, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, entity.ErrNotFound)
	}

	return booking, nil
}

func (s *reservationService) toResponse(b *entity.Booking) *response.BookingResponse {
	label := b.StartTime
	if start, err := schedule.ToMinutes(b.StartTime); err == nil {
		label = schedule.Format12Hour(start)
	}
	resp := response.BookingToResponse(b, label)
	return &resp
}

// composeSummary builds the plain-text hand-off for the chat channel.
func (s *reservationService) composeSummary(b *entity.Booking) string {
	label := b.StartTime
	if start, err := schedule.ToMinutes(b.StartTime); err == nil {
		label = schedule.Format12Hour(start)
	}

	phone := "N/A"
	if b.CustomerPhone != nil {
		phone = *b.CustomerPhone
	}
	notes := "None"
	if b.Notes != nil && *b.Notes != "" {
		notes = *b.Notes
	}
	method := "N/A"
	if b.PaymentMethod != nil {
		method = *b.PaymentMethod
	}
	reference := "N/A"
	if b.ReferenceNumber != nil && *b.ReferenceNumber != "" {
		reference = *b.ReferenceNumber
	}

	return fmt.Sprintf(`New Booking Request:
Name: %s
Date: %s
Time: %s (%d hours)
Phone: %s
Email: %s
Notes: %s
Total: %.2f
Payment Method: %s
Reference No: %s`,
		b.CustomerName,
		b.BookingDate.Format("2006-01-02"),
		label,
		b.DurationHours,
		phone,
		b.CustomerEmail,
		notes,
		b.TotalPrice,
		method,
		reference,
	)
}
