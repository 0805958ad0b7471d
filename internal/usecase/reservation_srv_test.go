package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"studio-booking/internal/data/entity"
	"studio-booking/internal/data/repository"
	"studio-booking/internal/dto/request"
	"studio-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ==================== FAKES ====================

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *entity.Booking) error {
	copied := *b
	f.bookings[b.ID] = &copied
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	all := make([]*entity.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		copied := *b
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].BookingDate.Equal(all[j].BookingDate) {
			return all[i].BookingDate.After(all[j].BookingDate)
		}
		return all[i].StartTime < all[j].StartTime
	})
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeBookingRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) FindConfirmedByDate(ctx context.Context, date time.Time) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.Status == entity.BookingStatusConfirmed && b.BookingDate.Equal(date) {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s: %w", id.String(), entity.ErrNotFound)
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s: %w", id.String(), entity.ErrNotFound)
	}
	b.PaymentStatus = status
	return nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.bookings[id]; !ok {
		return fmt.Errorf("booking %s: %w", id.String(), entity.ErrNotFound)
	}
	delete(f.bookings, id)
	return nil
}

type fakeSettingsRepo struct {
	settings *entity.SiteSettings
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*entity.SiteSettings, error) {
	copied := *f.settings
	return &copied, nil
}

func (f *fakeSettingsRepo) Update(ctx context.Context, s *entity.SiteSettings) error {
	copied := *s
	f.settings = &copied
	return nil
}

type fakeBlockedRepo struct {
	slots []*entity.BlockedSlot
}

func (f *fakeBlockedRepo) Create(ctx context.Context, slot *entity.BlockedSlot) error {
	copied := *slot
	f.slots = append(f.slots, &copied)
	return nil
}

func (f *fakeBlockedRepo) FindAll(ctx context.Context) ([]*entity.BlockedSlot, error) {
	return f.slots, nil
}

func (f *fakeBlockedRepo) FindByDate(ctx context.Context, date time.Time) ([]*entity.BlockedSlot, error) {
	var out []*entity.BlockedSlot
	for _, s := range f.slots {
		if s.Date.Equal(date) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeBlockedRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, s := range f.slots {
		if s.ID == id {
			f.slots = append(f.slots[:i], f.slots[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("blocked slot %s: %w", id.String(), entity.ErrNotFound)
}

type fakeNotifier struct {
	handles  []string
	messages []string
	err      error
}

func (f *fakeNotifier) Notify(handle, subject, message string) error {
	f.handles = append(f.handles, handle)
	f.messages = append(f.messages, message)
	return f.err
}

// ==================== FIXTURE ====================

// Clock frozen well before the test dates so past-date checks behave.
var testNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*reservationService, *fakeBookingRepo, *fakeBlockedRepo, *fakeNotifier) {
	t.Helper()

	bookings := newFakeBookingRepo()
	blocked := &fakeBlockedRepo{}
	notify := &fakeNotifier{}

	repo := &repository.Repository{
		Booking:  bookings,
		Settings: &fakeSettingsRepo{settings: &entity.SiteSettings{
			ID:           1,
			SiteName:     "Test Studio",
			OpeningTime:  "09:00",
			ClosingTime:  "21:00",
			HourlyRate:   1000,
			MinimumHours: 2,
			MessengerID:  "teststudio",
		}},
		Blocked: blocked,
	}

	config := &utils.Config{
		Booking: utils.BookingConfig{
			OpeningTime:  "09:00",
			ClosingTime:  "21:00",
			HourlyRate:   1000,
			MinimumHours: 2,
			SlotStepMin:  30,
		},
	}

	svc := NewReservationService(repo, notify, config, zap.NewNop()).(*reservationService)
	svc.now = func() time.Time { return testNow }

	return svc, bookings, blocked, notify
}

func validRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		CustomerName:  "Juan Dela Cruz",
		CustomerEmail: "juan@example.com",
		BookingDate:   "2024-06-01",
		StartTime:     "14:00",
		DurationHours: 3,
	}
}

func seedConfirmed(t *testing.T, svc *reservationService, req *request.CreateBookingRequest) string {
	t.Helper()
	resp, err := svc.CreateWalkIn(context.Background(), req)
	if err != nil {
		t.Fatalf("seeding confirmed booking: %v", err)
	}
	return resp.ID
}

// ==================== TESTS ====================

func TestSubmitBooking_LandsPending(t *testing.T) {
	svc, bookings, _, notify := newTestService(t)

	resp, err := svc.SubmitBooking(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("SubmitBooking: %v", err)
	}

	if resp.Status != entity.BookingStatusPending {
		t.Errorf("status = %s, want pending", resp.Status)
	}
	if resp.ReservationType != entity.ReservationTypeOnline {
		t.Errorf("reservation type = %s, want online", resp.ReservationType)
	}
	if resp.TotalPrice != 3000 {
		t.Errorf("total price = %.2f, want 3000.00", resp.TotalPrice)
	}
	if resp.PaymentStatus != entity.PaymentStatusUnpaid {
		t.Errorf("payment status = %s, want unpaid", resp.PaymentStatus)
	}
	if len(bookings.bookings) != 1 {
		t.Errorf("stored bookings = %d, want 1", len(bookings.bookings))
	}
	if len(notify.handles) != 1 || notify.handles[0] != "teststudio" {
		t.Errorf("notifier handles = %v, want one call to teststudio", notify.handles)
	}
}

func TestSubmitBooking_SurvivesNotifierFailure(t *testing.T) {
	svc, bookings, _, notify := newTestService(t)
	notify.err = errors.New("messenger unreachable")

	resp, err := svc.SubmitBooking(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("notifier failure must not fail the booking: %v", err)
	}

	if resp.Status != entity.BookingStatusPending {
		t.Errorf("status = %s, want pending", resp.Status)
	}
	if len(bookings.bookings) != 1 {
		t.Errorf("stored bookings = %d, want 1", len(bookings.bookings))
	}
	if len(notify.handles) != 1 {
		t.Errorf("notifier calls = %d, want 1 (the attempt still happens)", len(notify.handles))
	}
}

func TestSubmitBooking_RejectsOverlap(t *testing.T) {
	svc, bookings, _, _ := newTestService(t)
	seedConfirmed(t, svc, validRequest()) // 14:00-17:00 confirmed

	overlapping := validRequest()
	overlapping.StartTime = "13:00"
	overlapping.DurationHours = 2 // 13:00-15:00

	_, err := svc.SubmitBooking(context.Background(), overlapping)
	if !errors.Is(err, entity.ErrSlotUnavailable) {
		t.Fatalf("err = %v, want ErrSlotUnavailable", err)
	}
	if len(bookings.bookings) != 1 {
		t.Errorf("stored bookings = %d, want 1 (rejected draft must not persist)", len(bookings.bookings))
	}
}

func TestSubmitBooking_AdjacentIsAllowed(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	seedConfirmed(t, svc, validRequest()) // 14:00-17:00 confirmed

	adjacent := validRequest()
	adjacent.StartTime = "17:00"
	adjacent.DurationHours = 2 // starts exactly at the other's end

	if _, err := svc.SubmitBooking(context.Background(), adjacent); err != nil {
		t.Fatalf("back-to-back booking rejected: %v", err)
	}
}

func TestSubmitBooking_ValidationFailures(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	tests := []struct {
		name   string
		mutate func(*request.CreateBookingRequest)
		want   error
	}{
		{"past date", func(r *request.CreateBookingRequest) {
			r.BookingDate = "2024-04-30"
		}, entity.ErrValidation},
		{"below minimum hours", func(r *request.CreateBookingRequest) {
			r.DurationHours = 1
		}, entity.ErrValidation},
		{"off the slot grid", func(r *request.CreateBookingRequest) {
			r.StartTime = "14:15"
		}, entity.ErrValidation},
		{"before opening", func(r *request.CreateBookingRequest) {
			r.StartTime = "08:00"
		}, entity.ErrValidation},
		{"runs past closing", func(r *request.CreateBookingRequest) {
			r.StartTime = "20:00"
			r.DurationHours = 2
		}, entity.ErrSlotUnavailable},
		{"bad date format", func(r *request.CreateBookingRequest) {
			r.BookingDate = "06/01/2024"
		}, entity.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := svc.SubmitBooking(context.Background(), req)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGetAvailableSlots_AnnotatesAroundConfirmed(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	seedConfirmed(t, svc, validRequest()) // 2024-06-01 14:00-17:00

	resp, err := svc.GetAvailableSlots(context.Background(), "2024-06-01", 2)
	if err != nil {
		t.Fatalf("GetAvailableSlots: %v", err)
	}

	// 09:00 through 21:00 inclusive on a 30-minute grid.
	if len(resp.Slots) != 25 {
		t.Fatalf("slot count = %d, want 25", len(resp.Slots))
	}

	byTime := make(map[string]bool, len(resp.Slots))
	for _, s := range resp.Slots {
		byTime[s.Time] = s.Available
	}

	if byTime["13:00"] {
		t.Error("13:00 should be unavailable (13:00-15:00 overlaps 14:00-17:00)")
	}
	if !byTime["17:00"] {
		t.Error("17:00 should be available (starts at the booking's end)")
	}
	if byTime["20:00"] {
		t.Error("20:00 should be unavailable (20:00-22:00 exceeds closing)")
	}
	if !byTime["09:00"] {
		t.Error("09:00 should be available")
	}
}

func TestGetAvailableSlots_PendingDoesNotBlock(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	if _, err := svc.SubmitBooking(context.Background(), validRequest()); err != nil {
		t.Fatalf("SubmitBooking: %v", err)
	}

	resp, err := svc.GetAvailableSlots(context.Background(), "2024-06-01", 2)
	if err != nil {
		t.Fatalf("GetAvailableSlots: %v", err)
	}

	for _, s := range resp.Slots {
		if s.Time == "14:00" && !s.Available {
			t.Error("pending booking must not occupy its slot")
		}
	}
}

func TestGetAvailableSlots_FullDayBlackout(t *testing.T) {
	svc, _, blocked, _ := newTestService(t)
	blocked.slots = append(blocked.slots, &entity.BlockedSlot{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: testNow},
		Date:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	resp, err := svc.GetAvailableSlots(context.Background(), "2024-06-01", 2)
	if err != nil {
		t.Fatalf("GetAvailableSlots: %v", err)
	}

	for _, s := range resp.Slots {
		if s.Available {
			t.Fatalf("slot %s available on a fully blocked day", s.Time)
		}
	}
}

func TestGetAvailableSlots_PartialBlackout(t *testing.T) {
	svc, _, blocked, _ := newTestService(t)
	start, end := "10:00", "12:00"
	blocked.slots = append(blocked.slots, &entity.BlockedSlot{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: testNow},
		Date:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime:  &start,
		EndTime:    &end,
	})

	resp, err := svc.GetAvailableSlots(context.Background(), "2024-06-01", 2)
	if err != nil {
		t.Fatalf("GetAvailableSlots: %v", err)
	}

	byTime := make(map[string]bool, len(resp.Slots))
	for _, s := range resp.Slots {
		byTime[s.Time] = s.Available
	}

	if byTime["09:00"] { // 09:00-11:00 overlaps the blackout
		t.Error("09:00 should be unavailable")
	}
	if !byTime["12:00"] { // starts exactly at blackout end
		t.Error("12:00 should be available")
	}
}

func TestGetAvailableSlots_ReadIsIdempotent(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	seedConfirmed(t, svc, validRequest())

	first, err := svc.GetAvailableSlots(context.Background(), "2024-06-01", 2)
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	second, err := svc.GetAvailableSlots(context.Background(), "2024-06-01", 2)
	if err != nil {
		t.Fatalf("second read: %v", err)
	}

	for i := range first.Slots {
		if first.Slots[i] != second.Slots[i] {
			t.Fatalf("slot %s changed between reads with no writes in between", first.Slots[i].Time)
		}
	}
}

func TestConfirm_MovesPendingToConfirmed(t *testing.T) {
	svc, bookings, _, _ := newTestService(t)
	pending, err := svc.SubmitBooking(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("SubmitBooking: %v", err)
	}

	resp, err := svc.Confirm(context.Background(), pending.ID)
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if resp.Status != entity.BookingStatusConfirmed {
		t.Errorf("status = %s, want confirmed", resp.Status)
	}

	stored := bookings.bookings[uuid.MustParse(pending.ID)]
	if stored.Status != entity.BookingStatusConfirmed {
		t.Errorf("stored status = %s, want confirmed", stored.Status)
	}
}

func TestConfirm_ConflictLeavesPendingUntouched(t *testing.T) {
	svc, bookings, _, _ := newTestService(t)

	pending, err := svc.SubmitBooking(context.Background(), validRequest()) // 14:00-17:00 pending
	if err != nil {
		t.Fatalf("SubmitBooking: %v", err)
	}

	// Another booking confirmed in the meantime takes 15:00-17:00.
	rival := validRequest()
	rival.StartTime = "15:00"
	rival.DurationHours = 2
	seedConfirmed(t, svc, rival)

	_, err = svc.Confirm(context.Background(), pending.ID)
	if !errors.Is(err, entity.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}

	stored := bookings.bookings[uuid.MustParse(pending.ID)]
	if stored.Status != entity.BookingStatusPending {
		t.Errorf("stored status = %s, want pending after failed confirm", stored.Status)
	}
}

func TestConfirm_RejectsNonPending(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	id := seedConfirmed(t, svc, validRequest())

	if _, err := svc.Confirm(context.Background(), id); !errors.Is(err, entity.ErrValidation) {
		t.Errorf("confirming a confirmed booking: err = %v, want ErrValidation", err)
	}
}

func TestConfirm_UnknownID(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	if _, err := svc.Confirm(context.Background(), uuid.NewString()); !errors.Is(err, entity.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if _, err := svc.Confirm(context.Background(), "not-a-uuid"); !errors.Is(err, entity.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestCancel_OnlyPending(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	pending, err := svc.SubmitBooking(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("SubmitBooking: %v", err)
	}

	resp, err := svc.Cancel(context.Background(), pending.ID)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if resp.Status != entity.BookingStatusCancelled {
		t.Errorf("status = %s, want cancelled", resp.Status)
	}

	// Cancelled is terminal.
	if _, err := svc.Cancel(context.Background(), pending.ID); !errors.Is(err, entity.ErrValidation) {
		t.Errorf("second cancel: err = %v, want ErrValidation", err)
	}
}

func TestDelete_FreesTheInterval(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	id := seedConfirmed(t, svc, validRequest()) // 14:00-17:00 confirmed

	taken := validRequest()
	if _, err := svc.SubmitBooking(context.Background(), taken); !errors.Is(err, entity.ErrSlotUnavailable) {
		t.Fatalf("err = %v, want ErrSlotUnavailable while interval is held", err)
	}

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := svc.SubmitBooking(context.Background(), validRequest()); err != nil {
		t.Errorf("slot still blocked after delete: %v", err)
	}

	// Second delete of the same ID reports not found.
	if err := svc.Delete(context.Background(), id); !errors.Is(err, entity.ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestCreateWalkIn_CommitsConfirmed(t *testing.T) {
	svc, _, _, notify := newTestService(t)

	resp, err := svc.CreateWalkIn(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("CreateWalkIn: %v", err)
	}

	if resp.Status != entity.BookingStatusConfirmed {
		t.Errorf("status = %s, want confirmed", resp.Status)
	}
	if resp.ReservationType != entity.ReservationTypeWalkIn {
		t.Errorf("reservation type = %s, want walk-in", resp.ReservationType)
	}
	if len(notify.handles) != 0 {
		t.Errorf("walk-in entry sent %d notifications, want 0", len(notify.handles))
	}
}

func TestUpdatePayment(t *testing.T) {
	svc, bookings, _, _ := newTestService(t)
	id := seedConfirmed(t, svc, validRequest())

	err := svc.UpdatePayment(context.Background(), id, &request.UpdatePaymentRequest{PaymentStatus: "paid"})
	if err != nil {
		t.Fatalf("UpdatePayment: %v", err)
	}

	stored := bookings.bookings[uuid.MustParse(id)]
	if stored.PaymentStatus != entity.PaymentStatusPaid {
		t.Errorf("payment status = %s, want paid", stored.PaymentStatus)
	}

	err = svc.UpdatePayment(context.Background(), id, &request.UpdatePaymentRequest{PaymentStatus: "refunded"})
	if !errors.Is(err, entity.ErrValidation) {
		t.Errorf("bad payment status: err = %v, want ErrValidation", err)
	}
}

func TestListBookings_Pagination(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	starts := []string{"09:00", "11:00", "13:00", "15:00", "17:00"}
	for _, s := range starts {
		req := validRequest()
		req.StartTime = s
		req.DurationHours = 2
		seedConfirmed(t, svc, req)
	}

	page, err := svc.ListBookings(context.Background(), &request.PaginatedRequest{Page: 1, PerPage: 3})
	if err != nil {
		t.Fatalf("ListBookings: %v", err)
	}

	if len(page.Data) != 3 {
		t.Errorf("page size = %d, want 3", len(page.Data))
	}
	if page.Pagination.Total != 5 {
		t.Errorf("total = %d, want 5", page.Pagination.Total)
	}
	if page.Pagination.TotalPages != 2 {
		t.Errorf("total pages = %d, want 2", page.Pagination.TotalPages)
	}
	// Same date, so start times come back ascending.
	for i := 1; i < len(page.Data); i++ {
		if page.Data[i-1].StartTime > page.Data[i].StartTime {
			t.Errorf("bookings out of order: %s before %s", page.Data[i-1].StartTime, page.Data[i].StartTime)
		}
	}
}
