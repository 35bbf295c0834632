package booking

import (
	"context"
	"errors"
	"time"

	"roombook/internal/domain"
	"roombook/internal/repository"
)

// systemActor is recorded as changedBy when the caller does not identify
// itself.
const systemActor = "System"

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
}

func NewService(bookings BookingRepository, rooms RoomRepository) *Service {
	return &Service{bookings: bookings, rooms: rooms}
}

func (s *Service) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *Service) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// CreateBooking inserts a new booking in Pending state. Time windows are
// stored as given: start/end ordering and overlap with other bookings for
// the room are not checked.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	ok, err := s.rooms.Exists(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRoomNotFound
	}

	b := &domain.Booking{
		RoomID:      req.RoomID,
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		BookedBy:    req.BookedBy,
		Status:      domain.BookingPending,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return b, nil
}

// UpdateBooking rewrites the mutable fields only; roomId, bookedBy and
// status stay as they are.
func (s *Service) UpdateBooking(ctx context.Context, id int64, req UpdateBookingRequest) error {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	b.Title = req.Title
	b.Description = req.Description
	b.StartTime = req.StartTime
	b.EndTime = req.EndTime
	b.UpdatedAt = &now

	return s.bookings.Update(ctx, b)
}

func (s *Service) DeleteBooking(ctx context.Context, id int64) error {
	err := s.bookings.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// ChangeStatus moves the booking to change.NewStatus and appends one audit
// record, committed together. Any status may follow any other, including a
// repeat of the current one; every call leaves exactly one history row.
func (s *Service) ChangeStatus(ctx context.Context, id int64, change domain.StatusChange) (*domain.Booking, error) {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := b.Status
	now := time.Now().UTC()

	b.Status = change.NewStatus
	b.UpdatedAt = &now
	if change.ApprovedBy != "" {
		b.ApprovedBy = change.ApprovedBy
	}
	if change.RejectionReason != "" {
		b.RejectionReason = change.RejectionReason
	}

	changedBy := change.ChangedBy
	if changedBy == "" {
		changedBy = systemActor
	}

	h := &domain.StatusHistory{
		BookingID:      b.ID,
		PreviousStatus: previous,
		NewStatus:      change.NewStatus,
		Notes:          change.Notes,
		ChangedBy:      changedBy,
		ChangedAt:      now,
	}

	if err := s.bookings.ApplyStatusChange(ctx, b, h); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) History(ctx context.Context, bookingID int64) ([]domain.StatusHistory, error) {
	if _, err := s.GetBooking(ctx, bookingID); err != nil {
		return nil, err
	}
	return s.bookings.HistoryForBooking(ctx, bookingID)
}
