package booking

import (
	"context"

	"roombook/internal/domain"
)

// BookingRepository is the persistence surface the service needs. Both the
// gorm and the in-memory repositories satisfy it.
type BookingRepository interface {
	List(ctx context.Context) ([]domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Create(ctx context.Context, b *domain.Booking) error
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id int64) error

	// ApplyStatusChange commits the booking update and the audit record
	// atomically.
	ApplyStatusChange(ctx context.Context, b *domain.Booking, h *domain.StatusHistory) error
	HistoryForBooking(ctx context.Context, bookingID int64) ([]domain.StatusHistory, error)
}

// RoomRepository is the slice of the room store the booking service uses:
// existence checks on creation only.
type RoomRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
