package repository

import (
	"context"
	"sync"

	"roombook/internal/domain"
)

// MemoryRoomRepository and MemoryBookingRepository back the same interfaces
// as the gorm repositories without a database. Handy for tests and local
// runs with no store at all.
type MemoryRoomRepository struct {
	mu     sync.RWMutex
	nextID int64
	rooms  map[int64]domain.Room
}

func NewMemoryRoomRepository() *MemoryRoomRepository {
	return &MemoryRoomRepository{
		nextID: 1,
		rooms:  make(map[int64]domain.Room),
	}
}

func (r *MemoryRoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		out = append(out, room)
	}
	return out, nil
}

func (r *MemoryRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &room, nil
}

func (r *MemoryRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	room.ID = r.nextID
	r.nextID++
	r.rooms[room.ID] = *room
	return nil
}

func (r *MemoryRoomRepository) Exists(ctx context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.rooms[id]
	return ok, nil
}

type MemoryBookingRepository struct {
	mu            sync.RWMutex
	nextBookingID int64
	nextHistoryID int64
	bookings      map[int64]domain.Booking
	history       map[int64][]domain.StatusHistory
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{
		nextBookingID: 1,
		nextHistoryID: 1,
		bookings:      make(map[int64]domain.Booking),
		history:       make(map[int64][]domain.StatusHistory),
	}
}

func (r *MemoryBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (r *MemoryBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (r *MemoryBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b.ID = r.nextBookingID
	r.nextBookingID++
	r.bookings[b.ID] = *b
	return nil
}

func (r *MemoryBookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[b.ID]; !ok {
		return ErrNotFound
	}
	r.bookings[b.ID] = *b
	return nil
}

func (r *MemoryBookingRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[id]; !ok {
		return ErrNotFound
	}
	delete(r.bookings, id)
	delete(r.history, id)
	return nil
}

func (r *MemoryBookingRepository) ApplyStatusChange(ctx context.Context, b *domain.Booking, h *domain.StatusHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[b.ID]; !ok {
		return ErrNotFound
	}

	h.ID = r.nextHistoryID
	r.nextHistoryID++

	r.bookings[b.ID] = *b
	r.history[b.ID] = append(r.history[b.ID], *h)
	return nil
}

func (r *MemoryBookingRepository) HistoryForBooking(ctx context.Context, bookingID int64) ([]domain.StatusHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.history[bookingID]
	out := make([]domain.StatusHistory, len(rows))
	copy(out, rows)
	return out, nil
}
