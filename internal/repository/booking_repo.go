package repository

import (
	"context"
	"errors"
	"time"

	"roombook/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID              int64      `gorm:"column:id;primaryKey"`
	RoomID          int64      `gorm:"column:room_id;not null"`
	Title           string     `gorm:"column:title;size:255;not null"`
	Description     *string    `gorm:"column:description"`
	StartTime       time.Time  `gorm:"column:start_time"`
	EndTime         time.Time  `gorm:"column:end_time"`
	BookedBy        string     `gorm:"column:booked_by;size:255;not null"`
	Status          int        `gorm:"column:status"`
	ApprovedBy      *string    `gorm:"column:approved_by"`
	RejectionReason *string    `gorm:"column:rejection_reason"`
	// Timestamps are owned by the service layer; updatedAt must stay NULL
	// until the first mutation.
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime:false"`
	UpdatedAt *time.Time `gorm:"column:updated_at;autoUpdateTime:false"`

	History []statusHistoryModel `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
}

func (bookingModel) TableName() string { return "bookings" }

type statusHistoryModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	BookingID      int64     `gorm:"column:booking_id;not null;index"`
	PreviousStatus int       `gorm:"column:previous_status"`
	NewStatus      int       `gorm:"column:new_status"`
	Notes          *string   `gorm:"column:notes"`
	ChangedBy      string    `gorm:"column:changed_by;size:255;not null"`
	ChangedAt      time.Time `gorm:"column:changed_at"`
}

func (statusHistoryModel) TableName() string { return "status_histories" }

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	v := s
	return &v
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:              m.ID,
		RoomID:          m.RoomID,
		Title:           m.Title,
		Description:     strVal(m.Description),
		StartTime:       m.StartTime,
		EndTime:         m.EndTime,
		BookedBy:        m.BookedBy,
		Status:          domain.BookingStatus(m.Status),
		ApprovedBy:      strVal(m.ApprovedBy),
		RejectionReason: strVal(m.RejectionReason),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:              b.ID,
		RoomID:          b.RoomID,
		Title:           b.Title,
		Description:     strPtr(b.Description),
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		BookedBy:        b.BookedBy,
		Status:          int(b.Status),
		ApprovedBy:      strPtr(b.ApprovedBy),
		RejectionReason: strPtr(b.RejectionReason),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func toDomainHistory(m statusHistoryModel) domain.StatusHistory {
	return domain.StatusHistory{
		ID:             m.ID,
		BookingID:      m.BookingID,
		PreviousStatus: domain.BookingStatus(m.PreviousStatus),
		NewStatus:      domain.BookingStatus(m.NewStatus),
		Notes:          strVal(m.Notes),
		ChangedBy:      m.ChangedBy,
		ChangedAt:      m.ChangedAt,
	}
}

func toHistoryModel(h *domain.StatusHistory) statusHistoryModel {
	return statusHistoryModel{
		ID:             h.ID,
		BookingID:      h.BookingID,
		PreviousStatus: int(h.PreviousStatus),
		NewStatus:      int(h.NewStatus),
		Notes:          strPtr(h.Notes),
		ChangedBy:      h.ChangedBy,
		ChangedAt:      h.ChangedAt,
	}
}

func (r *BookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(tx.Error, &pgErr) && pgErr.Code == "23503" {
			return ErrInvalidReference
		}
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	return r.db.WithContext(ctx).Save(&m).Error
}

// Delete removes the booking together with its status history. The history
// rows are deleted in the same transaction so sqlite backends without
// foreign-key enforcement behave like the declared CASCADE.
func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", id).Delete(&statusHistoryModel{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&bookingModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// ApplyStatusChange persists an already-mutated booking and its audit record
// as one unit: either both rows commit or neither does.
func (r *BookingRepository) ApplyStatusChange(ctx context.Context, b *domain.Booking, h *domain.StatusHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toBookingModel(b)
		if err := tx.Save(&m).Error; err != nil {
			return err
		}

		hm := toHistoryModel(h)
		if err := tx.Create(&hm).Error; err != nil {
			return err
		}

		h.ID = hm.ID
		return nil
	})
}

func (r *BookingRepository) HistoryForBooking(ctx context.Context, bookingID int64) ([]domain.StatusHistory, error) {
	var ms []statusHistoryModel
	tx := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("changed_at, id").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.StatusHistory, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainHistory(m))
	}
	return out, nil
}
