package repository

import (
	"context"
	"errors"

	"roombook/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID          int64   `gorm:"column:id;primaryKey"`
	Name        string  `gorm:"column:name;size:255;not null"`
	Location    string  `gorm:"column:location;size:255;not null"`
	Capacity    int     `gorm:"column:capacity"`
	Type        int     `gorm:"column:type"`
	IsAvailable bool    `gorm:"column:is_available"`
	Description *string `gorm:"column:description"`

	// Restrict room deletion while bookings reference it.
	Bookings []bookingModel `gorm:"foreignKey:RoomID;constraint:OnDelete:RESTRICT"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	var desc string
	if m.Description != nil {
		desc = *m.Description
	}

	return &domain.Room{
		ID:          m.ID,
		Name:        m.Name,
		Location:    m.Location,
		Capacity:    m.Capacity,
		Type:        domain.RoomType(m.Type),
		IsAvailable: m.IsAvailable,
		Description: desc,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	var desc *string
	if r.Description != "" {
		v := r.Description
		desc = &v
	}

	return roomModel{
		ID:          r.ID,
		Name:        r.Name,
		Location:    r.Location,
		Capacity:    r.Capacity,
		Type:        int(r.Type),
		IsAvailable: r.IsAvailable,
		Description: desc,
	}
}

func (r *RoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	var ms []roomModel
	tx := r.db.WithContext(ctx).Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Room, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&roomModel{}).Where("id = ?", id).Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}
