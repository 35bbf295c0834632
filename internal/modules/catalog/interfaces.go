package catalog

import (
	"context"

	"roombook/internal/domain"
)

type RoomRepository interface {
	List(ctx context.Context) ([]domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	Create(ctx context.Context, room *domain.Room) error
}
