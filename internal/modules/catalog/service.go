package catalog

import (
	"context"
	"errors"

	"roombook/internal/domain"
	"roombook/internal/repository"
)

type Service struct {
	rooms RoomRepository
}

func NewService(rooms RoomRepository) *Service {
	return &Service{rooms: rooms}
}

func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.List(ctx)
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	roomType := domain.RoomMeetingRoom
	if req.Type != nil {
		roomType = domain.RoomType(*req.Type)
		if !roomType.Valid() {
			return nil, ErrInvalidRoomType
		}
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	room := &domain.Room{
		Name:        req.Name,
		Location:    req.Location,
		Capacity:    req.Capacity,
		Type:        roomType,
		IsAvailable: isAvailable,
		Description: req.Description,
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}
