package domain

import "fmt"

// RoomType travels over the wire as its integer code.
type RoomType int

const (
	RoomClassRoom RoomType = iota
	RoomMeetingRoom
	RoomConferenceRoom
	RoomLaboratory
)

func (t RoomType) Valid() bool {
	return t >= RoomClassRoom && t <= RoomLaboratory
}

func (t RoomType) String() string {
	switch t {
	case RoomClassRoom:
		return "ClassRoom"
	case RoomMeetingRoom:
		return "MeetingRoom"
	case RoomConferenceRoom:
		return "ConferenceRoom"
	case RoomLaboratory:
		return "Laboratory"
	default:
		return fmt.Sprintf("RoomType(%d)", int(t))
	}
}

type Room struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name" validate:"max=255"`
	Location    string   `json:"location" validate:"max=255"`
	Capacity    int      `json:"capacity" validate:"gte=0"`
	Type        RoomType `json:"type"`
	IsAvailable bool     `json:"isAvailable"`
	Description string   `json:"description,omitempty"`
}
