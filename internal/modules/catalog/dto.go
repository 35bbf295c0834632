package catalog

// CreateRoomRequest accepts empty name/location; only field shape is
// enforced at the boundary. Type and isAvailable default to MeetingRoom and
// true when absent.
type CreateRoomRequest struct {
	Name        string `json:"name" validate:"max=255"`
	Location    string `json:"location" validate:"max=255"`
	Capacity    int    `json:"capacity" validate:"gte=0"`
	Type        *int   `json:"type"`
	IsAvailable *bool  `json:"isAvailable"`
	Description string `json:"description"`
}
