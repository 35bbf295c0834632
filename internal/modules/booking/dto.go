package booking

import "time"

type CreateBookingRequest struct {
	RoomID      int64     `json:"roomId" binding:"required"`
	Title       string    `json:"title" binding:"required,max=255"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	EndTime     time.Time `json:"endTime" binding:"required"`
	BookedBy    string    `json:"bookedBy" binding:"required,max=255"`
}

// UpdateBookingRequest carries the only mutable fields. roomId, bookedBy and
// status are ignored even if a client sends them.
type UpdateBookingRequest struct {
	Title       string    `json:"title" binding:"required,max=255"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	EndTime     time.Time `json:"endTime" binding:"required"`
}

// ChangeStatusRequest uses a pointer for Status so Pending (0) survives the
// required check.
type ChangeStatusRequest struct {
	Status          *int   `json:"status" binding:"required"`
	ApprovedBy      string `json:"approvedBy"`
	RejectionReason string `json:"rejectionReason"`
	Notes           string `json:"notes"`
	ChangedBy       string `json:"changedBy"`
}
