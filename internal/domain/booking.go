package domain

import (
	"fmt"
	"time"
)

// BookingStatus travels over the wire as its integer code.
type BookingStatus int

const (
	BookingPending BookingStatus = iota
	BookingApproved
	BookingRejected
	BookingCompleted
	BookingCancelled
)

func (s BookingStatus) Valid() bool {
	return s >= BookingPending && s <= BookingCancelled
}

func (s BookingStatus) String() string {
	switch s {
	case BookingPending:
		return "Pending"
	case BookingApproved:
		return "Approved"
	case BookingRejected:
		return "Rejected"
	case BookingCompleted:
		return "Completed"
	case BookingCancelled:
		return "Cancelled"
	default:
		return fmt.Sprintf("BookingStatus(%d)", int(s))
	}
}

type Booking struct {
	ID              int64         `json:"id"`
	RoomID          int64         `json:"roomId" validate:"required"`
	Title           string        `json:"title" validate:"required,max=255"`
	Description     string        `json:"description,omitempty"`
	StartTime       time.Time     `json:"startTime" validate:"required"`
	EndTime         time.Time     `json:"endTime" validate:"required"`
	BookedBy        string        `json:"bookedBy" validate:"required,max=255"`
	Status          BookingStatus `json:"status"`
	ApprovedBy      string        `json:"approvedBy,omitempty"`
	RejectionReason string        `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       *time.Time    `json:"updatedAt,omitempty"`
}

// StatusHistory is one append-only audit record. Rows are written only as
// part of a status change and removed only when the parent booking is
// deleted.
type StatusHistory struct {
	ID             int64         `json:"id"`
	BookingID      int64         `json:"bookingId"`
	PreviousStatus BookingStatus `json:"previousStatus"`
	NewStatus      BookingStatus `json:"newStatus"`
	Notes          string        `json:"notes,omitempty"`
	ChangedBy      string        `json:"changedBy"`
	ChangedAt      time.Time     `json:"changedAt"`
}

// StatusChange carries the caller's input for one transition.
type StatusChange struct {
	NewStatus       BookingStatus
	ApprovedBy      string
	RejectionReason string
	Notes           string
	ChangedBy       string
}
