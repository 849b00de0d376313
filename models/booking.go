package models

import (
	"time"
)

// BookingStatus is the approval state of a reservation. A booking starts as
// pending and is flipped to approved inside the reservation flow when the
// approval policy does not ask for review. Nothing moves a booking back to
// pending once it has been resolved.
type BookingStatus string

const (
	BookingPending  BookingStatus = "pending"
	BookingApproved BookingStatus = "approved"
	BookingDenied   BookingStatus = "denied"
)

type Booking struct {
	// Assigned by the reservation service, never by the caller.
	ID string `gorm:"primaryKey;size:36" json:"id"`

	PlaceID string `gorm:"column:place_id;index;size:36" json:"-"`

	Start   time.Time     `gorm:"column:start_at" json:"start"`
	End     time.Time     `gorm:"column:end_at" json:"end"`
	Status  BookingStatus `gorm:"column:status;size:16" json:"status"`
	GuestID string        `gorm:"column:guest_id;index;size:191" json:"guestId"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
