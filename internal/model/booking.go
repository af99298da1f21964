package model

import "time"

// Booking status values. A new booking always starts out pending. Status
// changes are not validated against the current value: the owning user may
// confirm, and an admin may set any of the three states at any time.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the three known booking states.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

// Booking represents a row in the `bookings` table. The struct carries json
// tags because bookings are returned to clients as-is and are also the
// payload of broadcast events.
type Booking struct {
	ID             uint64    `json:"id"`             // bookings.id
	UserID         uint64    `json:"user"`           // bookings.user_id
	EventType      string    `json:"eventType"`      // bookings.event_type
	EventDate      time.Time `json:"date"`           // bookings.event_date
	EventTime      string    `json:"time"`           // bookings.event_time (e.g. "18:00")
	Guests         int       `json:"guests"`         // bookings.guests
	AdditionalInfo string    `json:"additionalInfo"` // bookings.additional_info
	Status         string    `json:"status"`         // bookings.status
	CreatedAt      time.Time `json:"createdAt"`      // bookings.created_at
	UpdatedAt      time.Time `json:"updatedAt"`      // bookings.updated_at
}

// BookingWithOwner joins a booking with the name and email of the user who
// made it. Used by the admin listing so the venue staff can see who booked
// without a second lookup.
type BookingWithOwner struct {
	Booking
	OwnerName  string `json:"ownerName"`
	OwnerEmail string `json:"ownerEmail"`
}
