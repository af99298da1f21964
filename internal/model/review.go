package model

import "time"

// Review represents a row in the `reviews` table. The author's display name
// is denormalized onto the review so the public listing does not join users.
type Review struct {
	ID        uint64    `json:"id"`        // reviews.id
	UserID    uint64    `json:"user"`      // reviews.user_id
	Name      string    `json:"name"`      // reviews.name
	Rating    int       `json:"rating"`    // reviews.rating (1..5)
	Comment   string    `json:"comment"`   // reviews.comment
	CreatedAt time.Time `json:"createdAt"` // reviews.created_at
}
