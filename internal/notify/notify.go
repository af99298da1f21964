// Package notify defines the two side-effect channels triggered by the
// booking workflow: templated email and a real-time event broadcast. Both
// are best-effort: the workflow logs a failure and carries on, so a dead
// mail relay or broker never turns a successful booking into an error.
package notify

import (
	"context"

	"github.com/ankitmav/venue-booking/internal/model"
)

// Event names emitted on the real-time channel.
const (
	EventNewBooking       = "newBooking"
	EventBookingConfirmed = "bookingConfirmed"
)

// Broadcaster emits a named event with a payload to all currently connected
// listeners. There is no delivery guarantee and no replay for listeners that
// connect later. Handlers receive it as an injected dependency so tests can
// substitute a recording fake.
type Broadcaster interface {
	Emit(ctx context.Context, event string, payload interface{}) error
}

// Mailer delivers the three templated HTML messages the workflow sends.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, resetURL string) error
	SendOwnerNewBooking(ctx context.Context, to string, b model.Booking) error
	SendBookingConfirmed(ctx context.Context, to string, b model.Booking) error
}
