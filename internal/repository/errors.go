// Package repository implements data access over MySQL. Sentinel errors
// declared here let handlers translate failure scenarios into HTTP statuses
// without inspecting driver-specific errors.
package repository

import "errors"

// ErrEmailExists is returned when registering with an email that is already
// taken. Handlers translate this into an HTTP 400.
var ErrEmailExists = errors.New("user already exists")

// ErrUserNotFound is returned when no user matches the given email or id.
var ErrUserNotFound = errors.New("user not found")

// ErrBookingNotFound is returned when a booking id does not exist.
var ErrBookingNotFound = errors.New("booking not found")

// ErrResetTokenInvalid is returned when a password reset is attempted with a
// token that is unknown, already consumed, or past its expiry.
var ErrResetTokenInvalid = errors.New("invalid or expired reset token")
