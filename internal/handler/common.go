package handler // handler defines the HTTP handlers

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ankitmav/venue-booking/internal/middleware"
	"github.com/ankitmav/venue-booking/internal/model"
)

// dbTimeout bounds every store call issued from a handler.
const dbTimeout = 5 * time.Second

// UserStore is the credential-store capability the handlers depend on. The
// repository package provides the MySQL implementation; tests substitute an
// in-memory fake.
type UserStore interface {
	Create(ctx context.Context, name, email, password string, cost int) (uint64, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id uint64) (model.User, error)
	SetResetToken(ctx context.Context, userID uint64, tokenHash string, exp time.Time) error
	ResetPassword(ctx context.Context, tokenHash, newPassword string, cost int) error
}

// BookingStore is the booking persistence capability.
type BookingStore interface {
	Create(ctx context.Context, b model.Booking) (model.Booking, error)
	GetByID(ctx context.Context, id uint64) (model.Booking, error)
	UpdateStatus(ctx context.Context, id uint64, status string) (model.Booking, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error)
	ListAllWithOwner(ctx context.Context) ([]model.BookingWithOwner, error)
}

// ReviewStore is the review persistence capability.
type ReviewStore interface {
	Create(ctx context.Context, rv model.Review) (model.Review, error)
	ListRecent(ctx context.Context, limit int) ([]model.Review, error)
}

// getUserID extracts the authenticated user's id that JWTAuth stored in the
// echo context.
func getUserID(c echo.Context) (uint64, error) {
	switch v := c.Get(middleware.CtxUserID).(type) {
	case uint64:
		return v, nil
	case int64:
		return uint64(v), nil
	case float64:
		return uint64(v), nil
	}
	return 0, errors.New("invalid user_id in context")
}
