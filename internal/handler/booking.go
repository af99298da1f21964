package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ankitmav/venue-booking/internal/model"
	"github.com/ankitmav/venue-booking/internal/notify"
	"github.com/ankitmav/venue-booking/internal/repository"
)

// eventDateLayout is the wire format for event dates.
const eventDateLayout = "2006-01-02"

// BookingHandler orchestrates the booking workflow: persistence first, then
// the best-effort side effects (email, broadcast). The mailer and the
// broadcaster are injected so tests can record what would have been sent;
// their failures are logged here and never change the response.
type BookingHandler struct {
	Bookings   BookingStore
	Users      UserStore
	Mail       notify.Mailer
	Broadcast  notify.Broadcaster
	OwnerEmail string
}

func NewBookingHandler(bookings BookingStore, users UserStore, mail notify.Mailer, broadcast notify.Broadcaster, ownerEmail string) *BookingHandler {
	if bookings == nil || users == nil || mail == nil || broadcast == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: bookings, Users: users, Mail: mail, Broadcast: broadcast, OwnerEmail: ownerEmail}
}

type createBookingReq struct {
	EventType      string `json:"eventType"`
	Date           string `json:"date"` // "2006-01-02"
	Time           string `json:"time"` // e.g. "18:00"
	Guests         int    `json:"guests"`
	AdditionalInfo string `json:"additionalInfo"`
}

// Create handles POST /api/bookings. The booking is persisted with status
// pending; success is decided by persistence alone. Afterwards a
// "newBooking" event is broadcast and the venue owner is mailed, both
// best-effort.
func (h *BookingHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.EventType = strings.TrimSpace(req.EventType)
	if req.EventType == "" || req.Date == "" || req.Time == "" || req.Guests <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "eventType, date, time and guests are required"})
	}
	date, err := time.Parse(eventDateLayout, req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be formatted as YYYY-MM-DD"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	booking, err := h.Bookings.Create(ctx, model.Booking{
		UserID:         uid,
		EventType:      req.EventType,
		EventDate:      date,
		EventTime:      req.Time,
		Guests:         req.Guests,
		AdditionalInfo: req.AdditionalInfo,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}

	if err := h.Broadcast.Emit(ctx, notify.EventNewBooking, booking); err != nil {
		log.Printf("broadcast: %s for booking %d failed: %v", notify.EventNewBooking, booking.ID, err)
	}
	if err := h.Mail.SendOwnerNewBooking(ctx, h.OwnerEmail, booking); err != nil {
		log.Printf("mailer: owner notification for booking %d failed: %v", booking.ID, err)
	}

	return c.JSON(http.StatusCreated, booking)
}

// ListMine handles GET /api/bookings: the caller's bookings ordered by event
// date ascending.
func (h *BookingHandler) ListMine(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	bookings, err := h.Bookings.ListByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list bookings failed"})
	}
	return c.JSON(http.StatusOK, bookings)
}

// Confirm handles PUT /api/bookings/:id/confirm. The status is set to
// confirmed unconditionally, so confirming twice is a no-op at the data
// level (the notifications are re-sent). Afterwards the booking's owner is
// mailed and a "bookingConfirmed" event is broadcast, both best-effort.
func (h *BookingHandler) Confirm(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	booking, err := h.Bookings.UpdateStatus(ctx, id, model.StatusConfirmed)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "confirm booking failed"})
	}

	if u, err := h.Users.GetByID(ctx, booking.UserID); err != nil {
		log.Printf("mailer: confirmation for booking %d skipped, owner lookup failed: %v", booking.ID, err)
	} else if err := h.Mail.SendBookingConfirmed(ctx, u.Email, booking); err != nil {
		log.Printf("mailer: confirmation for booking %d failed: %v", booking.ID, err)
	}
	if err := h.Broadcast.Emit(ctx, notify.EventBookingConfirmed, booking); err != nil {
		log.Printf("broadcast: %s for booking %d failed: %v", notify.EventBookingConfirmed, booking.ID, err)
	}

	return c.JSON(http.StatusOK, booking)
}
