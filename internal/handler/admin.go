package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ankitmav/venue-booking/internal/model"
	"github.com/ankitmav/venue-booking/internal/repository"
)

// AdminHandler serves the admin dashboard endpoints. Routes using it are
// wrapped in JWTAuth plus RequireRole("admin"). Admin-driven status changes
// deliberately send no notifications, unlike the user-facing confirm.
type AdminHandler struct {
	Bookings BookingStore
}

func NewAdminHandler(bookings BookingStore) *AdminHandler {
	if bookings == nil {
		panic("nil store passed to NewAdminHandler")
	}
	return &AdminHandler{Bookings: bookings}
}

type setStatusReq struct {
	Status string `json:"status"`
}

// ListBookings handles GET /api/admin/bookings: every booking with its
// owner's name and email, ordered by event date ascending.
func (h *AdminHandler) ListBookings(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	bookings, err := h.Bookings.ListAllWithOwner(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list bookings failed"})
	}
	return c.JSON(http.StatusOK, bookings)
}

// SetStatus handles PUT /api/admin/bookings/:id. Any of the three states can
// be set regardless of the current one; there is no transition validation.
func (h *AdminHandler) SetStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var req setStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if !model.ValidStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be pending, confirmed or cancelled"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	booking, err := h.Bookings.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update booking failed"})
	}
	return c.JSON(http.StatusOK, booking)
}
