package repository

import (
	"context"
	"database/sql"

	"github.com/ankitmav/venue-booking/internal/model"
)

// BookingRepo persists booking records in the 'bookings' table. Writes are
// serialized per row by the storage engine; no optimistic-concurrency token
// is kept, so concurrent status updates are last-write-wins.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

const bookingColumns = "id,user_id,event_type,event_date,event_time,guests,additional_info,status,created_at,updated_at"

// Create inserts a booking with status 'pending' and returns the stored row
// with its generated id and timestamps.
func (r *BookingRepo) Create(ctx context.Context, b model.Booking) (model.Booking, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO bookings (user_id, event_type, event_date, event_time, guests, additional_info, status) VALUES (?,?,?,?,?,?,?)",
		b.UserID, b.EventType, b.EventDate, b.EventTime, b.Guests, b.AdditionalInfo, model.StatusPending)
	if err != nil {
		return model.Booking{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Booking{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID fetches a booking by id.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (model.Booking, error) {
	var b model.Booking
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE id=? LIMIT 1", id).
		Scan(&b.ID, &b.UserID, &b.EventType, &b.EventDate, &b.EventTime, &b.Guests,
			&b.AdditionalInfo, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Booking{}, ErrBookingNotFound
	}
	if err != nil {
		return model.Booking{}, err
	}
	return b, nil
}

// UpdateStatus sets the booking status unconditionally and returns the
// updated row. Setting the current value again is allowed; the transition
// table is deliberately unrestricted.
func (r *BookingRepo) UpdateStatus(ctx context.Context, id uint64, status string) (model.Booking, error) {
	if _, err := r.DB.ExecContext(ctx,
		"UPDATE bookings SET status=? WHERE id=?", status, id); err != nil {
		return model.Booking{}, err
	}
	// RowsAffected is 0 both for a missing row and for a no-op update, so
	// existence is decided by the read-back.
	return r.GetByID(ctx, id)
}

// ListByUser returns all bookings of one user ordered by event date
// ascending.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE user_id=? ORDER BY event_date ASC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Booking, 0)
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.EventType, &b.EventDate, &b.EventTime,
			&b.Guests, &b.AdditionalInfo, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// ListAllWithOwner returns every booking joined with the owner's name and
// email, ordered by event date ascending. Used by the admin dashboard.
func (r *BookingRepo) ListAllWithOwner(ctx context.Context) ([]model.BookingWithOwner, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT b.id,b.user_id,b.event_type,b.event_date,b.event_time,b.guests,b.additional_info,b.status,b.created_at,b.updated_at,u.name,u.email "+
			"FROM bookings b JOIN users u ON u.id = b.user_id ORDER BY b.event_date ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.BookingWithOwner, 0)
	for rows.Next() {
		var b model.BookingWithOwner
		if err := rows.Scan(&b.ID, &b.UserID, &b.EventType, &b.EventDate, &b.EventTime,
			&b.Guests, &b.AdditionalInfo, &b.Status, &b.CreatedAt, &b.UpdatedAt,
			&b.OwnerName, &b.OwnerEmail); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
