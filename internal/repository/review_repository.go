package repository

import (
	"context"
	"database/sql"

	"github.com/ankitmav/venue-booking/internal/model"
)

// ReviewRepo persists reviews in the 'reviews' table.
type ReviewRepo struct{ DB *sql.DB }

func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{DB: db} }

// Create inserts a review and returns the stored row.
func (r *ReviewRepo) Create(ctx context.Context, rv model.Review) (model.Review, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO reviews (user_id, name, rating, comment) VALUES (?,?,?,?)",
		rv.UserID, rv.Name, rv.Rating, rv.Comment)
	if err != nil {
		return model.Review{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Review{}, err
	}
	var out model.Review
	err = r.DB.QueryRowContext(ctx,
		"SELECT id,user_id,name,rating,comment,created_at FROM reviews WHERE id=? LIMIT 1", id).
		Scan(&out.ID, &out.UserID, &out.Name, &out.Rating, &out.Comment, &out.CreatedAt)
	if err != nil {
		return model.Review{}, err
	}
	return out, nil
}

// ListRecent returns the newest reviews first, capped at limit.
func (r *ReviewRepo) ListRecent(ctx context.Context, limit int) ([]model.Review, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,user_id,name,rating,comment,created_at FROM reviews ORDER BY created_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Review, 0, limit)
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.Name, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}
