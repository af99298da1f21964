package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/ankitmav/venue-booking/internal/auth"
	"github.com/ankitmav/venue-booking/internal/model"
)

// UserRepo persists user records in the 'users' table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = "id,name,email,password_hash,role,reset_token_hash,reset_expires_at,created_at,updated_at"

// Create hashes the password and inserts a user with role 'user', returning
// the new ID. A duplicate email maps to ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, name, email, password string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := auth.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, email, password_hash, role) VALUES (?,?,?,?)",
		name, email, hash, model.RoleUser)
	if err != nil {
		// 1062 = ER_DUP_ENTRY on the unique email index
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.get(ctx, "SELECT "+userColumns+" FROM users WHERE email=? LIMIT 1", email)
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	return r.get(ctx, "SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id)
}

func (r *UserRepo) get(ctx context.Context, query string, arg interface{}) (model.User, error) {
	var (
		u         model.User
		resetHash sql.NullString
		resetExp  sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &resetHash, &resetExp, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.User{}, ErrUserNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	if resetHash.Valid {
		u.ResetTokenHash = &resetHash.String
	}
	if resetExp.Valid {
		u.ResetExpiresAt = &resetExp.Time
	}
	return u, nil
}

// SetResetToken stores the hash and expiry of a freshly minted reset token,
// replacing any previous one so the user has at most one active token.
func (r *UserRepo) SetResetToken(ctx context.Context, userID uint64, tokenHash string, exp time.Time) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET reset_token_hash=?, reset_expires_at=? WHERE id=?",
		tokenHash, exp, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ResetPassword consumes a reset token: in a single statement it verifies the
// token hash and its expiry, replaces the password and clears the token so it
// cannot be used twice. Zero matched rows means the token was unknown,
// expired or already consumed.
func (r *UserRepo) ResetPassword(ctx context.Context, tokenHash, newPassword string, cost int) error {
	hash, err := auth.HashPassword(newPassword, cost)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET password_hash=?, reset_token_hash=NULL, reset_expires_at=NULL "+
			"WHERE reset_token_hash=? AND reset_expires_at > UTC_TIMESTAMP()",
		hash, tokenHash)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrResetTokenInvalid
	}
	return nil
}
