package model

import "time"

// Role values stored in users.role. Registration always assigns RoleUser;
// admins are promoted directly in the database.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a row in the `users` table. The password hash and the
// reset-token columns never leave the repository layer; handlers expose a
// separate public shape without them.
//
// Fields:
//  ID             – primary key identifier of the user.
//  Name           – display name given at registration.
//  Email          – unique, lower-cased email address.
//  PasswordHash   – bcrypt hashed password.
//  Role           – "user" or "admin".
//  ResetTokenHash – SHA-256 hex digest of the active password-reset token
//                   (nil when no reset is pending). Only the hash is stored;
//                   the raw token is emailed to the user.
//  ResetExpiresAt – expiry of the active reset token (nil when none).
//  CreatedAt      – timestamp of creation.
//  UpdatedAt      – timestamp of last update.
type User struct {
	ID             uint64     // users.id
	Name           string     // users.name
	Email          string     // users.email
	PasswordHash   string     // users.password_hash
	Role           string     // users.role
	ResetTokenHash *string    // users.reset_token_hash (nullable)
	ResetExpiresAt *time.Time // users.reset_expires_at (nullable)
	CreatedAt      time.Time  // users.created_at
	UpdatedAt      time.Time  // users.updated_at
}
