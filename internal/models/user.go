package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"id"`                 // Primary key
	Name         string    `json:"name" db:"name"`             // Display name
	Email        string    `json:"email" db:"email"`           // Unique email, used to log in
	PasswordHash string    `json:"-" db:"password_hash"`       // Bcrypt hash
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// SessionUser is the public part of a user carried in a session
// swagger:model SessionUser
type SessionUser struct {
	// User ID
	ID uuid.UUID `json:"id"`

	// Display name
	// example: John Doe
	Name string `json:"name"`
}

// Session is returned by the session endpoint; a nil *Session encodes as null
// swagger:model Session
type Session struct {
	User SessionUser `json:"user"`
}
