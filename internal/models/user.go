package models

import (
	"errors"
	"time"
)

// ErrUserAlreadyExists is returned when a username is already taken.
var ErrUserAlreadyExists = errors.New("username already exists")

// UserDB represents a user record in the database
type UserDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	Username  string    `json:"username" db:"username"`     // Unique username
	Password  string    `json:"-" db:"password"`            // Hashed password
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
