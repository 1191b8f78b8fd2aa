package model

import (
	"errors"
	"time"
)

// User represents a registered account.
type User struct {
	ID             int64      `db:"id" json:"id"`
	Username       string     `db:"username" json:"username"`
	PasswordHashed string     `db:"password_hashed" json:"-"`
	Email          *string    `db:"email" json:"email"`
	Description    *string    `db:"description" json:"description"`
	Gender         *string    `db:"gender" json:"gender"`
	Birthdate      *time.Time `db:"birthdate" json:"birthdate"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// UserSummary is the public projection used in listings and tag hydration.
type UserSummary struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
}

// SignUpRequest carries the fields accepted at registration.
type SignUpRequest struct {
	Username    string  `json:"username"`
	Email       *string `json:"email"`
	Password    string  `json:"password"`
	Birthdate   *string `json:"birthdate"` // "2006-01-02"
	Description *string `json:"description"`
	Gender      *string `json:"gender"`
}

type LogInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

var (
	// ErrUserNotFound is returned when a user id or username does not resolve
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameExists is returned when attempting to create a user with a taken username
	ErrUsernameExists = errors.New("username already exists")

	// ErrInvalidCredentials is returned when login credentials are incorrect
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidSignUp is returned when required sign-up fields are missing or malformed
	ErrInvalidSignUp = errors.New("invalid sign up parameters")
)
