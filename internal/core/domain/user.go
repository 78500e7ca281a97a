package domain

import (
	"errors"
	"time"
)

var ErrMissingFields = errors.New("missing required fields")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrTooManyAttempts = errors.New("too many login attempts")

// User models a registered account. PasswordHash never leaves the server:
// it is excluded from JSON and from every public-profile read.
type User struct {
	ID           string    `json:"id,omitempty"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Province     string    `json:"province,omitempty"`
	District     string    `json:"district,omitempty"`
	SubDistrict  string    `json:"sub_district,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProfileUpdate carries the only fields mutable after registration.
// Username, PasswordHash and CreatedAt are fixed at creation.
type ProfileUpdate struct {
	Email       string
	Province    string
	District    string
	SubDistrict string
}
