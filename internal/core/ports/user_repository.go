package ports

import (
	"context"

	"github.com/thaigeo/address-api/internal/core/domain"
)

// UserRepository defines the interface for user account persistence.
type UserRepository interface {
	// Create persists a new user. The persistence layer's uniqueness
	// constraint on username is the authoritative duplicate signal.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// FindByUsername returns the full record including the password hash.
	// Internal use only; never returned to a client as-is.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindPublicProfile returns the record with the password hash excluded.
	FindPublicProfile(ctx context.Context, username string) (*domain.User, error)

	// UpdateProfile overwrites the four mutable profile fields, leaving
	// username, password hash and created_at untouched. Returns
	// domain.ErrUserNotFound when no record matches.
	UpdateProfile(ctx context.Context, username string, update domain.ProfileUpdate) error
}
