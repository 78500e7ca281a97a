package ports

import (
	"context"

	"github.com/thaigeo/address-api/internal/core/domain"
)

// RegisterInput is the DTO passed from the transport layer for registration.
type RegisterInput struct {
	Username    string
	Password    string
	Email       string
	Province    string
	District    string
	SubDistrict string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) error
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	Profile(ctx context.Context, username string) (*domain.User, error)
	UpdateProfile(ctx context.Context, username string, update domain.ProfileUpdate) error
}
