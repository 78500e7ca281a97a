package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/thaigeo/address-api/internal/core/domain"
	"github.com/thaigeo/address-api/internal/core/ports"
)

// bcryptCost matches the work factor the user base was hashed with.
// Changing it only affects newly created hashes.
const bcryptCost = 10

// LoginLimiter abstracts the per-username attempt throttle (Redis).
type LoginLimiter interface {
	Allow(ctx context.Context, username string) (bool, error)
}

// AuthService implements registration, login and profile access.
type AuthService struct {
	repo    ports.UserRepository
	issuer  *TokenIssuer
	limiter LoginLimiter
}

func NewAuthService(repo ports.UserRepository, issuer *TokenIssuer, limiter LoginLimiter) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, limiter: limiter}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) error {
	if in.Username == "" || in.Password == "" || in.Email == "" {
		return domain.ErrMissingFields
	}

	// Fast path only. The unique index on username is the source of truth
	// for duplicates; a concurrent registration slipping past this check is
	// still rejected by Create.
	if _, err := s.repo.FindByUsername(ctx, in.Username); err == nil {
		return domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("register: existence check: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return fmt.Errorf("register: hash password: %w", err)
	}

	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Province:     in.Province,
		District:     in.District,
		SubDistrict:  in.SubDistrict,
	}

	if _, err := s.repo.Create(ctx, user); err != nil {
		return err
	}
	return nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}

	if s.limiter != nil {
		ok, err := s.limiter.Allow(ctx, username)
		if err == nil && !ok {
			return "", nil, domain.ErrTooManyAttempts
		}
		// A limiter outage must not lock everyone out; proceed unthrottled.
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Indistinguishable from a wrong password, so usernames
			// cannot be enumerated through the login endpoint.
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.ID, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("login: issue token: %w", err)
	}

	return token, user, nil
}

func (s *AuthService) Profile(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindPublicProfile(ctx, username)
}

func (s *AuthService) UpdateProfile(ctx context.Context, username string, update domain.ProfileUpdate) error {
	return s.repo.UpdateProfile(ctx, username, update)
}
