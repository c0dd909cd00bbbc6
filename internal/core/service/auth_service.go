package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/minimarket/storefront-system/internal/core/domain"
	"github.com/minimarket/storefront-system/internal/core/ports"
)

// OwnerRole is the role claim issued to the single demo account. Admin
// routes require it.
const OwnerRole = "owner"

var _ ports.AuthService = (*AuthService)(nil)

// AuthService implements the demo single-account flow: exactly one stored
// user, overwritten wholesale on each registration, matched exactly on login.
// Passwords are stored and compared in plaintext, a documented property of
// the demo, not an oversight.
type AuthService struct {
	repo      ports.StateRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.StateRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Register stores the user record, replacing any previous one.
func (s *AuthService) Register(ctx context.Context, name, email, pass string) (*domain.StoredUser, error) {
	if name == "" || email == "" || pass == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user := &domain.StoredUser{Name: name, Email: email, Pass: pass}
	if err := s.repo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", email).Msg("user registered")
	return user, nil
}

// Login succeeds only when email and password both match the stored record
// exactly, and returns a signed session token.
func (s *AuthService) Login(ctx context.Context, email, pass string) (string, *domain.StoredUser, error) {
	if email == "" || pass == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.LoadUser(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrCorruptRecord) {
			return "", nil, domain.ErrUserNotFound
		}
		return "", nil, err
	}

	if user.Email != email || user.Pass != pass {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.StoredUser) (string, error) {
	claims := jwt.MapClaims{
		"name":  user.Name,
		"email": user.Email,
		"role":  OwnerRole,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
