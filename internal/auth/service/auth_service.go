package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logging"
)

// TokenTTL is how long an issued admin token stays valid.
const TokenTTL = time.Hour

// AuthService checks the single configured admin and issues tokens for it.
type AuthService struct {
	username string
	password string
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
	log      logging.Logger
}

func NewAuthService(username, password, secret string, ttl time.Duration, log logging.Logger) *AuthService {
	if ttl <= 0 {
		ttl = TokenTTL
	}
	if log == nil {
		log = logging.Nop()
	}
	return &AuthService{
		username: username,
		password: password,
		secret:   []byte(secret),
		ttl:      ttl,
		now:      time.Now,
		log:      log,
	}
}

// Login returns a signed token valid for the configured TTL.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password))
	if userOK&passOK != 1 {
		s.log.Warn(ctx, "admin login rejected")
		return "", domain.ErrInvalidCredentials
	}

	token, err := generateToken(s.username, s.secret, s.now(), s.ttl)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	s.log.Info(ctx, "admin logged in")
	return token, nil
}

// Verify accepts only unexpired HS256 tokens signed with our secret for the configured admin.
func (s *AuthService) Verify(token string) (*domain.Identity, error) {
	if token == "" {
		return nil, domain.ErrMissingToken
	}

	claims, err := parseToken(token, s.secret, s.now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if claims.Subject != s.username {
		return nil, domain.ErrInvalidToken
	}

	return &domain.Identity{Username: claims.Username}, nil
}
