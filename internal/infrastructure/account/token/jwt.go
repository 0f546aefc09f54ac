package token

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/sports-schedule/internal/domain/user"
	"github.com/riskibarqy/sports-schedule/internal/usecase"
)

const minSecretLength = 16

type Config struct {
	Secret   string
	Issuer   string
	TTL      time.Duration
	GuestTTL time.Duration
}

// Manager issues and verifies HS256 access tokens.
type Manager struct {
	secret   []byte
	issuer   string
	ttl      time.Duration
	guestTTL time.Duration
	clock    clockwork.Clock
}

type accessClaims struct {
	UserID  string `json:"id"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

func NewManager(cfg Config, clock clockwork.Clock) (*Manager, error) {
	if len(cfg.Secret) < minSecretLength {
		return nil, fmt.Errorf("token secret must be at least %d bytes", minSecretLength)
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("token ttl must be > 0")
	}
	if cfg.GuestTTL <= 0 {
		cfg.GuestTTL = cfg.TTL
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Manager{
		secret:   []byte(cfg.Secret),
		issuer:   strings.TrimSpace(cfg.Issuer),
		ttl:      cfg.TTL,
		guestTTL: cfg.GuestTTL,
		clock:    clock,
	}, nil
}

// IssueToken signs a token for principal. Guest principals get the guest
// lifetime.
func (m *Manager) IssueToken(_ context.Context, principal user.Principal) (string, error) {
	ttl := m.ttl
	if principal.UserID == user.GuestID {
		ttl = m.guestTTL
	}

	now := m.clock.Now()
	claims := accessClaims{
		UserID:  principal.UserID,
		Name:    principal.Name,
		IsAdmin: principal.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   principal.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}

	return signed, nil
}

func (m *Manager) VerifyAccessToken(_ context.Context, raw string) (user.Principal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.clock.Now),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	var claims accessClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return user.Principal{}, mapJWTError(err)
	}
	if strings.TrimSpace(claims.UserID) == "" {
		return user.Principal{}, fmt.Errorf("%w: token has no subject", usecase.ErrForbidden)
	}

	return user.Principal{
		UserID:  claims.UserID,
		Name:    claims.Name,
		IsAdmin: claims.IsAdmin,
	}, nil
}

func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: token expired", usecase.ErrForbidden)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: token signature invalid", usecase.ErrForbidden)
	default:
		return fmt.Errorf("%w: invalid token: %v", usecase.ErrForbidden, err)
	}
}
