package token

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/sports-schedule/internal/domain/user"
	"github.com/riskibarqy/sports-schedule/internal/usecase"
)

const testSecret = "0123456789abcdef-test-secret"

func newTestManager(t *testing.T, clock clockwork.Clock) *Manager {
	t.Helper()
	m, err := NewManager(Config{Secret: testSecret, Issuer: "sports-schedule", TTL: time.Hour, GuestTTL: 24 * time.Hour}, clock)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	return m
}

func TestManager_IssueAndVerify(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(time.Date(2025, 9, 18, 16, 0, 0, 0, time.UTC))
	m := newTestManager(t, clock)

	signed, err := m.IssueToken(ctx, user.Principal{UserID: "u1", Name: "coach", IsAdmin: true})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	got, err := m.VerifyAccessToken(ctx, signed)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if got.UserID != "u1" || got.Name != "coach" || !got.IsAdmin {
		t.Fatalf("unexpected principal: %+v", got)
	}
}

func TestManager_ExpiredTokenIsForbidden(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(time.Date(2025, 9, 18, 16, 0, 0, 0, time.UTC))
	m := newTestManager(t, clock)

	signed, err := m.IssueToken(ctx, user.Principal{UserID: "u1", Name: "coach"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	clock.Advance(time.Hour + time.Second)
	_, err = m.VerifyAccessToken(ctx, signed)
	if !errors.Is(err, usecase.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for expired token, got %v", err)
	}
}

func TestManager_GuestTokenUsesGuestTTL(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(time.Date(2025, 9, 18, 16, 0, 0, 0, time.UTC))
	m := newTestManager(t, clock)

	signed, err := m.IssueToken(ctx, user.GuestPrincipal())
	if err != nil {
		t.Fatalf("issue guest token: %v", err)
	}

	clock.Advance(23 * time.Hour)
	got, err := m.VerifyAccessToken(ctx, signed)
	if err != nil {
		t.Fatalf("verify guest token: %v", err)
	}
	if got.UserID != user.GuestID || got.IsAdmin {
		t.Fatalf("unexpected guest principal: %+v", got)
	}

	clock.Advance(2 * time.Hour)
	if _, err := m.VerifyAccessToken(ctx, signed); !errors.Is(err, usecase.ErrForbidden) {
		t.Fatalf("expected guest token to expire, got %v", err)
	}
}

func TestManager_RejectsForeignTokens(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(time.Date(2025, 9, 18, 16, 0, 0, 0, time.UTC))
	m := newTestManager(t, clock)

	other, err := NewManager(Config{Secret: "another-secret-value-123", Issuer: "sports-schedule", TTL: time.Hour}, clock)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	foreign, err := other.IssueToken(ctx, user.Principal{UserID: "u1", IsAdmin: true})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{name: "wrong secret", token: foreign, want: usecase.ErrForbidden},
		{name: "garbage", token: "not.a.jwt", want: usecase.ErrForbidden},
		{name: "empty", token: "  ", want: usecase.ErrUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := m.VerifyAccessToken(ctx, tc.token); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestNewManager_RejectsShortSecret(t *testing.T) {
	if _, err := NewManager(Config{Secret: "short", TTL: time.Hour}, nil); err == nil {
		t.Fatalf("expected error for short secret")
	}
}
