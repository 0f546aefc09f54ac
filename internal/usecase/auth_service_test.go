package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/sports-schedule/internal/domain/user"
	"github.com/riskibarqy/sports-schedule/internal/infrastructure/account/password"
	"github.com/riskibarqy/sports-schedule/internal/infrastructure/repository/memory"
	usermock "github.com/riskibarqy/sports-schedule/internal/mocks/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// recordingIssuer returns "token:<id>:<admin>" and keeps the last principal.
type recordingIssuer struct {
	last user.Principal
}

func (r *recordingIssuer) IssueToken(_ context.Context, principal user.Principal) (string, error) {
	r.last = principal
	if principal.IsAdmin {
		return "token:" + principal.UserID + ":admin", nil
	}
	return "token:" + principal.UserID, nil
}

func newAuthService(t *testing.T, allowAdminSignup bool) (*AuthService, *recordingIssuer, *memory.Store) {
	t.Helper()

	env := newTestEnv(t, october2025())
	issuer := &recordingIssuer{}
	service := NewAuthService(env.store.Users(), issuer, password.NewBcryptHasher(bcrypt.MinCost), env.ids, allowAdminSignup)
	return service, issuer, env.store
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	service, issuer, _ := newAuthService(t, false)

	registered, err := service.Register(ctx, RegisterInput{Username: "coach", Password: "whistle-2025", IsAdmin: true})
	require.NoError(t, err)
	assert.False(t, registered.IsAdmin, "admin flag must be ignored when sign-up is closed")
	assert.True(t, strings.HasPrefix(registered.Token, "token:"))

	token, err := service.Login(ctx, "COACH", "whistle-2025")
	require.NoError(t, err)
	assert.Equal(t, registered.Token, token)
	assert.Equal(t, "coach", issuer.last.Name)
	assert.False(t, issuer.last.IsAdmin)
}

func TestAuthService_RegisterAdminWhenAllowed(t *testing.T) {
	service, issuer, _ := newAuthService(t, true)

	registered, err := service.Register(context.Background(), RegisterInput{Username: "ad", Password: "secret-pass", IsAdmin: true})
	require.NoError(t, err)
	assert.True(t, registered.IsAdmin)
	assert.True(t, issuer.last.IsAdmin)
}

func TestAuthService_LoginFailures(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newAuthService(t, false)
	_, err := service.CreateAdmin(ctx, "director", "correct horse")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		want     error
	}{
		{name: "wrong password", username: "director", password: "battery staple", want: ErrUnauthorized},
		{name: "unknown user", username: "nobody", password: "correct horse", want: ErrUnauthorized},
		{name: "missing password", username: "director", password: "", want: ErrInvalidInput},
		{name: "missing username", username: "  ", password: "correct horse", want: ErrInvalidInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Login(ctx, tc.username, tc.password)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestAuthService_CreateAdmin(t *testing.T) {
	ctx := context.Background()
	service, issuer, store := newAuthService(t, false)

	account, err := service.CreateAdmin(ctx, "director", "correct horse")
	require.NoError(t, err)
	assert.True(t, account.IsAdmin)
	assert.NotEqual(t, "correct horse", account.PasswordHash)

	stored, exists, err := store.Users().GetByUsername(ctx, "Director")
	require.NoError(t, err)
	require.True(t, exists)
	assert.True(t, stored.IsAdmin)

	_, err = service.Login(ctx, "director", "correct horse")
	require.NoError(t, err)
	assert.True(t, issuer.last.IsAdmin)

	_, err = service.CreateAdmin(ctx, "DIRECTOR", "another one")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestAuthService_RegisterValidation(t *testing.T) {
	service, _, _ := newAuthService(t, false)

	tests := []struct {
		name  string
		input RegisterInput
	}{
		{name: "reserved guest name", input: RegisterInput{Username: "Guest", Password: "pw"}},
		{name: "password too long", input: RegisterInput{Username: "long", Password: strings.Repeat("x", 73)}},
		{name: "empty password", input: RegisterInput{Username: "empty"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Register(context.Background(), tc.input)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAuthService_Guest(t *testing.T) {
	service, issuer, _ := newAuthService(t, false)

	token, err := service.Guest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token:"+user.GuestID, token)
	assert.Equal(t, user.GuestPrincipal(), issuer.last)
}

func TestAuthService_LoginStoreErrorUsingMockery(t *testing.T) {
	t.Parallel()

	userRepo := usermock.NewRepository(t)
	boom := errors.New("connection refused")
	userRepo.On("GetByUsername", mock.Anything, "coach").Return(user.User{}, false, boom).Once()

	service := NewAuthService(userRepo, &recordingIssuer{}, password.NewBcryptHasher(bcrypt.MinCost), nil, false)
	_, err := service.Login(context.Background(), "coach", "pw")
	if !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
	if errors.Is(err, ErrUnauthorized) {
		t.Fatalf("store errors must not look like bad credentials: %v", err)
	}
}
