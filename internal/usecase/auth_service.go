package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/sports-schedule/internal/domain/user"
	idgen "github.com/riskibarqy/sports-schedule/internal/platform/id"
)

// bcrypt ignores input past 72 bytes.
const maxPasswordBytes = 72

type TokenIssuer interface {
	IssueToken(ctx context.Context, principal user.Principal) (string, error)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hashed, plain string) (bool, error)
}

type RegisterInput struct {
	Username string
	Password string
	IsAdmin  bool
}

type RegisterResult struct {
	Token   string
	IsAdmin bool
}

type AuthService struct {
	userRepo         user.Repository
	tokens           TokenIssuer
	hasher           PasswordHasher
	idGen            idgen.Generator
	allowAdminSignup bool
}

func NewAuthService(
	userRepo user.Repository,
	tokens TokenIssuer,
	hasher PasswordHasher,
	idGen idgen.Generator,
	allowAdminSignup bool,
) *AuthService {
	return &AuthService{
		userRepo:         userRepo,
		tokens:           tokens,
		hasher:           hasher,
		idGen:            idGen,
		allowAdminSignup: allowAdminSignup,
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	account, exists, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	ok, err := s.hasher.Compare(account.PasswordHash, password)
	if err != nil {
		return "", fmt.Errorf("check password: %w", err)
	}
	if !ok {
		return "", fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	return s.issue(ctx, user.Principal{UserID: account.ID, Name: account.Username, IsAdmin: account.IsAdmin})
}

// Register creates an account. The admin flag is honoured only when admin
// sign-up is enabled.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (RegisterResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Register")
	defer span.End()

	account, err := s.createUser(ctx, input.Username, input.Password, input.IsAdmin && s.allowAdminSignup)
	if err != nil {
		return RegisterResult{}, err
	}

	token, err := s.issue(ctx, user.Principal{UserID: account.ID, Name: account.Username, IsAdmin: account.IsAdmin})
	if err != nil {
		return RegisterResult{}, err
	}

	return RegisterResult{Token: token, IsAdmin: account.IsAdmin}, nil
}

// CreateAdmin provisions an administrator regardless of sign-up settings.
func (s *AuthService) CreateAdmin(ctx context.Context, username, password string) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.CreateAdmin")
	defer span.End()

	return s.createUser(ctx, username, password, true)
}

func (s *AuthService) Guest(ctx context.Context) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Guest")
	defer span.End()

	return s.issue(ctx, user.GuestPrincipal())
}

func (s *AuthService) createUser(ctx context.Context, username, password string, isAdmin bool) (user.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return user.User{}, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}
	if strings.EqualFold(username, user.GuestID) {
		return user.User{}, fmt.Errorf("%w: username %q is reserved", ErrInvalidInput, username)
	}
	if len(password) > maxPasswordBytes {
		return user.User{}, fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidInput, maxPasswordBytes)
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return user.User{}, fmt.Errorf("hash password: %w", err)
	}
	userID, err := s.idGen.NewID()
	if err != nil {
		return user.User{}, fmt.Errorf("generate user id: %w", err)
	}

	account := user.User{
		ID:           userID,
		Username:     username,
		PasswordHash: hashed,
		IsAdmin:      isAdmin,
	}
	if err := account.Validate(); err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.userRepo.Create(ctx, account); err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			return user.User{}, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	return account, nil
}

func (s *AuthService) issue(ctx context.Context, principal user.Principal) (string, error) {
	token, err := s.tokens.IssueToken(ctx, principal)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
