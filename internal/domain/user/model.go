package user

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUsernameTaken is returned by Repository.Create for duplicate usernames.
var ErrUsernameTaken = errors.New("username already exists")

const (
	GuestID   = "guest"
	GuestName = "Guest"
)

// User is a stored account.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	IsAdmin      bool
}

func (u User) Validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return fmt.Errorf("user id is required")
	}
	if strings.TrimSpace(u.Username) == "" {
		return fmt.Errorf("username is required")
	}
	if u.PasswordHash == "" {
		return fmt.Errorf("password hash is required")
	}

	return nil
}

// Principal is the authenticated identity attached to a request.
type Principal struct {
	UserID  string
	Name    string
	IsAdmin bool
}

func GuestPrincipal() Principal {
	return Principal{UserID: GuestID, Name: GuestName}
}
