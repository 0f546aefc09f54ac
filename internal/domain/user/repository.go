package user

import "context"

type Repository interface {
	GetByUsername(ctx context.Context, username string) (User, bool, error)
	Create(ctx context.Context, item User) error
}
