package memory

import (
	"context"

	"github.com/riskibarqy/sports-schedule/internal/domain/user"
)

type UserRepository struct {
	binding
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (user.User, bool, error) {
	var (
		item user.User
		ok   bool
	)
	r.read(func(d *dataset) {
		item, ok = d.users[usernameKey(username)]
	})
	return item, ok, nil
}

func (r *UserRepository) Create(_ context.Context, item user.User) error {
	var taken bool
	r.write(func(d *dataset) {
		key := usernameKey(item.Username)
		if _, taken = d.users[key]; !taken {
			d.users[key] = item
		}
	})
	if taken {
		return user.ErrUsernameTaken
	}
	return nil
}
