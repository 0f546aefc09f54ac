package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sports-schedule/internal/domain/user"
	qb "github.com/riskibarqy/sports-schedule/internal/platform/querybuilder"
)

type UserRepository struct {
	db sqlx.ExtContext
}

func NewUserRepository(db sqlx.ExtContext) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (user.User, bool, error) {
	query, args, err := qb.Select(userColumns...).From("users").
		Where(qb.Expr("LOWER(username) = ?", strings.ToLower(strings.TrimSpace(username)))).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build get user by username query: %w", err)
	}

	var row userTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("get user by username: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *UserRepository) Create(ctx context.Context, item user.User) error {
	query, args, err := qb.InsertModel("users", userTableModel{
		ID:           item.ID,
		Username:     strings.TrimSpace(item.Username),
		PasswordHash: item.PasswordHash,
		IsAdmin:      item.IsAdmin,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert user query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return user.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}
