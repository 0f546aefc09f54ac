package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	ListByLeague(ctx context.Context, leagueID string) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	Create(ctx context.Context, item Team) error
	Update(ctx context.Context, item Team) (bool, error)
	Delete(ctx context.Context, teamID string) (bool, error)
	// DeleteByLeague removes every team of leagueID and returns the ids it
	// removed.
	DeleteByLeague(ctx context.Context, leagueID string) ([]string, error)
}
