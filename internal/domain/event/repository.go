package event

import "context"

// Repository describes event persistence needs from use cases.
type Repository interface {
	// Find returns events matching filter ordered by Less.
	Find(ctx context.Context, filter Filter) ([]Event, error)
	GetByID(ctx context.Context, eventID string) (Event, bool, error)
	Create(ctx context.Context, item Event) error
	Update(ctx context.Context, item Event) (bool, error)
	Delete(ctx context.Context, eventID string) (bool, error)
	DeleteByLeague(ctx context.Context, leagueID string) (int64, error)
	// UnlinkOpponents replaces the opponent of every event linked to one of
	// teamIDs with the fallback opponent. Events owned by excludeLeagueID are
	// left untouched when it is non-empty.
	UnlinkOpponents(ctx context.Context, teamIDs []string, excludeLeagueID string) (int64, error)
}
