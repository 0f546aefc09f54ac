package cache

import (
	"context"

	"github.com/riskibarqy/sports-schedule/internal/domain/league"
	"github.com/riskibarqy/sports-schedule/internal/domain/team"
	"github.com/riskibarqy/sports-schedule/internal/domain/unitofwork"
	basecache "github.com/riskibarqy/sports-schedule/internal/platform/cache"
)

const (
	leaguePrefix = "league:"
	teamPrefix   = "team:"
)

type LeagueRepository struct {
	next  league.Repository
	cache *basecache.Store
}

func NewLeagueRepository(next league.Repository, cache *basecache.Store) *LeagueRepository {
	return &LeagueRepository{next: next, cache: cache}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	return r.loadList(ctx, "league:list", r.next.List)
}

func (r *LeagueRepository) ListBySeason(ctx context.Context, season string) ([]league.League, error) {
	return r.loadList(ctx, "league:season:"+season, func(ctx context.Context) ([]league.League, error) {
		return r.next.ListBySeason(ctx, season)
	})
}

func (r *LeagueRepository) loadList(ctx context.Context, key string, load func(context.Context) ([]league.League, error)) ([]league.League, error) {
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]league.League(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]league.League)
	return append([]league.League(nil), items...), nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	key := "league:id:" + leagueID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return cachedLeagueByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return league.League{}, false, err
	}

	cached, _ := v.(cachedLeagueByID)
	return cached.value, cached.exists, nil
}

func (r *LeagueRepository) Create(ctx context.Context, item league.League) error {
	defer r.cache.DeletePrefix(ctx, leaguePrefix)
	return r.next.Create(ctx, item)
}

func (r *LeagueRepository) Update(ctx context.Context, item league.League) (bool, error) {
	defer r.cache.DeletePrefix(ctx, leaguePrefix)
	return r.next.Update(ctx, item)
}

func (r *LeagueRepository) Delete(ctx context.Context, leagueID string) (bool, error) {
	defer r.cache.DeletePrefix(ctx, leaguePrefix)
	return r.next.Delete(ctx, leagueID)
}

type cachedLeagueByID struct {
	value  league.League
	exists bool
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	return r.loadList(ctx, "team:list", r.next.List)
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	return r.loadList(ctx, "team:league:"+leagueID, func(ctx context.Context) ([]team.Team, error) {
		return r.next.ListByLeague(ctx, leagueID)
	})
}

func (r *TeamRepository) loadList(ctx context.Context, key string, load func(context.Context) ([]team.Team, error)) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	key := "team:id:" + teamID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) error {
	defer r.cache.DeletePrefix(ctx, teamPrefix)
	return r.next.Create(ctx, item)
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) (bool, error) {
	defer r.cache.DeletePrefix(ctx, teamPrefix)
	return r.next.Update(ctx, item)
}

func (r *TeamRepository) Delete(ctx context.Context, teamID string) (bool, error) {
	defer r.cache.DeletePrefix(ctx, teamPrefix)
	return r.next.Delete(ctx, teamID)
}

func (r *TeamRepository) DeleteByLeague(ctx context.Context, leagueID string) ([]string, error) {
	defer r.cache.DeletePrefix(ctx, teamPrefix)
	return r.next.DeleteByLeague(ctx, leagueID)
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

// UnitOfWork drops cached leagues and teams once a unit has committed.
// Transaction scoped repositories bypass the cache entirely.
type UnitOfWork struct {
	next  unitofwork.UnitOfWork
	cache *basecache.Store
}

func NewUnitOfWork(next unitofwork.UnitOfWork, cache *basecache.Store) *UnitOfWork {
	return &UnitOfWork{next: next, cache: cache}
}

func (u *UnitOfWork) Run(ctx context.Context, name string, steps ...unitofwork.Step) error {
	if err := u.next.Run(ctx, name, steps...); err != nil {
		return err
	}
	u.cache.DeletePrefixes(ctx, leaguePrefix, teamPrefix)
	return nil
}
