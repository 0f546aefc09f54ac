package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/sports-schedule/internal/domain/league"
	"github.com/riskibarqy/sports-schedule/internal/domain/team"
	"github.com/riskibarqy/sports-schedule/internal/domain/unitofwork"
	"github.com/riskibarqy/sports-schedule/internal/infrastructure/repository/memory"
	basecache "github.com/riskibarqy/sports-schedule/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeagueRepository_ServesCachedValueUntilWrite(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	store.SeedDemo()
	raw := store.Leagues()

	cached := NewLeagueRepository(raw, basecache.NewStore(time.Minute))

	first, err := cached.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 3)

	extra := league.League{ID: "68cc2c8000000000000000ff", Season: "fall", Sport: "rugby", AgeGroup: "u18", Division: "a", Gender: "boys"}
	require.NoError(t, raw.Create(ctx, extra))

	stale, err := cached.List(ctx)
	require.NoError(t, err)
	assert.Len(t, stale, 3, "direct writes bypass the cache")

	_, err = cached.Update(ctx, extra)
	require.NoError(t, err)

	fresh, err := cached.List(ctx)
	require.NoError(t, err)
	assert.Len(t, fresh, 4)
}

func TestUnitOfWork_InvalidatesAfterCommit(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	store.SeedDemo()
	cacheStore := basecache.NewStore(time.Minute)
	leagues := NewLeagueRepository(store.Leagues(), cacheStore)
	teams := NewTeamRepository(store.Teams(), cacheStore)
	uow := NewUnitOfWork(memory.NewUnitOfWork(store), cacheStore)

	_, ok, err := leagues.GetByID(ctx, memory.LeagueIDSoccerU14Boys)
	require.NoError(t, err)
	require.True(t, ok)
	before, err := teams.ListByLeague(ctx, memory.LeagueIDSoccerU14Boys)
	require.NoError(t, err)
	require.NotEmpty(t, before)

	err = uow.Run(ctx, "delete-league",
		unitofwork.Step{Name: "delete-league-teams", Run: func(ctx context.Context, repos unitofwork.Repositories) error {
			_, err := repos.Teams.DeleteByLeague(ctx, memory.LeagueIDSoccerU14Boys)
			return err
		}},
		unitofwork.Step{Name: "delete-league", Run: func(ctx context.Context, repos unitofwork.Repositories) error {
			_, err := repos.Leagues.Delete(ctx, memory.LeagueIDSoccerU14Boys)
			return err
		}},
	)
	require.NoError(t, err)

	_, ok, err = leagues.GetByID(ctx, memory.LeagueIDSoccerU14Boys)
	require.NoError(t, err)
	assert.False(t, ok)
	after, err := teams.ListByLeague(ctx, memory.LeagueIDSoccerU14Boys)
	require.NoError(t, err)
	assert.Empty(t, after)
}

// blockingTeams parks the first GetByID until release is closed.
type blockingTeams struct {
	team.Repository
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (r *blockingTeams) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	item, exists, err := r.Repository.GetByID(ctx, teamID)
	r.once.Do(func() {
		close(r.entered)
		<-r.release
	})
	return item, exists, err
}

func TestTeamRepository_LoadOverlappingDeleteIsNotCached(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	store.SeedDemo()
	cacheStore := basecache.NewStore(time.Minute)

	all, err := store.Teams().List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, all)
	target := all[0]

	slow := &blockingTeams{Repository: store.Teams(), entered: make(chan struct{}), release: make(chan struct{})}
	teams := NewTeamRepository(slow, cacheStore)
	uow := NewUnitOfWork(memory.NewUnitOfWork(store), cacheStore)

	type result struct {
		exists bool
		err    error
	}
	inflight := make(chan result, 1)
	go func() {
		_, exists, err := teams.GetByID(ctx, target.ID)
		inflight <- result{exists: exists, err: err}
	}()

	<-slow.entered
	err = uow.Run(ctx, "delete-team", unitofwork.Step{Name: "delete-team", Run: func(ctx context.Context, repos unitofwork.Repositories) error {
		_, err := repos.Teams.Delete(ctx, target.ID)
		return err
	}})
	require.NoError(t, err)
	close(slow.release)

	got := <-inflight
	require.NoError(t, got.err)
	assert.True(t, got.exists, "the in-flight read observed the team before the delete")

	_, exists, err := teams.GetByID(ctx, target.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
