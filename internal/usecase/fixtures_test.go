package usecase

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/sports-schedule/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/sports-schedule/internal/platform/id"
	"github.com/riskibarqy/sports-schedule/internal/platform/logging"
)

// Identifiers that are well formed but never stored.
const (
	missingLeagueID = "68cc2c80ffffffffff000001"
	missingTeamID   = "68cc2c80ffffffffff000002"
	missingEventID  = "68cc2c80ffffffffff000003"
)

type testEnv struct {
	store     *memory.Store
	clock     *clockwork.FakeClock
	ids       *idgen.ObjectIDGenerator
	planner   *EventQueryPlanner
	integrity *IntegrityEngine
	leagues   *LeagueService
	teams     *TeamService
	events    *EventService
}

// newTestEnv wires every service over a demo-seeded memory store with the
// clock fixed at now.
func newTestEnv(t *testing.T, now time.Time) *testEnv {
	t.Helper()

	store := memory.NewStore()
	store.SeedDemo()
	clock := clockwork.NewFakeClockAt(now)
	ids, err := idgen.NewObjectIDGenerator(clock)
	if err != nil {
		t.Fatalf("new id generator: %v", err)
	}

	integrity := NewIntegrityEngine(memory.NewUnitOfWork(store), logging.NewNop())
	planner := NewEventQueryPlanner(store.Leagues(), clock, time.UTC)

	return &testEnv{
		store:     store,
		clock:     clock,
		ids:       ids,
		planner:   planner,
		integrity: integrity,
		leagues:   NewLeagueService(store.Leagues(), integrity, ids),
		teams:     NewTeamService(store.Teams(), store.Leagues(), integrity, ids),
		events:    NewEventService(planner, store.Events(), store.Leagues(), store.Teams(), ids, time.UTC),
	}
}

func october2025() time.Time {
	return time.Date(2025, time.October, 15, 12, 0, 0, 0, time.UTC)
}
