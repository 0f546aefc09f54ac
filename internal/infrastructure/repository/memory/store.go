package memory

import (
	"maps"
	"sort"
	"strings"
	"sync"

	"github.com/riskibarqy/sports-schedule/internal/domain/event"
	"github.com/riskibarqy/sports-schedule/internal/domain/league"
	"github.com/riskibarqy/sports-schedule/internal/domain/team"
	"github.com/riskibarqy/sports-schedule/internal/domain/user"
)

// Store keeps every entity in one dataset guarded by a single lock so a
// unit of work can swap the whole dataset in at once.
type Store struct {
	mu   sync.RWMutex
	data *dataset
}

type dataset struct {
	leagues map[string]league.League
	teams   map[string]team.Team
	events  map[string]event.Event
	// users are keyed by lower-cased username.
	users map[string]user.User
}

func newDataset() *dataset {
	return &dataset{
		leagues: make(map[string]league.League),
		teams:   make(map[string]team.Team),
		events:  make(map[string]event.Event),
		users:   make(map[string]user.User),
	}
}

func (d *dataset) clone() *dataset {
	return &dataset{
		leagues: maps.Clone(d.leagues),
		teams:   maps.Clone(d.teams),
		events:  maps.Clone(d.events),
		users:   maps.Clone(d.users),
	}
}

func NewStore() *Store {
	return &Store{data: newDataset()}
}

// Load inserts or replaces the given records.
func (s *Store) Load(leagues []league.League, teams []team.Team, events []event.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range leagues {
		s.data.leagues[item.ID] = item
	}
	for _, item := range teams {
		s.data.teams[item.ID] = item
	}
	for _, item := range events {
		s.data.events[item.ID] = item
	}
}

func (s *Store) Leagues() *LeagueRepository {
	return &LeagueRepository{binding: binding{store: s}}
}

func (s *Store) Teams() *TeamRepository {
	return &TeamRepository{binding: binding{store: s}}
}

func (s *Store) Events() *EventRepository {
	return &EventRepository{binding: binding{store: s}}
}

func (s *Store) Users() *UserRepository {
	return &UserRepository{binding: binding{store: s}}
}

// binding routes repository calls either to the shared dataset under the
// store lock or to a unit-of-work copy that the caller already owns.
type binding struct {
	store *Store
	tx    *dataset
}

func (b binding) read(fn func(d *dataset)) {
	if b.tx != nil {
		fn(b.tx)
		return
	}
	b.store.mu.RLock()
	defer b.store.mu.RUnlock()
	fn(b.store.data)
}

func (b binding) write(fn func(d *dataset)) {
	if b.tx != nil {
		fn(b.tx)
		return
	}
	b.store.mu.Lock()
	defer b.store.mu.Unlock()
	fn(b.store.data)
}

func sortedValues[T any](items map[string]T, keep func(T) bool) []T {
	ids := make([]string, 0, len(items))
	for id, item := range items {
		if keep == nil || keep(item) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, items[id])
	}
	return out
}

func usernameKey(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
