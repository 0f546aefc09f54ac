package memory

import (
	"context"

	"github.com/riskibarqy/sports-schedule/internal/domain/unitofwork"
)

// UnitOfWork runs steps on a private copy of the dataset and publishes the
// copy only when every step succeeds. Readers see either the old or the new
// dataset, never a mix.
type UnitOfWork struct {
	store *Store
}

func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

func (u *UnitOfWork) Run(ctx context.Context, name string, steps ...unitofwork.Step) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	draft := u.store.data.clone()
	bound := binding{store: u.store, tx: draft}
	repos := unitofwork.Repositories{
		Leagues: &LeagueRepository{binding: bound},
		Teams:   &TeamRepository{binding: bound},
		Events:  &EventRepository{binding: bound},
	}
	if err := unitofwork.Execute(ctx, name, repos, steps); err != nil {
		return err
	}

	u.store.data = draft
	return nil
}
