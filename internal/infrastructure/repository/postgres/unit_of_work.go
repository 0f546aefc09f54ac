package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sports-schedule/internal/domain/unitofwork"
	"github.com/riskibarqy/sports-schedule/internal/platform/resilience"
)

// UnitOfWork runs steps inside one read-committed transaction. Only
// connection level failures count against the circuit breaker.
type UnitOfWork struct {
	db      *sqlx.DB
	breaker *resilience.CircuitBreaker
}

func NewUnitOfWork(db *sqlx.DB, breaker *resilience.CircuitBreaker) *UnitOfWork {
	return &UnitOfWork{db: db, breaker: breaker}
}

func (u *UnitOfWork) Run(ctx context.Context, name string, steps ...unitofwork.Step) error {
	err := u.breaker.Do(func() error {
		return u.run(ctx, name, steps)
	}, isConnectionFailure)
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return fmt.Errorf("%w: %s: %w", unitofwork.ErrUnavailable, name, err)
	}
	return err
}

func (u *UnitOfWork) run(ctx context.Context, name string, steps []unitofwork.Step) error {
	tx, err := u.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return errors.Wrapf(err, "%s: begin tx", name)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	repos := unitofwork.Repositories{
		Leagues: NewLeagueRepository(tx),
		Teams:   NewTeamRepository(tx),
		Events:  NewEventRepository(tx),
	}
	if err := unitofwork.Execute(ctx, name, repos, steps); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrapf(err, "%s: commit tx", name)
	}

	return nil
}
