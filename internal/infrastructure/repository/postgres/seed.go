package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sports-schedule/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/sports-schedule/internal/platform/querybuilder"
)

const seedConflictSuffix = "ON CONFLICT (id) DO NOTHING"

// BootstrapSeed loads the demo dataset into an empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM leagues`); err != nil {
		return fmt.Errorf("count leagues for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, l := range memory.SeedLeagues() {
		if err := execSeed(ctx, tx, "leagues", leagueToModel(l)); err != nil {
			return fmt.Errorf("seed league %s: %w", l.ID, err)
		}
	}
	for _, t := range memory.SeedTeams() {
		if err := execSeed(ctx, tx, "teams", teamToModel(t)); err != nil {
			return fmt.Errorf("seed team %s: %w", t.ID, err)
		}
	}
	for _, e := range memory.SeedEvents() {
		if err := execSeed(ctx, tx, "events", eventToModel(e)); err != nil {
			return fmt.Errorf("seed event %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}

func execSeed(ctx context.Context, tx *sqlx.Tx, table string, model any) error {
	query, args, err := qb.InsertModel(table, model, seedConflictSuffix)
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}
	_, err = tx.ExecContext(ctx, query, args...)
	return err
}
