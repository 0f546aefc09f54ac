package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sports-schedule/internal/domain/league"
	qb "github.com/riskibarqy/sports-schedule/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db sqlx.ExtContext
}

// NewLeagueRepository accepts either a *sqlx.DB or a *sqlx.Tx.
func NewLeagueRepository(db sqlx.ExtContext) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	query, args, err := qb.Select(leagueColumns...).From("leagues").
		OrderBy("id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues query: %w", err)
	}

	return r.selectLeagues(ctx, query, args)
}

func (r *LeagueRepository) ListBySeason(ctx context.Context, season string) ([]league.League, error) {
	query, args, err := qb.Select(leagueColumns...).From("leagues").
		Where(qb.Eq("season", season)).
		OrderBy("id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues by season query: %w", err)
	}

	return r.selectLeagues(ctx, query, args)
}

func (r *LeagueRepository) selectLeagues(ctx context.Context, query string, args []any) ([]league.League, error) {
	var rows []leagueTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	query, args, err := qb.Select(leagueColumns...).From("leagues").
		Where(qb.Eq("id", leagueID)).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league by id query: %w", err)
	}

	var row leagueTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *LeagueRepository) Create(ctx context.Context, item league.League) error {
	query, args, err := qb.InsertModel("leagues", leagueToModel(item), "")
	if err != nil {
		return fmt.Errorf("build insert league query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert league: %w", err)
	}

	return nil
}

func (r *LeagueRepository) Update(ctx context.Context, item league.League) (bool, error) {
	query, args, err := qb.Update("leagues").
		Set("season", item.Season).
		Set("sport", item.Sport).
		Set("age_group", item.AgeGroup).
		Set("division", item.Division).
		Set("gender", item.Gender).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update league query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update league: %w", err)
	}
	affected, err := affectedRows(result, "update league")
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *LeagueRepository) Delete(ctx context.Context, leagueID string) (bool, error) {
	query, args, err := qb.DeleteFrom("leagues").
		Where(qb.Eq("id", leagueID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete league query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete league: %w", err)
	}
	affected, err := affectedRows(result, "delete league")
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
