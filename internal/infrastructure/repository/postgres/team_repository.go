package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sports-schedule/internal/domain/team"
	qb "github.com/riskibarqy/sports-schedule/internal/platform/querybuilder"
)

type TeamRepository struct {
	db sqlx.ExtContext
}

func NewTeamRepository(db sqlx.ExtContext) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select(teamColumns...).From("teams").
		OrderBy("id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	return r.selectTeams(ctx, query, args)
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	query, args, err := qb.Select(teamColumns...).From("teams").
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams by league query: %w", err)
	}

	return r.selectTeams(ctx, query, args)
}

func (r *TeamRepository) selectTeams(ctx context.Context, query string, args []any) ([]team.Team, error) {
	var rows []teamTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select(teamColumns...).From("teams").
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team by id query: %w", err)
	}

	var row teamTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) error {
	query, args, err := qb.InsertModel("teams", teamToModel(item), "")
	if err != nil {
		return fmt.Errorf("build insert team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert team: %w", err)
	}

	return nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) (bool, error) {
	query, args, err := qb.Update("teams").
		Set("league_id", item.LeagueID).
		Set("name", item.Name).
		Set("school", item.School).
		Set("location", item.Location).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update team query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update team: %w", err)
	}
	affected, err := affectedRows(result, "update team")
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *TeamRepository) Delete(ctx context.Context, teamID string) (bool, error) {
	query, args, err := qb.DeleteFrom("teams").
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete team query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete team: %w", err)
	}
	affected, err := affectedRows(result, "delete team")
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// DeleteByLeague reports the ids removed by the DELETE itself, so teams
// inserted concurrently are either deleted and reported or left alone.
func (r *TeamRepository) DeleteByLeague(ctx context.Context, leagueID string) ([]string, error) {
	query, args, err := qb.DeleteFrom("teams").
		Where(qb.Eq("league_id", leagueID)).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build delete teams by league query: %w", err)
	}

	var ids []string
	if err := sqlx.SelectContext(ctx, r.db, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("delete teams by league: %w", err)
	}

	return ids, nil
}
