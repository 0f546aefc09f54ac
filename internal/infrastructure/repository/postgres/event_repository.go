package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/sports-schedule/internal/domain/event"
	qb "github.com/riskibarqy/sports-schedule/internal/platform/querybuilder"
)

type EventRepository struct {
	db sqlx.ExtContext
}

func NewEventRepository(db sqlx.ExtContext) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Find(ctx context.Context, filter event.Filter) ([]event.Event, error) {
	if filter.Empty() {
		return []event.Event{}, nil
	}

	query, args, err := qb.Select(eventColumns...).From("events").
		Where(eventFilterConditions(filter)...).
		OrderBy("event_date ASC", `event_time COLLATE "C" ASC`, "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select events query: %w", err)
	}

	var rows []eventTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select events: %w", err)
	}

	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func eventFilterConditions(filter event.Filter) []qb.Condition {
	conditions := make([]qb.Condition, 0, 4)
	if filter.LeagueIDs != nil {
		conditions = append(conditions, qb.Expr("league_id = ANY(?)", pq.Array(filter.LeagueIDs)))
	}
	if filter.OpposingTeamIDs != nil {
		conditions = append(conditions, qb.Expr("opposing_team_id = ANY(?)", pq.Array(filter.OpposingTeamIDs)))
	}
	if filter.DateFrom != nil {
		conditions = append(conditions, qb.Gte("event_date", filter.DateFrom.UTC()))
	}
	if filter.DateTo != nil {
		conditions = append(conditions, qb.Lte("event_date", filter.DateTo.UTC()))
	}
	return conditions
}

func (r *EventRepository) GetByID(ctx context.Context, eventID string) (event.Event, bool, error) {
	query, args, err := qb.Select(eventColumns...).From("events").
		Where(qb.Eq("id", eventID)).
		ToSQL()
	if err != nil {
		return event.Event{}, false, fmt.Errorf("build get event by id query: %w", err)
	}

	var row eventTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return event.Event{}, false, nil
		}
		return event.Event{}, false, fmt.Errorf("get event by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *EventRepository) Create(ctx context.Context, item event.Event) error {
	query, args, err := qb.InsertModel("events", eventToModel(item), "")
	if err != nil {
		return fmt.Errorf("build insert event query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) Update(ctx context.Context, item event.Event) (bool, error) {
	row := eventToModel(item)
	query, args, err := qb.Update("events").
		Set("type", row.Type).
		Set("league_id", row.LeagueID).
		Set("location", row.Location).
		Set("event_date", row.EventDate).
		Set("event_time", row.EventTime).
		Set("opposing_team", row.OpposingTeam).
		Set("opposing_team_id", row.OpposingTeamID).
		Set("notes", row.Notes).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", row.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update event query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update event: %w", err)
	}
	affected, err := affectedRows(result, "update event")
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *EventRepository) Delete(ctx context.Context, eventID string) (bool, error) {
	query, args, err := qb.DeleteFrom("events").
		Where(qb.Eq("id", eventID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete event query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete event: %w", err)
	}
	affected, err := affectedRows(result, "delete event")
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *EventRepository) DeleteByLeague(ctx context.Context, leagueID string) (int64, error) {
	query, args, err := qb.DeleteFrom("events").
		Where(qb.Eq("league_id", leagueID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build delete events by league query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete events by league: %w", err)
	}

	return affectedRows(result, "delete events by league")
}

func (r *EventRepository) UnlinkOpponents(ctx context.Context, teamIDs []string, excludeLeagueID string) (int64, error) {
	if len(teamIDs) == 0 {
		return 0, nil
	}

	conditions := []qb.Condition{qb.Expr("opposing_team_id = ANY(?)", pq.Array(teamIDs))}
	if excludeLeagueID != "" {
		conditions = append(conditions, qb.NotEq("league_id", excludeLeagueID))
	}

	query, args, err := qb.Update("events").
		Set("opposing_team", event.DefaultOpponentName).
		SetExpr("opposing_team_id", "NULL").
		SetExpr("updated_at", "NOW()").
		Where(conditions...).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build unlink event opponents query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unlink event opponents: %w", err)
	}

	return affectedRows(result, "unlink event opponents")
}
