package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/sports-schedule/internal/domain/event"
	"github.com/riskibarqy/sports-schedule/internal/domain/league"
	"github.com/riskibarqy/sports-schedule/internal/domain/season"
)

const (
	DateRangeThisSeason = "thisSeason"
	DateRangeNextSeason = "nextSeason"
)

// EventCriteria holds the raw optional query parameters of an event listing.
type EventCriteria struct {
	LeagueIDs       string
	DateRange       string
	OpposingTeamIDs string
	StartDate       string
	EndDate         string
}

// EventPlan is the composed filter. Empty plans must not reach the store.
type EventPlan struct {
	Filter event.Filter
	Empty  bool
}

// EventQueryPlanner turns EventCriteria into one event filter. Seasons are
// resolved from the injected clock in the configured location.
type EventQueryPlanner struct {
	leagueRepo league.Repository
	clock      clockwork.Clock
	location   *time.Location
}

func NewEventQueryPlanner(leagueRepo league.Repository, clock clockwork.Clock, location *time.Location) *EventQueryPlanner {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if location == nil {
		location = time.UTC
	}

	return &EventQueryPlanner{
		leagueRepo: leagueRepo,
		clock:      clock,
		location:   location,
	}
}

func (p *EventQueryPlanner) Plan(ctx context.Context, criteria EventCriteria) (EventPlan, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventQueryPlanner.Plan")
	defer span.End()

	explicit, err := parseIDList("league", criteria.LeagueIDs)
	if err != nil {
		return EventPlan{}, err
	}
	opponents, err := parseIDList("opposing team", criteria.OpposingTeamIDs)
	if err != nil {
		return EventPlan{}, err
	}
	from, err := parseDateBound("startDate", criteria.StartDate, false, p.location)
	if err != nil {
		return EventPlan{}, err
	}
	to, err := parseDateBound("endDate", criteria.EndDate, true, p.location)
	if err != nil {
		return EventPlan{}, err
	}
	wantSeason, seasonRequested, err := p.targetSeason(criteria.DateRange)
	if err != nil {
		return EventPlan{}, err
	}

	filter := event.Filter{
		OpposingTeamIDs: opponents,
		DateFrom:        from,
		DateTo:          to,
	}

	var seasonal []string
	if seasonRequested {
		seasonal, err = p.seasonLeagueIDs(ctx, wantSeason)
		if err != nil {
			return EventPlan{}, err
		}
	}

	switch {
	case explicit != nil && seasonRequested:
		filter.LeagueIDs = intersect(explicit, seasonal)
	case explicit != nil:
		filter.LeagueIDs = explicit
	case seasonRequested:
		filter.LeagueIDs = seasonal
	}

	return EventPlan{Filter: filter, Empty: filter.Empty()}, nil
}

// targetSeason resolves dateRange. A requested range may still have no
// season (July and August), in which case the season set is empty.
func (p *EventQueryPlanner) targetSeason(dateRange string) (season.Season, bool, error) {
	dateRange = strings.TrimSpace(dateRange)
	if dateRange == "" {
		return "", false, nil
	}

	current, ok := season.At(p.clock.Now(), p.location)
	switch dateRange {
	case DateRangeThisSeason:
	case DateRangeNextSeason:
		if ok {
			current, ok = season.Next(current)
		}
	default:
		return "", false, fmt.Errorf("%w: unknown dateRange %q", ErrInvalidInput, dateRange)
	}
	if !ok {
		return "", true, nil
	}

	return current, true, nil
}

func (p *EventQueryPlanner) seasonLeagueIDs(ctx context.Context, target season.Season) ([]string, error) {
	if target == "" {
		return []string{}, nil
	}

	leagues, err := p.leagueRepo.ListBySeason(ctx, target.String())
	if err != nil {
		return nil, fmt.Errorf("list leagues by season: %w", err)
	}

	ids := make([]string, 0, len(leagues))
	for _, l := range leagues {
		ids = append(ids, l.ID)
	}
	return ids, nil
}

// parseIDList splits a CSV of ids. It returns nil when no id is present so
// callers can tell "not supplied" from "matches nothing".
func parseIDList(kind, raw string) ([]string, error) {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		id, err := parseID(kind, part)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out, nil
}

// parseDateBound accepts YYYY-MM-DD or RFC 3339. A date-only upper bound
// covers the whole day.
func parseDateBound(name, raw string, upper bool, loc *time.Location) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		t = t.UTC()
		return &t, nil
	}

	day, err := time.ParseInLocation(time.DateOnly, raw, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s %q", ErrInvalidInput, name, raw)
	}
	if upper {
		day = day.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	day = day.UTC()
	return &day, nil
}

func intersect(a, b []string) []string {
	out := make([]string, 0, len(a))
	for _, id := range a {
		if slices.Contains(b, id) {
			out = append(out, id)
		}
	}
	return out
}
