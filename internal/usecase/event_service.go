package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/sports-schedule/internal/domain/event"
	"github.com/riskibarqy/sports-schedule/internal/domain/league"
	"github.com/riskibarqy/sports-schedule/internal/domain/team"
	idgen "github.com/riskibarqy/sports-schedule/internal/platform/id"
	"github.com/sourcegraph/conc/pool"
)

type EventInput struct {
	Type     string
	LeagueID string
	Location string
	// Date is YYYY-MM-DD or RFC 3339.
	Date           string
	Time           string
	OpposingTeam   string
	OpposingTeamID string
	Notes          string
}

// EventDetail is an event with its league and linked opponent team, when
// they still exist.
type EventDetail struct {
	Event  event.Event
	League *league.League
	Team   *team.Team
}

type EventService struct {
	planner    *EventQueryPlanner
	eventRepo  event.Repository
	leagueRepo league.Repository
	teamRepo   team.Repository
	idGen      idgen.Generator
	location   *time.Location
}

func NewEventService(
	planner *EventQueryPlanner,
	eventRepo event.Repository,
	leagueRepo league.Repository,
	teamRepo team.Repository,
	idGen idgen.Generator,
	location *time.Location,
) *EventService {
	if location == nil {
		location = time.UTC
	}

	return &EventService{
		planner:    planner,
		eventRepo:  eventRepo,
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		idGen:      idGen,
		location:   location,
	}
}

func (s *EventService) Query(ctx context.Context, criteria EventCriteria) ([]event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.Query")
	defer span.End()

	plan, err := s.planner.Plan(ctx, criteria)
	if err != nil {
		return nil, err
	}
	if plan.Empty {
		return []event.Event{}, nil
	}

	items, err := s.eventRepo.Find(ctx, plan.Filter)
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}

	return items, nil
}

func (s *EventService) Get(ctx context.Context, rawID string) (EventDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.Get")
	defer span.End()

	eventID, err := parseID("event", rawID)
	if err != nil {
		return EventDetail{}, err
	}

	item, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return EventDetail{}, fmt.Errorf("get event: %w", err)
	}
	if !exists {
		return EventDetail{}, fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}

	detail := EventDetail{Event: item}
	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		owner, exists, err := s.leagueRepo.GetByID(ctx, item.LeagueID)
		if err != nil {
			return fmt.Errorf("get event league: %w", err)
		}
		if exists {
			detail.League = &owner
		}
		return nil
	})
	if teamID, linked := item.Opponent.TeamID(); linked {
		p.Go(func(ctx context.Context) error {
			opponent, exists, err := s.teamRepo.GetByID(ctx, teamID)
			if err != nil {
				return fmt.Errorf("get event team: %w", err)
			}
			if exists {
				detail.Team = &opponent
			}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return EventDetail{}, err
	}

	return detail, nil
}

func (s *EventService) Create(ctx context.Context, input EventInput) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.Create")
	defer span.End()

	item, err := s.buildEvent("", input)
	if err != nil {
		return "", err
	}

	if err := s.eventRepo.Create(ctx, item); err != nil {
		return "", fmt.Errorf("create event: %w", err)
	}

	return item.ID, nil
}

// Update replaces every field of an existing event. An empty opponent name
// falls back to the default opponent.
func (s *EventService) Update(ctx context.Context, rawID string, input EventInput) (event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.Update")
	defer span.End()

	eventID, err := parseID("event", rawID)
	if err != nil {
		return event.Event{}, err
	}

	item, err := s.buildEvent(eventID, input)
	if err != nil {
		return event.Event{}, err
	}

	updated, err := s.eventRepo.Update(ctx, item)
	if err != nil {
		return event.Event{}, fmt.Errorf("update event: %w", err)
	}
	if !updated {
		return event.Event{}, fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}

	return item, nil
}

func (s *EventService) Delete(ctx context.Context, rawID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.Delete")
	defer span.End()

	eventID, err := parseID("event", rawID)
	if err != nil {
		return err
	}

	deleted, err := s.eventRepo.Delete(ctx, eventID)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}

	return nil
}

func (s *EventService) buildEvent(eventID string, input EventInput) (event.Event, error) {
	leagueID, err := parseID("league", input.LeagueID)
	if err != nil {
		return event.Event{}, err
	}

	opponent := event.Unlinked(input.OpposingTeam)
	if strings.TrimSpace(input.OpposingTeamID) != "" {
		teamID, err := parseID("opposing team", input.OpposingTeamID)
		if err != nil {
			return event.Event{}, err
		}
		opponent = event.Linked(teamID, input.OpposingTeam)
	}

	date, err := parseEventDate(input.Date, s.location)
	if err != nil {
		return event.Event{}, err
	}

	if eventID == "" {
		eventID, err = s.idGen.NewID()
		if err != nil {
			return event.Event{}, fmt.Errorf("generate event id: %w", err)
		}
	}

	item := event.Event{
		ID:       eventID,
		Type:     input.Type,
		LeagueID: leagueID,
		Location: input.Location,
		Date:     date,
		Time:     input.Time,
		Opponent: opponent,
		Notes:    input.Notes,
	}.Normalize()
	if err := item.Validate(); err != nil {
		return event.Event{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return item, nil
}

func parseEventDate(raw string, loc *time.Location) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, fmt.Errorf("%w: event date is required", ErrInvalidInput)
	}
	date, err := parseDateBound("date", raw, false, loc)
	if err != nil {
		return time.Time{}, err
	}
	return *date, nil
}
